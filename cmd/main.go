package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/blackboxdigital/api-portal/internal/atualizacao"
	"github.com/blackboxdigital/api-portal/internal/auth"
	"github.com/blackboxdigital/api-portal/internal/documento"
	"github.com/blackboxdigital/api-portal/internal/empresa"
	"github.com/blackboxdigital/api-portal/internal/marco"
	"github.com/blackboxdigital/api-portal/internal/orcamento"
	"github.com/blackboxdigital/api-portal/internal/produto"
	"github.com/blackboxdigital/api-portal/internal/relatorio"
	"github.com/blackboxdigital/api-portal/internal/usuario"
	"github.com/blackboxdigital/api-portal/internal/utils/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis de ambiente")
	}

	conn, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := conn.AutoMigrate(
		&usuario.Usuario{},
		&empresa.Empresa{},
		&orcamento.Orcamento{},
		&marco.Marco{},
		&documento.Documento{},
		&atualizacao.Atualizacao{},
		&produto.AcessoProduto{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(conn)
	empresaHandler := empresa.NewHandler(conn)
	orcamentoHandler := orcamento.NewHandler(conn)
	marcoHandler := marco.NewHandler(conn)
	documentoHandler := documento.NewHandler(conn)
	atualizacaoHandler := atualizacao.NewHandler(conn)
	relatorioHandler := relatorio.NewHandler(conn)
	produtoHandler := produto.NewHandler(produto.NewRepository(conn))

	// Router
	r := mux.NewRouter()

	// Rota pública
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rotas autenticadas (admin e clientes)
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)
	api.HandleFunc("/me", usuarioHandler.Me).Methods("GET")
	api.HandleFunc("/portal", empresaHandler.VisaoPortal).Methods("GET")

	// Rotas administrativas
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)

	// Orçamentos
	admin.HandleFunc("/orcamentos", orcamentoHandler.Criar).Methods("POST")
	admin.HandleFunc("/orcamentos", orcamentoHandler.Listar).Methods("GET")
	admin.HandleFunc("/orcamentos/{id}", orcamentoHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/orcamentos/{id}/enviar", orcamentoHandler.Enviar).Methods("PATCH")
	admin.HandleFunc("/orcamentos/{id}/aceitar", orcamentoHandler.Aceitar).Methods("PATCH")
	admin.HandleFunc("/orcamentos/{id}/concluir", orcamentoHandler.Concluir).Methods("PATCH")
	admin.HandleFunc("/orcamentos/{id}/cancelar", orcamentoHandler.Cancelar).Methods("PATCH")

	// Relatórios
	admin.HandleFunc("/relatorios/orcamentos", relatorioHandler.Gerar).Methods("GET")

	// Empresas e fases de onboarding
	admin.HandleFunc("/empresas", empresaHandler.Criar).Methods("POST")
	admin.HandleFunc("/empresas", empresaHandler.Listar).Methods("GET")
	admin.HandleFunc("/empresas/{id}", empresaHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/empresas/{id}", empresaHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/empresas/{id}/fases/{fase}", empresaHandler.AtualizarFase).Methods("PATCH")

	// Marcos de projeto
	admin.HandleFunc("/empresas/{id}/marcos", marcoHandler.Criar).Methods("POST")
	admin.HandleFunc("/empresas/{id}/marcos", marcoHandler.ListarPorEmpresa).Methods("GET")
	admin.HandleFunc("/marcos/{id}/ciclar", marcoHandler.Ciclar).Methods("PATCH")
	admin.HandleFunc("/marcos/{id}", marcoHandler.Deletar).Methods("DELETE")

	// Documentos
	admin.HandleFunc("/empresas/{id}/documentos", documentoHandler.Criar).Methods("POST")
	admin.HandleFunc("/empresas/{id}/documentos", documentoHandler.ListarPorEmpresa).Methods("GET")
	admin.HandleFunc("/documentos/{id}/visibilidade", documentoHandler.AlternarVisibilidade).Methods("PATCH")
	admin.HandleFunc("/documentos/{id}", documentoHandler.Deletar).Methods("DELETE")

	// Atualizações de projeto
	admin.HandleFunc("/empresas/{id}/atualizacoes", atualizacaoHandler.Criar).Methods("POST")
	admin.HandleFunc("/empresas/{id}/atualizacoes", atualizacaoHandler.ListarPorEmpresa).Methods("GET")
	admin.HandleFunc("/atualizacoes/{id}/visibilidade", atualizacaoHandler.AlternarVisibilidade).Methods("PATCH")
	admin.HandleFunc("/atualizacoes/{id}", atualizacaoHandler.Deletar).Methods("DELETE")

	// Usuários e produtos liberados
	admin.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	admin.HandleFunc("/usuarios/{id}/produtos", produtoHandler.LiberarAcesso).Methods("POST")
	admin.HandleFunc("/usuarios/{id}/produtos", produtoHandler.ListarAcessos).Methods("GET")
	admin.HandleFunc("/usuarios/{id}/produtos/{pid}", produtoHandler.VerificarAcesso).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Println("Servidor rodando em http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(r)))
}
