// internal/empresa/handler.go
package empresa

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/blackboxdigital/api-portal/internal/atualizacao"
	"github.com/blackboxdigital/api-portal/internal/auth"
	"github.com/blackboxdigital/api-portal/internal/documento"
	"github.com/blackboxdigital/api-portal/internal/marco"
	"github.com/blackboxdigital/api-portal/internal/notificacao"
	"github.com/blackboxdigital/api-portal/internal/usuario"
	"github.com/blackboxdigital/api-portal/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler cria um novo handler de empresas
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Criar trata POST /empresas. Quando 'client_email' vem no payload, o
// acesso de cliente é provisionado junto com uma senha temporária,
// devolvida uma única vez na resposta.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CriarEmpresaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dto.Name) == "" {
		http.Error(w, "O campo 'name' é obrigatório", http.StatusBadRequest)
		return
	}

	e := Empresa{
		Name:              dto.Name,
		CNPJ:              dto.CNPJ,
		LogoURL:           dto.LogoURL,
		Status:            "active",
		PhasePresentation: FasePendente,
		PhaseBudget:       FasePendente,
		PhaseContract:     FasePendente,
	}
	if err := h.Repository.Criar(h.DB, &e); err != nil {
		http.Error(w, "Erro ao salvar empresa", http.StatusInternalServerError)
		return
	}

	resp := EmpresaCriadaDTO{Empresa: e}
	if strings.TrimSpace(dto.ClientEmail) != "" {
		senha, err := utils.GerarSenhaTemporaria()
		if err != nil {
			http.Error(w, "Erro ao gerar senha inicial", http.StatusInternalServerError)
			return
		}
		hash, err := utils.HashSenha(senha)
		if err != nil {
			http.Error(w, "Erro ao processar senha inicial", http.StatusInternalServerError)
			return
		}
		u := usuario.Usuario{
			Name:     dto.ClientName,
			Email:    strings.TrimSpace(dto.ClientEmail),
			Senha:    hash,
			TenantID: &e.ID,
		}
		if err := usuario.NewRepository().Salvar(h.DB, &u); err != nil {
			http.Error(w, "Erro ao provisionar acesso do cliente", http.StatusInternalServerError)
			return
		}
		resp.ClientEmail = u.Email
		resp.SenhaInicial = senha
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(resp)
}

// Listar trata GET /empresas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar empresas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /empresas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	e, err := h.Repository.BuscarComProjetos(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Empresa não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

// Atualizar trata PUT /empresas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	e, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Empresa não encontrada", http.StatusNotFound)
		return
	}

	var dto AtualizarEmpresaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	e.Name = dto.Name
	e.CNPJ = dto.CNPJ
	e.LogoURL = dto.LogoURL
	if dto.Status == "active" || dto.Status == "inactive" {
		e.Status = dto.Status
	}

	if err := h.Repository.Atualizar(h.DB, e); err != nil {
		http.Error(w, "Erro ao atualizar empresa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

// AtualizarFase trata PATCH /empresas/{id}/fases/{fase}
// A URL só é gravada ao completar; voltar para pending não limpa a URL.
func (h *Handler) AtualizarFase(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	fase := vars["fase"]
	if !faseValida(fase) {
		http.Error(w, "Fase desconhecida", http.StatusBadRequest)
		return
	}

	var dto AtualizarFaseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if !statusFaseValido(dto.Status) {
		http.Error(w, "Status de fase deve ser 'pending' ou 'complete'", http.StatusBadRequest)
		return
	}

	antes, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Empresa não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar empresa", http.StatusInternalServerError)
		return
	}
	jaCompleta := TodasFasesCompletas(antes)

	colunas := colunasFase[fase]
	updates := map[string]interface{}{
		colunas.Status: dto.Status,
	}
	if dto.Status == FaseCompleta && colunas.URL != "" && strings.TrimSpace(dto.URL) != "" {
		updates[colunas.URL] = strings.TrimSpace(dto.URL)
	}

	if err := h.Repository.AtualizarFase(h.DB, uint(id), updates); err != nil {
		http.Error(w, "Erro ao atualizar fase", http.StatusInternalServerError)
		return
	}

	depois, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Erro ao recarregar empresa", http.StatusInternalServerError)
		return
	}

	// sinal único de conclusão do onboarding
	if !jaCompleta && TodasFasesCompletas(depois) {
		go notificacao.EnviarAlertaFasesConcluidas(depois.Name)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(depois)
}

// VisaoPortal trata GET /portal — o dashboard do cliente logado.
// Cliente enxerga só a própria empresa e apenas linhas visíveis; admin
// pode inspecionar qualquer tenant via ?empresa_id=.
func (h *Handler) VisaoPortal(w http.ResponseWriter, r *http.Request) {
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)
	tenantID, temTenant := r.Context().Value(auth.CtxEmpresaID).(uint)

	if isAdmin {
		if q := r.URL.Query().Get("empresa_id"); q != "" {
			if i, err := strconv.Atoi(q); err == nil {
				tenantID = uint(i)
				temTenant = true
			}
		}
	}
	if !temTenant {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	e, err := h.Repository.BuscarPorID(h.DB, tenantID)
	if err != nil {
		http.Error(w, "Empresa não encontrada", http.StatusNotFound)
		return
	}

	marcos, err := marco.NewRepository().ListarPorTenant(h.DB, tenantID)
	if err != nil {
		http.Error(w, "Erro ao montar dashboard", http.StatusInternalServerError)
		return
	}
	docs, err := documento.NewRepository().ListarVisiveis(h.DB, tenantID)
	if err != nil {
		http.Error(w, "Erro ao montar dashboard", http.StatusInternalServerError)
		return
	}
	avisos, err := atualizacao.NewRepository().ListarVisiveis(h.DB, tenantID)
	if err != nil {
		http.Error(w, "Erro ao montar dashboard", http.StatusInternalServerError)
		return
	}

	dto := PortalDTO{
		Empresa:        *e,
		FasesCompletas: TodasFasesCompletas(e),
		Marcos:         marcos,
		Documentos:     docs,
		Atualizacoes:   avisos,
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto)
}
