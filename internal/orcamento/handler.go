// internal/orcamento/handler.go
package orcamento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler cria um novo handler de orçamentos
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Criar trata POST /orcamentos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CriarOrcamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dto.CompanyName) == "" || strings.TrimSpace(dto.ClientName) == "" {
		http.Error(w, "Os campos 'company_name' e 'client_name' são obrigatórios", http.StatusBadRequest)
		return
	}

	o := Orcamento{
		CompanyName:  dto.CompanyName,
		ClientName:   dto.ClientName,
		ProjectType:  dto.ProjectType,
		Description:  dto.Description,
		Features:     dto.Features,
		Deadline:     dto.Deadline,
		BudgetValue:  dto.BudgetValue,
		PaymentTerms: dto.PaymentTerms,
		Status:       StatusCriado,
	}
	if err := h.Repository.Criar(h.DB, &o); err != nil {
		http.Error(w, "Erro ao salvar orçamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(o)
}

// Listar trata GET /orcamentos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar orçamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /orcamentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	o, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Orçamento não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(o)
}

// Enviar trata PATCH /orcamentos/{id}/enviar
func (h *Handler) Enviar(w http.ResponseWriter, r *http.Request) {
	h.aplicarTransicao(w, r, func(o *Orcamento) error {
		return o.MarcarEnviado()
	})
}

// Aceitar trata PATCH /orcamentos/{id}/aceitar
func (h *Handler) Aceitar(w http.ResponseWriter, r *http.Request) {
	var dto AceitarOrcamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if dto.ValorAlterado && strings.TrimSpace(dto.ValorFinal) == "" {
		http.Error(w, "O campo 'valor_final' é obrigatório quando o valor foi alterado", http.StatusBadRequest)
		return
	}
	h.aplicarTransicao(w, r, func(o *Orcamento) error {
		return o.Aceitar(time.Now(), dto.Observacoes, dto.ValorAlterado, dto.ValorFinal)
	})
}

// Concluir trata PATCH /orcamentos/{id}/concluir
func (h *Handler) Concluir(w http.ResponseWriter, r *http.Request) {
	var dto ConcluirOrcamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	var dataConclusao *time.Time
	if strings.TrimSpace(dto.DataConclusao) != "" {
		t, err := time.Parse(time.RFC3339, dto.DataConclusao)
		if err != nil {
			http.Error(w, "O campo 'data_conclusao' deve estar em RFC3339", http.StatusBadRequest)
			return
		}
		dataConclusao = &t
	}
	h.aplicarTransicao(w, r, func(o *Orcamento) error {
		return o.Concluir(time.Now(), dto.Observacoes, dataConclusao)
	})
}

// Cancelar trata PATCH /orcamentos/{id}/cancelar
func (h *Handler) Cancelar(w http.ResponseWriter, r *http.Request) {
	h.aplicarTransicao(w, r, func(o *Orcamento) error {
		return o.Cancelar()
	})
}

// aplicarTransicao busca o orçamento, aplica o comando validado pela
// máquina de estados e persiste. Transições ilegais retornam 409.
func (h *Handler) aplicarTransicao(w http.ResponseWriter, r *http.Request, cmd func(*Orcamento) error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	o, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Orçamento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar orçamento", http.StatusInternalServerError)
		return
	}

	if err := cmd(o); err != nil {
		var te *TransicaoInvalidaError
		if errors.As(err, &te) {
			http.Error(w, te.Error(), http.StatusConflict)
			return
		}
		if errors.Is(err, ErrEntregaAntesDoInicio) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Erro ao aplicar transição", http.StatusInternalServerError)
		return
	}

	if err := h.Repository.Atualizar(h.DB, o); err != nil {
		http.Error(w, "Erro ao atualizar orçamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(o)
}
