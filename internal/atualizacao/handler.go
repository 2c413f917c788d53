// internal/atualizacao/handler.go
package atualizacao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

type criarAtualizacaoDTO struct {
	Title           string `json:"title"`
	Body            string `json:"body"`
	VisibleToClient bool   `json:"visible_to_client"`
}

// Criar trata POST /empresas/{id}/atualizacoes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}

	var dto criarAtualizacaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dto.Title) == "" {
		http.Error(w, "O campo 'title' é obrigatório", http.StatusBadRequest)
		return
	}

	a := Atualizacao{
		TenantID:        uint(tenantID),
		Title:           dto.Title,
		Body:            dto.Body,
		VisibleToClient: dto.VisibleToClient,
	}
	if err := h.Repository.Criar(h.DB, &a); err != nil {
		http.Error(w, "Erro ao salvar atualização", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// ListarPorEmpresa trata GET /empresas/{id}/atualizacoes
func (h *Handler) ListarPorEmpresa(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarPorTenant(h.DB, uint(tenantID))
	if err != nil {
		http.Error(w, "Erro ao listar atualizações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// AlternarVisibilidade trata PATCH /atualizacoes/{id}/visibilidade
func (h *Handler) AlternarVisibilidade(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	a, err := h.Repository.AlternarVisibilidade(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Atualização não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao alterar visibilidade", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// Deletar trata DELETE /atualizacoes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "Atualização não encontrada", http.StatusNotFound)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir atualização", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
