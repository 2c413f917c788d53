// internal/documento/handler.go
package documento

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

type criarDocumentoDTO struct {
	Title           string `json:"title"`
	URL             string `json:"url"`
	VisibleToClient bool   `json:"visible_to_client"`
}

// Criar trata POST /empresas/{id}/documentos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}

	var dto criarDocumentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dto.Title) == "" || strings.TrimSpace(dto.URL) == "" {
		http.Error(w, "Os campos 'title' e 'url' são obrigatórios", http.StatusBadRequest)
		return
	}

	d := Documento{
		TenantID:        uint(tenantID),
		Title:           dto.Title,
		URL:             dto.URL,
		VisibleToClient: dto.VisibleToClient,
	}
	if err := h.Repository.Criar(h.DB, &d); err != nil {
		http.Error(w, "Erro ao salvar documento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(d)
}

// ListarPorEmpresa trata GET /empresas/{id}/documentos
func (h *Handler) ListarPorEmpresa(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarPorTenant(h.DB, uint(tenantID))
	if err != nil {
		http.Error(w, "Erro ao listar documentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// AlternarVisibilidade trata PATCH /documentos/{id}/visibilidade
func (h *Handler) AlternarVisibilidade(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	d, err := h.Repository.AlternarVisibilidade(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Documento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao alterar visibilidade", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(d)
}

// Deletar trata DELETE /documentos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "Documento não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir documento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
