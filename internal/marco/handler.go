// internal/marco/handler.go
package marco

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

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

type criarMarcoDTO struct {
	Title       string `json:"title"`
	DueDate     string `json:"due_date"` // RFC3339, opcional
	Description string `json:"description"`
}

// Criar trata POST /empresas/{id}/marcos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}

	var dto criarMarcoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dto.Title) == "" {
		http.Error(w, "O campo 'title' é obrigatório", http.StatusBadRequest)
		return
	}

	m := Marco{
		TenantID:    uint(tenantID),
		Title:       dto.Title,
		Description: dto.Description,
		Status:      StatusPendente,
	}
	if strings.TrimSpace(dto.DueDate) != "" {
		t, err := time.Parse(time.RFC3339, dto.DueDate)
		if err != nil {
			http.Error(w, "O campo 'due_date' deve estar em RFC3339", http.StatusBadRequest)
			return
		}
		m.DueDate = &t
	}

	if err := h.Repository.Criar(h.DB, &m); err != nil {
		http.Error(w, "Erro ao salvar marco", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// ListarPorEmpresa trata GET /empresas/{id}/marcos
func (h *Handler) ListarPorEmpresa(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarPorTenant(h.DB, uint(tenantID))
	if err != nil {
		http.Error(w, "Erro ao listar marcos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Ciclar trata PATCH /marcos/{id}/ciclar
func (h *Handler) Ciclar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	m, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Marco não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar marco", http.StatusInternalServerError)
		return
	}

	m.Ciclar(time.Now())
	if err := h.Repository.Atualizar(h.DB, m); err != nil {
		http.Error(w, "Erro ao atualizar marco", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

// Deletar trata DELETE /marcos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "Marco não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir marco", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
