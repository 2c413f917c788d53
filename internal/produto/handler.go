// internal/produto/handler.go
package produto

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /usuarios/{id}/produtos
// Simulação de compra: insere a linha de liberação do pacote.
func (h *Handler) LiberarAcesso(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de usuário inválido", http.StatusBadRequest)
		return
	}

	var body struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.ProductID) == "" {
		http.Error(w, "O campo 'product_id' é obrigatório", http.StatusBadRequest)
		return
	}

	a := AcessoProduto{UserID: uint(userID), ProductID: body.ProductID}
	if err := h.Repo.Create(&a); err != nil {
		http.Error(w, "Erro ao liberar acesso", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// GET /usuarios/{id}/produtos
func (h *Handler) ListarAcessos(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de usuário inválido", http.StatusBadRequest)
		return
	}

	list, err := h.Repo.FindByUser(uint(userID))
	if err != nil {
		http.Error(w, "Erro ao buscar acessos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /usuarios/{id}/produtos/{pid}
func (h *Handler) VerificarAcesso(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de usuário inválido", http.StatusBadRequest)
		return
	}
	pid := mux.Vars(r)["pid"]

	possui, err := h.Repo.HasAccess(uint(userID), pid)
	if err != nil {
		http.Error(w, "Erro ao verificar acesso", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"possui": possui})
}
