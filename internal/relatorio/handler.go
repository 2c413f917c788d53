// internal/relatorio/handler.go
package relatorio

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/blackboxdigital/api-portal/internal/orcamento"
)

// Handler monta relatórios a partir das linhas de orçamento.
type Handler struct {
	DB         *gorm.DB
	Orcamentos orcamento.Repository
}

// NewHandler cria um novo handler de relatórios
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Orcamentos: orcamento.NewRepository(),
	}
}

// Gerar trata GET /relatorios/orcamentos?periodo=all|month|quarter|year
func (h *Handler) Gerar(w http.ResponseWriter, r *http.Request) {
	periodo := Periodo(r.URL.Query().Get("periodo"))
	switch periodo {
	case "":
		periodo = PeriodoTodos
	case PeriodoTodos, PeriodoMes, PeriodoTrimestre, PeriodoAno:
	default:
		http.Error(w, "Período inválido: use all, month, quarter ou year", http.StatusBadRequest)
		return
	}

	agora := time.Now()
	var (
		orcs []orcamento.Orcamento
		err  error
	)
	if inicio, limitado := inicioPeriodo(periodo, agora); limitado {
		orcs, err = h.Orcamentos.ListarDesde(h.DB, inicio)
	} else {
		orcs, err = h.Orcamentos.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "Erro ao buscar orçamentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Montar(orcs, periodo, agora))
}
