// internal/empresa/fases.go
package empresa

// Nomes de fase aceitos pelo comando de atualização. Qualquer outro nome
// é rejeitado antes de chegar no banco.
const (
	FaseApresentacao = "presentation"
	FaseOrcamento    = "budget"
	FaseContrato     = "contract"
)

const (
	FasePendente = "pending"
	FaseCompleta = "complete"
)

// colunasFase mapeia cada fase para suas colunas de status e de URL.
// A fase de orçamento não tem coluna de URL.
var colunasFase = map[string]struct {
	Status string
	URL    string
}{
	FaseApresentacao: {Status: "phase_presentation", URL: "presentation_url"},
	FaseOrcamento:    {Status: "phase_budget"},
	FaseContrato:     {Status: "phase_contract", URL: "contract_url"},
}

func faseValida(nome string) bool {
	_, ok := colunasFase[nome]
	return ok
}

func statusFaseValido(s string) bool {
	return s == FasePendente || s == FaseCompleta
}

// TodasFasesCompletas é verdadeira sse as três fases estão completas,
// independente da ordem em que foram concluídas.
func TodasFasesCompletas(e *Empresa) bool {
	return e.PhasePresentation == FaseCompleta &&
		e.PhaseBudget == FaseCompleta &&
		e.PhaseContract == FaseCompleta
}
