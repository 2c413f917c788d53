// internal/marco/ciclo.go
package marco

import "time"

// Status do marco. O ciclo é fechado: pending -> in_progress -> complete
// -> pending. Voltar de complete para pending corrige cliques errados sem
// precisar de um comando de desfazer.
const (
	StatusPendente    = "pending"
	StatusEmAndamento = "in_progress"
	StatusCompleto    = "complete"
)

// ProximoStatus devolve o próximo estado da rotação fixa. Status
// desconhecidos voltam para pending.
func ProximoStatus(atual string) string {
	switch atual {
	case StatusPendente:
		return StatusEmAndamento
	case StatusEmAndamento:
		return StatusCompleto
	default:
		return StatusPendente
	}
}

// Ciclar avança o marco para o próximo estado. Entrar em complete marca
// completed_at; sair de complete limpa.
func (m *Marco) Ciclar(agora time.Time) {
	m.Status = ProximoStatus(m.Status)
	if m.Status == StatusCompleto {
		m.CompletedAt = &agora
	} else {
		m.CompletedAt = nil
	}
}
