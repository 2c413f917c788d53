package orcamento

import (
	"time"
)

// Orcamento representa uma proposta comercial do portal e todo o seu
// ciclo de vida (criação, envio, aceite, execução e entrega).
// Os nomes de coluna/JSON seguem o contrato de storage do portal.
type Orcamento struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Dados da proposta
	CompanyName  string `gorm:"not null" json:"company_name"`
	ClientName   string `gorm:"not null;index" json:"client_name"`
	ProjectType  string `gorm:"size:100" json:"project_type"`
	Description  string `gorm:"type:text" json:"description"`
	Features     string `gorm:"type:text" json:"features"`
	Deadline     string `json:"deadline"`      // texto livre, ex.: "6 semanas"
	BudgetValue  string `json:"budget_value"`  // texto formatado, ex.: "R$ 5.000,00"
	PaymentTerms string `json:"payment_terms"`

	Status Status `gorm:"size:30;not null;default:'criado';index" json:"status"`

	// Aceite
	AcceptedAt    *time.Time `json:"accepted_at"`
	AcceptedNotes string     `gorm:"type:text" json:"accepted_notes"`
	FinalValue    string     `json:"final_value"`
	ValueChanged  bool       `json:"value_changed"`
	StartedAt     *time.Time `json:"started_at"`

	// Entrega
	DeliveredAt     *time.Time `json:"delivered_at"`
	CompletionNotes string     `gorm:"type:text" json:"completion_notes"`
	ExecutionDays   *int       `json:"execution_days"`
}

func (Orcamento) TableName() string { return "budgets" }
