package empresa

import (
	"time"

	"github.com/blackboxdigital/api-portal/internal/atualizacao"
	"github.com/blackboxdigital/api-portal/internal/documento"
	"github.com/blackboxdigital/api-portal/internal/marco"
)

// Empresa representa uma empresa contratada (tenant do portal do cliente),
// com as três fases de onboarding e as URLs dos materiais entregues.
type Empresa struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name    string `gorm:"not null" json:"name"`
	CNPJ    string `json:"cnpj"`
	Status  string `gorm:"size:20;not null;default:'active'" json:"status"` // active | inactive
	LogoURL string `json:"logo_url"`

	// Fases de onboarding: pending | complete. A URL de uma fase só tem
	// significado quando a fase está completa, mas é retida ao voltar
	// para pending (histórico).
	PhasePresentation string `gorm:"size:20;not null;default:'pending'" json:"phase_presentation"`
	PhaseBudget       string `gorm:"size:20;not null;default:'pending'" json:"phase_budget"`
	PhaseContract     string `gorm:"size:20;not null;default:'pending'" json:"phase_contract"`
	PresentationURL   string `json:"presentation_url"`
	ContractURL       string `json:"contract_url"`

	Marcos       []marco.Marco             `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"marcos,omitempty"`
	Documentos   []documento.Documento     `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"documentos,omitempty"`
	Atualizacoes []atualizacao.Atualizacao `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"atualizacoes,omitempty"`
}

func (Empresa) TableName() string { return "company_tenants" }
