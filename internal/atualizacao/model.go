package atualizacao

import (
	"time"
)

// Atualizacao é um aviso de andamento publicado no dashboard do cliente,
// com o mesmo flag de visibilidade dos documentos.
type Atualizacao struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	TenantID        uint   `gorm:"not null;index" json:"tenant_id"`
	Title           string `gorm:"not null" json:"title"`
	Body            string `gorm:"type:text" json:"body"`
	VisibleToClient bool   `gorm:"not null;default:false" json:"visible_to_client"`
}

func (Atualizacao) TableName() string { return "project_updates" }
