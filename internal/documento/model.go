package documento

import (
	"time"
)

// Documento é um arquivo compartilhado com a empresa contratada. A única
// transição é o flag de visibilidade para o cliente.
type Documento struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	TenantID        uint   `gorm:"not null;index" json:"tenant_id"`
	Title           string `gorm:"not null" json:"title"`
	URL             string `gorm:"not null" json:"url"`
	VisibleToClient bool   `gorm:"not null;default:false" json:"visible_to_client"`
}

func (Documento) TableName() string { return "project_documents" }
