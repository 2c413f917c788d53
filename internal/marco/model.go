package marco

import (
	"time"
)

// Marco representa um marco de projeto de uma empresa contratada.
type Marco struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TenantID    uint       `gorm:"not null;index" json:"tenant_id"`
	Title       string     `gorm:"not null" json:"title"`
	DueDate     *time.Time `json:"due_date"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (Marco) TableName() string { return "project_milestones" }
