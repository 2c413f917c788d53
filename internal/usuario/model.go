package usuario

import (
	"time"
)

// Usuario representa um login do portal: o dono (admin) ou o acesso de
// cliente vinculado a uma empresa contratada.
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Senha    string `json:"-"`
	IsAdmin  bool   `json:"is_admin"`
	TenantID *uint  `gorm:"index" json:"tenant_id"` // nulo para o dono
}

func (Usuario) TableName() string { return "company_users" }
