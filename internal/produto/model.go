// internal/produto/model.go
package produto

import (
	"time"

	"gorm.io/gorm"
)

// AcessoProduto é a linha de liberação de um pacote comprado por um
// usuário do portal. A "compra" é a inserção desta linha; a biblioteca
// só abre para quem tem a linha correspondente.
type AcessoProduto struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID    uint   `gorm:"not null;index" json:"user_id"`
	ProductID string `gorm:"size:100;not null" json:"product_id"` // slug do pacote, ex.: "black-box-start"
}

func (AcessoProduto) TableName() string { return "user_products" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&AcessoProduto{})
}
