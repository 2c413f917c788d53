// internal/produto/repository.go
package produto

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(a *AcessoProduto) error {
	return r.DB.Create(a).Error
}

func (r *Repository) FindByUser(userID uint) ([]AcessoProduto, error) {
	var list []AcessoProduto
	err := r.DB.Where("user_id = ?", userID).Find(&list).Error
	return list, err
}

// HasAccess responde se o usuário tem a linha de liberação do pacote.
func (r *Repository) HasAccess(userID uint, productID string) (bool, error) {
	var count int64
	err := r.DB.Model(&AcessoProduto{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}
