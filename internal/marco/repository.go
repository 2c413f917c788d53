package marco

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, m *Marco) error
	BuscarPorID(db *gorm.DB, id uint) (*Marco, error)
	ListarPorTenant(db *gorm.DB, tenantID uint) ([]Marco, error)
	Atualizar(db *gorm.DB, m *Marco) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, m *Marco) error {
	return db.Create(m).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Marco, error) {
	var m Marco
	err := db.First(&m, id).Error
	return &m, err
}

func (r *repositoryImpl) ListarPorTenant(db *gorm.DB, tenantID uint) ([]Marco, error) {
	var list []Marco
	err := db.Where("tenant_id = ?", tenantID).Order("created_at").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, m *Marco) error {
	return db.Save(m).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Marco{}, id).Error
}
