package atualizacao

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, a *Atualizacao) error
	BuscarPorID(db *gorm.DB, id uint) (*Atualizacao, error)
	ListarPorTenant(db *gorm.DB, tenantID uint) ([]Atualizacao, error)
	ListarVisiveis(db *gorm.DB, tenantID uint) ([]Atualizacao, error)
	AlternarVisibilidade(db *gorm.DB, id uint) (*Atualizacao, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, a *Atualizacao) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Atualizacao, error) {
	var a Atualizacao
	err := db.First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) ListarPorTenant(db *gorm.DB, tenantID uint) ([]Atualizacao, error) {
	var list []Atualizacao
	err := db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarVisiveis(db *gorm.DB, tenantID uint) ([]Atualizacao, error) {
	var list []Atualizacao
	err := db.Where("tenant_id = ? AND visible_to_client = ?", tenantID, true).
		Order("created_at DESC").Find(&list).Error
	return list, err
}

// Mesmo flip atômico do repositório de documentos.
func (r *repositoryImpl) AlternarVisibilidade(db *gorm.DB, id uint) (*Atualizacao, error) {
	res := db.Model(&Atualizacao{}).Where("id = ?", id).
		UpdateColumn("visible_to_client", gorm.Expr("NOT visible_to_client"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.BuscarPorID(db, id)
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Atualizacao{}, id).Error
}
