package documento

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, d *Documento) error
	BuscarPorID(db *gorm.DB, id uint) (*Documento, error)
	ListarPorTenant(db *gorm.DB, tenantID uint) ([]Documento, error)
	ListarVisiveis(db *gorm.DB, tenantID uint) ([]Documento, error)
	AlternarVisibilidade(db *gorm.DB, id uint) (*Documento, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, d *Documento) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Documento, error) {
	var d Documento
	err := db.First(&d, id).Error
	return &d, err
}

func (r *repositoryImpl) ListarPorTenant(db *gorm.DB, tenantID uint) ([]Documento, error) {
	var list []Documento
	err := db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarVisiveis(db *gorm.DB, tenantID uint) ([]Documento, error) {
	var list []Documento
	err := db.Where("tenant_id = ? AND visible_to_client = ?", tenantID, true).
		Order("created_at DESC").Find(&list).Error
	return list, err
}

// AlternarVisibilidade nega o flag direto no banco, em uma única
// instrução, para não perder atualizações sob toggles concorrentes.
func (r *repositoryImpl) AlternarVisibilidade(db *gorm.DB, id uint) (*Documento, error) {
	res := db.Model(&Documento{}).Where("id = ?", id).
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
	return db.Delete(&Documento{}, id).Error
}
