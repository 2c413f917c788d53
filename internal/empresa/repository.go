package empresa

import (
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, e *Empresa) error
	BuscarPorID(db *gorm.DB, id uint) (*Empresa, error)
	BuscarComProjetos(db *gorm.DB, id uint) (*Empresa, error)
	ListarTodas(db *gorm.DB) ([]Empresa, error)
	Atualizar(db *gorm.DB, e *Empresa) error
	AtualizarFase(db *gorm.DB, id uint, updates map[string]interface{}) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, e *Empresa) error {
	return db.Create(e).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Empresa, error) {
	var e Empresa
	err := db.First(&e, id).Error
	return &e, err
}

// BuscarComProjetos carrega a empresa com marcos, documentos e
// atualizações, usado pela visão de dashboard.
func (r *repositoryImpl) BuscarComProjetos(db *gorm.DB, id uint) (*Empresa, error) {
	var e Empresa
	err := db.
		Preload("Marcos").
		Preload("Documentos").
		Preload("Atualizacoes").
		First(&e, id).Error
	return &e, err
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Empresa, error) {
	var list []Empresa
	err := db.Order("name").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, e *Empresa) error {
	return db.Save(e).Error
}

// AtualizarFase aplica um mapa de colunas já validadas contra a linha da
// empresa. O chamador monta o mapa apenas com colunas reconhecidas.
func (r *repositoryImpl) AtualizarFase(db *gorm.DB, id uint, updates map[string]interface{}) error {
	return db.Model(&Empresa{}).Where("id = ?", id).Updates(updates).Error
}
