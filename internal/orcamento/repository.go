package orcamento

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, o *Orcamento) error
	BuscarPorID(db *gorm.DB, id uint) (*Orcamento, error)
	ListarTodos(db *gorm.DB) ([]Orcamento, error)
	ListarDesde(db *gorm.DB, desde time.Time) ([]Orcamento, error)
	Atualizar(db *gorm.DB, o *Orcamento) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, o *Orcamento) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Orcamento, error) {
	var o Orcamento
	err := db.First(&o, id).Error
	return &o, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Orcamento, error) {
	var list []Orcamento
	err := db.Order("created_at DESC").Find(&list).Error
	return list, err
}

// ListarDesde devolve os orçamentos criados a partir da data informada,
// usado pelo filtro de período dos relatórios.
func (r *repositoryImpl) ListarDesde(db *gorm.DB, desde time.Time) ([]Orcamento, error) {
	var list []Orcamento
	err := db.Where("created_at >= ?", desde).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, o *Orcamento) error {
	return db.Save(o).Error
}
