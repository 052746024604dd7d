package repository

import (
	"context"

	"requisicoes/internal/model"

	"gorm.io/gorm"
)

type OpcaoRepository interface {
	ListActive(ctx context.Context) ([]model.OpcaoFormulario, error)
	FindByTipoValor(ctx context.Context, tipo, valor string) (*model.OpcaoFormulario, error)
	Create(ctx context.Context, opcao *model.OpcaoFormulario) error
	Activate(ctx context.Context, opcao *model.OpcaoFormulario) error
	DeleteByTipoValor(ctx context.Context, tipo, valor string) (int64, error)
}

type opcaoRepository struct {
	db *gorm.DB
}

func NewOpcaoRepository(db *gorm.DB) OpcaoRepository {
	return &opcaoRepository{db: db}
}

func (r *opcaoRepository) ListActive(ctx context.Context) ([]model.OpcaoFormulario, error) {
	var opcoes []model.OpcaoFormulario
	err := GetDB(ctx, r.db).Where("ativo = ?", true).Order("tipo asc, valor asc").Find(&opcoes).Error
	return opcoes, err
}

func (r *opcaoRepository) FindByTipoValor(ctx context.Context, tipo, valor string) (*model.OpcaoFormulario, error) {
	var opcao model.OpcaoFormulario
	if err := GetDB(ctx, r.db).Where("tipo = ? AND valor = ?", tipo, valor).First(&opcao).Error; err != nil {
		return nil, err
	}
	return &opcao, nil
}

func (r *opcaoRepository) Create(ctx context.Context, opcao *model.OpcaoFormulario) error {
	return GetDB(ctx, r.db).Create(opcao).Error
}

// Activate re-enables an option and refreshes its finalidade
func (r *opcaoRepository) Activate(ctx context.Context, opcao *model.OpcaoFormulario) error {
	return GetDB(ctx, r.db).Model(opcao).Updates(map[string]interface{}{
		"ativo":      true,
		"finalidade": opcao.Finalidade,
	}).Error
}

func (r *opcaoRepository) DeleteByTipoValor(ctx context.Context, tipo, valor string) (int64, error) {
	result := GetDB(ctx, r.db).Where("tipo = ? AND valor = ?", tipo, valor).Delete(&model.OpcaoFormulario{})
	return result.RowsAffected, result.Error
}
