package repository

import (
	"context"
	"time"

	"requisicoes/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ItemRepository interface {
	CreateBatch(ctx context.Context, items []model.ItemRequisicao) error
	Update(ctx context.Context, item *model.ItemRequisicao) error
	DeleteByIDs(ctx context.Context, requisicaoID int64, ids []uuid.UUID) error
	ListByRequisicao(ctx context.Context, requisicaoID int64) ([]model.ItemRequisicao, error)
	CountApprovedSince(ctx context.Context, since time.Time) (int64, error)
	SumQuantitySince(ctx context.Context, since time.Time) (decimal.Decimal, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) CreateBatch(ctx context.Context, items []model.ItemRequisicao) error {
	if len(items) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).Create(&items).Error
}

func (r *itemRepository) Update(ctx context.Context, item *model.ItemRequisicao) error {
	result := GetDB(ctx, r.db).Model(&model.ItemRequisicao{}).
		Where("id = ? AND requisicao_id = ?", item.ID, item.RequisicaoID).
		Updates(map[string]interface{}{
			"produto":    item.Produto,
			"unidade":    item.Unidade,
			"quantidade": item.Quantidade,
			"posicao":    item.Posicao,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itemRepository) DeleteByIDs(ctx context.Context, requisicaoID int64, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).
		Where("requisicao_id = ? AND id IN ?", requisicaoID, ids).
		Delete(&model.ItemRequisicao{}).Error
}

func (r *itemRepository) ListByRequisicao(ctx context.Context, requisicaoID int64) ([]model.ItemRequisicao, error) {
	var items []model.ItemRequisicao
	err := GetDB(ctx, r.db).
		Where("requisicao_id = ?", requisicaoID).
		Order("posicao asc, created_at asc").
		Find(&items).Error
	return items, err
}

// CountApprovedSince counts item lines of requisitions approved at or after since
func (r *itemRepository) CountApprovedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Table("itens_requisicao").
		Joins("JOIN rastreio ON rastreio.requisicao_id = itens_requisicao.requisicao_id").
		Where("rastreio.data_aprovacao >= ?", since).
		Count(&count).Error
	return count, err
}

// SumQuantitySince adds up the quantities of items from requisitions created at or after since
func (r *itemRepository) SumQuantitySince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := GetDB(ctx, r.db).Table("itens_requisicao").
		Select("COALESCE(SUM(itens_requisicao.quantidade), 0) as total").
		Joins("JOIN requisicoes ON requisicoes.id = itens_requisicao.requisicao_id").
		Where("requisicoes.created_at >= ?", since).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}
