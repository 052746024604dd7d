package repository

import (
	"context"
	"strconv"
	"strings"

	"requisicoes/internal/model"

	"gorm.io/gorm"
)

type RastreioRepository interface {
	Create(ctx context.Context, entry *model.Rastreio) error
	List(ctx context.Context, search string, page, limit int) ([]model.Rastreio, int64, error)
}

type rastreioRepository struct {
	db *gorm.DB
}

func NewRastreioRepository(db *gorm.DB) RastreioRepository {
	return &rastreioRepository{db: db}
}

func (r *rastreioRepository) Create(ctx context.Context, entry *model.Rastreio) error {
	return GetDB(ctx, r.db).Create(entry).Error
}

func (r *rastreioRepository) List(ctx context.Context, search string, page, limit int) ([]model.Rastreio, int64, error) {
	var entries []model.Rastreio
	var total int64

	query := GetDB(ctx, r.db).Model(&model.Rastreio{}).
		Joins("JOIN requisicoes ON requisicoes.id = rastreio.requisicao_id")
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			query = query.Where("LOWER(requisicoes.destino) LIKE ? OR LOWER(requisicoes.solicitante) LIKE ? OR requisicoes.id = ?", like, like, id)
		} else {
			query = query.Where("LOWER(requisicoes.destino) LIKE ? OR LOWER(requisicoes.solicitante) LIKE ?", like, like)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Requisicao").
		Order("rastreio.data_aprovacao desc").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
