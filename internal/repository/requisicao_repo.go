package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"requisicoes/internal/model"

	"gorm.io/gorm"
)

// RequisicaoFilter narrows List results
type RequisicaoFilter struct {
	Status  string
	Destino string
	Search  string
	Page    int
	Limit   int
}

type RequisicaoRepository interface {
	Create(ctx context.Context, req *model.Requisicao) error
	Update(ctx context.Context, req *model.Requisicao) error
	FindByID(ctx context.Context, id int64) (*model.Requisicao, error)
	FindByIDWithItems(ctx context.Context, id int64) (*model.Requisicao, error)
	List(ctx context.Context, filter RequisicaoFilter) ([]model.Requisicao, int64, error)
	TransitionStatus(ctx context.Context, id int64, from, to string) (bool, error)
	SetPDFURL(ctx context.Context, id int64, url string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountByDestinoSince(ctx context.Context, since time.Time) ([]model.DestinoCount, error)
	ListDestinos(ctx context.Context) ([]string, error)
}

type requisicaoRepository struct {
	db *gorm.DB
}

func NewRequisicaoRepository(db *gorm.DB) RequisicaoRepository {
	return &requisicaoRepository{db: db}
}

func (r *requisicaoRepository) Create(ctx context.Context, req *model.Requisicao) error {
	return GetDB(ctx, r.db).Create(req).Error
}

// Update saves the header columns only, items are handled by ItemRepository
func (r *requisicaoRepository) Update(ctx context.Context, req *model.Requisicao) error {
	result := GetDB(ctx, r.db).Model(&model.Requisicao{}).Where("id = ?", req.ID).
		Updates(map[string]interface{}{
			"local_origem": req.LocalOrigem,
			"destino":      req.Destino,
			"observacao":   req.Observacao,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *requisicaoRepository) FindByID(ctx context.Context, id int64) (*model.Requisicao, error) {
	var req model.Requisicao
	if err := GetDB(ctx, r.db).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requisicaoRepository) FindByIDWithItems(ctx context.Context, id int64) (*model.Requisicao, error) {
	var req model.Requisicao
	err := GetDB(ctx, r.db).
		Preload("Itens", func(db *gorm.DB) *gorm.DB {
			return db.Order("posicao asc, created_at asc")
		}).
		First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requisicaoRepository) List(ctx context.Context, filter RequisicaoFilter) ([]model.Requisicao, int64, error) {
	var reqs []model.Requisicao
	var total int64

	query := GetDB(ctx, r.db).Model(&model.Requisicao{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Destino != "" {
		query = query.Where("destino = ?", filter.Destino)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			query = query.Where("LOWER(solicitante) LIKE ? OR LOWER(destino) LIKE ? OR id = ?", like, like, id)
		} else {
			query = query.Where("LOWER(solicitante) LIKE ? OR LOWER(destino) LIKE ?", like, like)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("created_at desc, id desc").Offset(offset).Limit(filter.Limit).Find(&reqs).Error; err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}

// TransitionStatus moves a requisition from one status to another. It
// reports false when the row is missing or no longer in the from status.
func (r *requisicaoRepository) TransitionStatus(ctx context.Context, id int64, from, to string) (bool, error) {
	result := GetDB(ctx, r.db).Model(&model.Requisicao{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{"status": to, "updated_at": time.Now()})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *requisicaoRepository) SetPDFURL(ctx context.Context, id int64, url string) error {
	result := GetDB(ctx, r.db).Model(&model.Requisicao{}).Where("id = ?", id).
		Updates(map[string]interface{}{"pdf_url": url, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *requisicaoRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Requisicao{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *requisicaoRepository) CountByDestinoSince(ctx context.Context, since time.Time) ([]model.DestinoCount, error) {
	var rows []model.DestinoCount
	err := GetDB(ctx, r.db).Table("requisicoes").
		Select("destino, COUNT(*) as quantidade").
		Where("created_at >= ?", since).
		Group("destino").
		Order("quantidade desc, destino asc").
		Scan(&rows).Error
	return rows, err
}

func (r *requisicaoRepository) ListDestinos(ctx context.Context) ([]string, error) {
	var destinos []string
	err := GetDB(ctx, r.db).Model(&model.Requisicao{}).
		Distinct("destino").
		Order("destino asc").
		Pluck("destino", &destinos).Error
	return destinos, err
}
