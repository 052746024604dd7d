package service

import (
	"context"
	"fmt"
	"time"

	"requisicoes/internal/model"
	"requisicoes/internal/repository"

	"golang.org/x/sync/errgroup"
)

const (
	recentItemsWindow = 7 * 24 * time.Hour
	destinoWindow     = 30 * 24 * time.Hour
)

type StatisticsService interface {
	GetDashboard(ctx context.Context) (model.DashboardResponse, error)
}

type statisticsService struct {
	reqRepo  repository.RequisicaoRepository
	itemRepo repository.ItemRepository
	now      func() time.Time
}

func NewStatisticsService(reqRepo repository.RequisicaoRepository, itemRepo repository.ItemRepository) StatisticsService {
	return &statisticsService{reqRepo: reqRepo, itemRepo: itemRepo, now: time.Now}
}

// GetDashboard runs the four dashboard queries concurrently
func (s *statisticsService) GetDashboard(ctx context.Context) (model.DashboardResponse, error) {
	var resp model.DashboardResponse
	now := s.now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.reqRepo.CountByStatus(gctx, model.StatusPendente)
		resp.Pendentes = n
		return err
	})
	g.Go(func() error {
		n, err := s.reqRepo.CountByStatus(gctx, model.StatusAprovada)
		resp.Aprovadas = n
		return err
	})
	g.Go(func() error {
		total, err := s.itemRepo.SumQuantitySince(gctx, now.Add(-recentItemsWindow))
		resp.ItensUltimosDias = total
		return err
	})
	g.Go(func() error {
		counts, err := s.reqRepo.CountByDestinoSince(gctx, now.Add(-destinoWindow))
		resp.PorDestino = counts
		return err
	})
	if err := g.Wait(); err != nil {
		return model.DashboardResponse{}, fmt.Errorf("%w: failed to load dashboard: %w", ErrUpstream, err)
	}

	if resp.PorDestino == nil {
		resp.PorDestino = []model.DestinoCount{}
	}
	return resp, nil
}
