package service

import (
	"context"
	"fmt"
	"time"

	"requisicoes/internal/model"
	"requisicoes/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const itemFetchConcurrency = 8

// RastreioRequisicao is the requisition summary shown next to an approval
type RastreioRequisicao struct {
	ID          int64   `json:"id"`
	Solicitante string  `json:"solicitante"`
	LocalOrigem string  `json:"local_origem"`
	Destino     string  `json:"destino"`
	PDFURL      *string `json:"pdf_url"`
}

type RastreioEntry struct {
	ID            uuid.UUID              `json:"id"`
	RequisicaoID  int64                  `json:"requisicao_id"`
	AprovadoPor   *string                `json:"aprovado_por"`
	DataAprovacao *time.Time             `json:"data_aprovacao"`
	Observacao    *string                `json:"observacao"`
	Requisicao    *RastreioRequisicao    `json:"requisicao"`
	Itens         []model.ItemRequisicao `json:"itens"`
}

type RastreioList struct {
	Entries           []RastreioEntry `json:"registros"`
	Total             int64           `json:"total"`
	ItensUltimos7Dias int64           `json:"itens_ultimos_7_dias"`
}

type RastreioService interface {
	List(ctx context.Context, search string, page, limit int) (RastreioList, error)
}

type rastreioService struct {
	rastreioRepo repository.RastreioRepository
	itemRepo     repository.ItemRepository
	now          func() time.Time
}

func NewRastreioService(rastreioRepo repository.RastreioRepository, itemRepo repository.ItemRepository) RastreioService {
	return &rastreioService{rastreioRepo: rastreioRepo, itemRepo: itemRepo, now: time.Now}
}

func (s *rastreioService) List(ctx context.Context, search string, page, limit int) (RastreioList, error) {
	rows, total, err := s.rastreioRepo.List(ctx, search, page, limit)
	if err != nil {
		return RastreioList{}, fmt.Errorf("%w: failed to list approvals: %w", ErrUpstream, err)
	}

	entries := make([]RastreioEntry, len(rows))
	var recent int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(itemFetchConcurrency)
	g.Go(func() error {
		n, err := s.itemRepo.CountApprovedSince(gctx, s.now().Add(-recentItemsWindow))
		recent = n
		return err
	})
	for i, row := range rows {
		entries[i] = toRastreioEntry(row)
		g.Go(func() error {
			items, err := s.itemRepo.ListByRequisicao(gctx, row.RequisicaoID)
			if err != nil {
				return fmt.Errorf("items of requisition %d: %w", row.RequisicaoID, err)
			}
			entries[i].Itens = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return RastreioList{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	return RastreioList{Entries: entries, Total: total, ItensUltimos7Dias: recent}, nil
}

func toRastreioEntry(row model.Rastreio) RastreioEntry {
	entry := RastreioEntry{
		ID:            row.ID,
		RequisicaoID:  row.RequisicaoID,
		AprovadoPor:   row.AprovadoPor,
		DataAprovacao: row.DataAprovacao,
		Observacao:    row.Observacao,
		Itens:         []model.ItemRequisicao{},
	}
	if row.Requisicao != nil {
		entry.Requisicao = &RastreioRequisicao{
			ID:          row.Requisicao.ID,
			Solicitante: row.Requisicao.Solicitante,
			LocalOrigem: row.Requisicao.LocalOrigem,
			Destino:     row.Requisicao.Destino,
			PDFURL:      row.Requisicao.PDFURL,
		}
	}
	return entry
}
