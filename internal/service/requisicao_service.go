package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"requisicoes/internal/model"
	"requisicoes/internal/repository"
	ws "requisicoes/internal/websocket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const approvalNote = "Requisição aprovada e PDF gerado"

// DTOs
type ItemRequest struct {
	ID         string          `json:"id"`
	Produto    string          `json:"produto" binding:"required"`
	Unidade    string          `json:"unidade" binding:"required"`
	Quantidade decimal.Decimal `json:"quantidade" swaggertype:"number"`
}

type CreateRequisicaoRequest struct {
	Solicitante string        `json:"solicitante" binding:"required"`
	LocalOrigem string        `json:"local_origem"`
	Destino     string        `json:"destino" binding:"required"`
	Observacao  *string       `json:"observacao"`
	Itens       []ItemRequest `json:"itens" binding:"required,min=1,dive"`
}

type UpdateRequisicaoRequest struct {
	LocalOrigem string        `json:"local_origem"`
	Destino     string        `json:"destino" binding:"required"`
	Observacao  *string       `json:"observacao"`
	Itens       []ItemRequest `json:"itens" binding:"required,min=1,dive"`
}

// CreationNotifier announces new requisitions to external systems
type CreationNotifier interface {
	RequisitionCreated(ctx context.Context, req *model.Requisicao) error
}

type RequisicaoService interface {
	Create(ctx context.Context, userID string, req CreateRequisicaoRequest) (*model.Requisicao, error)
	List(ctx context.Context, filter repository.RequisicaoFilter) ([]model.Requisicao, int64, error)
	Get(ctx context.Context, id int64) (*model.Requisicao, error)
	Update(ctx context.Context, id int64, req UpdateRequisicaoRequest) (*model.Requisicao, error)
	Approve(ctx context.Context, id int64, approverEmail string) (GenerateResult, error)
	Regenerate(ctx context.Context, id int64) (GenerateResult, error)
	ListDestinos(ctx context.Context) ([]string, error)
}

type requisicaoService struct {
	reqRepo      repository.RequisicaoRepository
	itemRepo     repository.ItemRepository
	rastreioRepo repository.RastreioRepository
	txManager    repository.TransactionManager
	documents    DocumentService
	notifier     CreationNotifier
	hub          EventPublisher
	now          func() time.Time
}

func NewRequisicaoService(
	reqRepo repository.RequisicaoRepository,
	itemRepo repository.ItemRepository,
	rastreioRepo repository.RastreioRepository,
	txManager repository.TransactionManager,
	documents DocumentService,
	notifier CreationNotifier,
	hub EventPublisher,
) RequisicaoService {
	return &requisicaoService{
		reqRepo:      reqRepo,
		itemRepo:     itemRepo,
		rastreioRepo: rastreioRepo,
		txManager:    txManager,
		documents:    documents,
		notifier:     notifier,
		hub:          publisherOrNoop(hub),
		now:          time.Now,
	}
}

func (s *requisicaoService) Create(ctx context.Context, userID string, in CreateRequisicaoRequest) (*model.Requisicao, error) {
	if strings.TrimSpace(in.Solicitante) == "" || strings.TrimSpace(in.Destino) == "" {
		return nil, fmt.Errorf("%w: solicitante e destino são obrigatórios", ErrValidation)
	}
	if err := validateItems(in.Itens); err != nil {
		return nil, err
	}

	req := &model.Requisicao{
		UserID:      userID,
		Solicitante: strings.TrimSpace(in.Solicitante),
		LocalOrigem: strings.TrimSpace(in.LocalOrigem),
		Destino:     strings.TrimSpace(in.Destino),
		Observacao:  in.Observacao,
		Status:      model.StatusPendente,
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.reqRepo.Create(txCtx, req); err != nil {
			return fmt.Errorf("failed to create requisition: %w", err)
		}
		items := make([]model.ItemRequisicao, 0, len(in.Itens))
		for i, it := range in.Itens {
			items = append(items, newItem(req.ID, i, it))
		}
		if err := s.itemRepo.CreateBatch(txCtx, items); err != nil {
			return fmt.Errorf("failed to create items: %w", err)
		}
		req.Itens = items
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	logCtx := slog.With("requisicaoId", req.ID)
	logCtx.Info("Requisition created", "items", len(req.Itens), "destino", req.Destino)

	if s.notifier != nil {
		if err := s.notifier.RequisitionCreated(ctx, req); err != nil {
			logCtx.Warn("Failed to send creation notification", "error", err)
		}
	}
	s.hub.Publish(ws.Event{
		Type:         ws.EventRequisicaoCriada,
		RequisicaoID: req.ID,
		Status:       req.Status,
		Destino:      req.Destino,
	})

	return req, nil
}

func (s *requisicaoService) List(ctx context.Context, filter repository.RequisicaoFilter) ([]model.Requisicao, int64, error) {
	reqs, total, err := s.reqRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to list requisitions: %w", ErrUpstream, err)
	}
	return reqs, total, nil
}

func (s *requisicaoService) Get(ctx context.Context, id int64) (*model.Requisicao, error) {
	req, err := s.reqRepo.FindByIDWithItems(ctx, id)
	if err != nil {
		return nil, lookupError(id, err)
	}
	return req, nil
}

// Update edits a pending requisition. Items carrying an id are updated,
// items without one are inserted and stored items left out are deleted.
func (s *requisicaoService) Update(ctx context.Context, id int64, in UpdateRequisicaoRequest) (*model.Requisicao, error) {
	if strings.TrimSpace(in.Destino) == "" {
		return nil, fmt.Errorf("%w: destino é obrigatório", ErrValidation)
	}
	if err := validateItems(in.Itens); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.reqRepo.FindByIDWithItems(txCtx, id)
		if err != nil {
			return lookupError(id, err)
		}
		if req.Status != model.StatusPendente {
			return fmt.Errorf("%w: status %s", ErrInvalidTransition, req.Status)
		}

		stored := make(map[uuid.UUID]bool, len(req.Itens))
		for _, it := range req.Itens {
			stored[it.ID] = true
		}

		var created []model.ItemRequisicao
		for i, it := range in.Itens {
			if it.ID == "" {
				created = append(created, newItem(id, i, it))
				continue
			}
			itemID, err := uuid.Parse(it.ID)
			if err != nil || !stored[itemID] {
				return fmt.Errorf("%w: item %q não pertence à requisição", ErrValidation, it.ID)
			}
			delete(stored, itemID)
			item := newItem(id, i, it)
			item.ID = itemID
			if err := s.itemRepo.Update(txCtx, &item); err != nil {
				return fmt.Errorf("%w: failed to update item: %w", ErrUpstream, err)
			}
		}

		removed := make([]uuid.UUID, 0, len(stored))
		for itemID := range stored {
			removed = append(removed, itemID)
		}
		if err := s.itemRepo.DeleteByIDs(txCtx, id, removed); err != nil {
			return fmt.Errorf("%w: failed to delete items: %w", ErrUpstream, err)
		}
		if err := s.itemRepo.CreateBatch(txCtx, created); err != nil {
			return fmt.Errorf("%w: failed to create items: %w", ErrUpstream, err)
		}

		req.LocalOrigem = strings.TrimSpace(in.LocalOrigem)
		req.Destino = strings.TrimSpace(in.Destino)
		req.Observacao = in.Observacao
		if err := s.reqRepo.Update(txCtx, req); err != nil {
			return fmt.Errorf("%w: failed to update requisition: %w", ErrUpstream, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Requisition updated", "requisicaoId", id, "items", len(in.Itens))
	return s.Get(ctx, id)
}

// Approve generates the document of a pending requisition, marks it
// approved and records who approved it.
func (s *requisicaoService) Approve(ctx context.Context, id int64, approverEmail string) (GenerateResult, error) {
	req, err := s.reqRepo.FindByID(ctx, id)
	if err != nil {
		return GenerateResult{}, lookupError(id, err)
	}
	if req.Status != model.StatusPendente {
		return GenerateResult{}, fmt.Errorf("%w: status %s", ErrInvalidTransition, req.Status)
	}

	result, err := s.documents.GenerateDocument(ctx, id)
	if err != nil {
		return GenerateResult{}, err
	}

	approvedAt := s.now()
	note := approvalNote
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		ok, err := s.reqRepo.TransitionStatus(txCtx, id, model.StatusPendente, model.StatusAprovada)
		if err != nil {
			return fmt.Errorf("%w: failed to update status: %w", ErrUpstream, err)
		}
		if !ok {
			return fmt.Errorf("%w: requisition %d was approved concurrently", ErrInvalidTransition, id)
		}
		entry := &model.Rastreio{
			RequisicaoID:  id,
			AprovadoPor:   &approverEmail,
			DataAprovacao: &approvedAt,
			Observacao:    &note,
		}
		if err := s.rastreioRepo.Create(txCtx, entry); err != nil {
			return fmt.Errorf("%w: failed to record approval: %w", ErrUpstream, err)
		}
		return nil
	})
	if err != nil {
		return GenerateResult{}, err
	}

	slog.Info("Requisition approved", "requisicaoId", id, "aprovadoPor", approverEmail)
	s.hub.Publish(ws.Event{
		Type:         ws.EventRequisicaoAprovada,
		RequisicaoID: id,
		Status:       model.StatusAprovada,
		Destino:      req.Destino,
		PDFURL:       result.PDFURL,
	})
	return result, nil
}

func (s *requisicaoService) Regenerate(ctx context.Context, id int64) (GenerateResult, error) {
	return s.documents.GenerateDocument(ctx, id)
}

func (s *requisicaoService) ListDestinos(ctx context.Context) ([]string, error) {
	destinos, err := s.reqRepo.ListDestinos(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list destinations: %w", ErrUpstream, err)
	}
	return destinos, nil
}

func validateItems(items []ItemRequest) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: a requisição precisa de ao menos um item", ErrValidation)
	}
	for i, it := range items {
		if strings.TrimSpace(it.Produto) == "" || strings.TrimSpace(it.Unidade) == "" {
			return fmt.Errorf("%w: item %d sem produto ou unidade", ErrValidation, i+1)
		}
		if !it.Quantidade.IsPositive() {
			return fmt.Errorf("%w: item %d com quantidade inválida", ErrValidation, i+1)
		}
	}
	return nil
}

func newItem(requisicaoID int64, pos int, it ItemRequest) model.ItemRequisicao {
	return model.ItemRequisicao{
		RequisicaoID: requisicaoID,
		Posicao:      pos,
		Produto:      strings.TrimSpace(it.Produto),
		Unidade:      strings.TrimSpace(it.Unidade),
		Quantidade:   it.Quantidade,
	}
}

func lookupError(id int64, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return fmt.Errorf("%w: failed to load requisition %d: %w", ErrUpstream, id, err)
}
