package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"requisicoes/internal/model"
	"requisicoes/internal/pdf"
	"requisicoes/internal/repository"
	"requisicoes/internal/storage"
	ws "requisicoes/internal/websocket"
)

const pdfContentType = "application/pdf"

// GenerateResult describes a delivered document
type GenerateResult struct {
	PDFURL   string `json:"pdfUrl"`
	FileName string `json:"fileName"`
	Pages    int    `json:"pages"`
}

// Renderer turns a requisition document into PDF bytes
type Renderer interface {
	Render(doc pdf.Document) ([]byte, error)
}

type DocumentService interface {
	GenerateDocument(ctx context.Context, requisicaoID int64) (GenerateResult, error)
}

// DocumentConfig holds the delivery settings of generated documents
type DocumentConfig struct {
	Bucket string
	// Clock is the generation time source, time.Now when nil.
	Clock func() time.Time
}

type documentService struct {
	reqRepo  repository.RequisicaoRepository
	store    storage.ObjectStore
	logos    LogoSource
	renderer Renderer
	hub      EventPublisher
	bucket   string
	now      func() time.Time
}

func NewDocumentService(
	reqRepo repository.RequisicaoRepository,
	store storage.ObjectStore,
	logos LogoSource,
	renderer Renderer,
	hub EventPublisher,
	cfg DocumentConfig,
) DocumentService {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &documentService{
		reqRepo:  reqRepo,
		store:    store,
		logos:    logos,
		renderer: renderer,
		hub:      publisherOrNoop(hub),
		bucket:   cfg.Bucket,
		now:      now,
	}
}

func (s *documentService) GenerateDocument(ctx context.Context, requisicaoID int64) (GenerateResult, error) {
	logCtx := slog.With("requisicaoId", requisicaoID)

	req, err := s.reqRepo.FindByIDWithItems(ctx, requisicaoID)
	if err != nil {
		return GenerateResult{}, lookupError(requisicaoID, err)
	}

	generatedAt := s.now()
	doc := buildDocument(req, generatedAt)
	if s.logos != nil {
		logo, err := s.logos.Logo(ctx)
		if err != nil {
			logCtx.Warn("Failed to load logo, generating without it", "error", err)
		} else {
			doc.Logo = logo
		}
	}

	data, err := s.renderer.Render(doc)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("failed to render document: %w", err)
	}
	pages, err := pdf.Inspect(data)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("rendered document is invalid: %w", err)
	}

	fileName := fmt.Sprintf("requisicao_%d_%d.pdf", requisicaoID, generatedAt.UnixMilli())
	if err := s.store.Upload(ctx, s.bucket, fileName, data, pdfContentType, false); err != nil {
		return GenerateResult{}, fmt.Errorf("%w: failed to upload %s: %w", ErrUpstream, fileName, err)
	}

	url := s.store.PublicURL(s.bucket, fileName)
	if err := s.reqRepo.SetPDFURL(ctx, requisicaoID, url); err != nil {
		return GenerateResult{}, fmt.Errorf("%w: failed to record document url: %w", ErrUpstream, err)
	}

	logCtx.Info("PDF generated successfully", "fileName", fileName, "pages", pages, "items", len(doc.Items))
	s.hub.Publish(ws.Event{
		Type:         ws.EventDocumentoGerado,
		RequisicaoID: requisicaoID,
		Status:       req.Status,
		PDFURL:       url,
	})

	return GenerateResult{PDFURL: url, FileName: fileName, Pages: pages}, nil
}

func buildDocument(req *model.Requisicao, date time.Time) pdf.Document {
	items := make([]pdf.Item, 0, len(req.Itens))
	for _, it := range req.Itens {
		items = append(items, pdf.Item{Product: it.Produto, Unit: it.Unidade, Quantity: it.Quantidade})
	}
	return pdf.Document{
		Requisition: pdf.Requisition{
			ID:          req.ID,
			Origin:      req.LocalOrigem,
			Destination: req.Destino,
		},
		Items: items,
		Date:  date,
	}
}
