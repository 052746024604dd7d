package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"requisicoes/internal/pdf"
	"requisicoes/internal/storage"
)

// LogoSource supplies the header image of the delivery form
type LogoSource interface {
	Logo(ctx context.Context) ([]byte, error)
}

// LogoConfig locates the cached logo and its public origin
type LogoConfig struct {
	Bucket      string
	Object      string
	FallbackURL string
}

type logoProvider struct {
	store  storage.ObjectStore
	cfg    LogoConfig
	client *http.Client
}

func NewLogoProvider(store storage.ObjectStore, cfg LogoConfig, client *http.Client) LogoSource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &logoProvider{store: store, cfg: cfg, client: client}
}

// Logo returns the cached logo, seeding the cache from the fallback URL on first use.
func (p *logoProvider) Logo(ctx context.Context) ([]byte, error) {
	names, err := p.store.List(ctx, p.cfg.Bucket, p.cfg.Object)
	if err != nil {
		return nil, fmt.Errorf("failed to look up logo: %w", err)
	}

	if !slices.Contains(names, p.cfg.Object) && p.cfg.FallbackURL != "" {
		slog.Info("Logo not found in storage, uploading", "bucket", p.cfg.Bucket, "object", p.cfg.Object)
		if err := p.seed(ctx); err != nil {
			// The download below reports the definitive failure.
			slog.Warn("Failed to seed logo cache", "error", err)
		}
	}

	data, err := p.store.Download(ctx, p.cfg.Bucket, p.cfg.Object)
	if err != nil {
		return nil, fmt.Errorf("failed to load logo: %w", err)
	}
	return data, nil
}

func (p *logoProvider) seed(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.FallbackURL, nil)
	if err != nil {
		return err
	}
	res, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("falha ao carregar logo: %d", res.StatusCode)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	return p.store.Upload(ctx, p.cfg.Bucket, p.cfg.Object, data, pdf.SniffImage(data).MimeType(), true)
}
