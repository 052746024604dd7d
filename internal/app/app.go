// Package app wires repositories, services and handlers for both binaries.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"requisicoes/internal/config"
	"requisicoes/internal/database"
	"requisicoes/internal/handler"
	"requisicoes/internal/middleware"
	"requisicoes/internal/notifier"
	"requisicoes/internal/pdf"
	"requisicoes/internal/repository"
	"requisicoes/internal/service"
	"requisicoes/internal/storage"
	"requisicoes/internal/websocket"

	gcs "cloud.google.com/go/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// App holds the dependency graph
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Hub    *websocket.Hub
	Auth   *middleware.Authenticator

	Documents   service.DocumentService
	Pins        service.PinService
	Requisicoes service.RequisicaoService
	Rastreio    service.RastreioService
	Opcoes      service.OpcaoService
	Statistics  service.StatisticsService

	closers []func() error
}

// New connects to the record and object stores and builds every service.
// With liveFeed set, events go to a websocket hub whose Run loop the caller
// must start; otherwise they are discarded.
func New(ctx context.Context, cfg *config.Config, liveFeed bool) (*App, error) {
	db, err := database.NewConnection(cfg.DB.DSN())
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	slog.Info("Connected to PostgreSQL successfully")

	a := &App{Config: cfg, DB: db}
	store, err := a.objectStore(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := pdf.LoadProfile(cfg.FormProfile)
	if err != nil {
		return nil, err
	}
	if cfg.City != "" {
		profile.City = cfg.City
	}

	events, err := notifier.New(cfg.WebhookURL)
	if err != nil {
		return nil, err
	}

	if liveFeed {
		a.Hub = websocket.NewHub()
	}
	a.Auth = middleware.NewAuthenticator([]byte(cfg.JWTSecret))

	reqRepo := repository.NewRequisicaoRepository(db)
	itemRepo := repository.NewItemRepository(db)
	rastreioRepo := repository.NewRastreioRepository(db)
	opcaoRepo := repository.NewOpcaoRepository(db)
	txManager := repository.NewTransactionManager(db)

	logos := service.NewLogoProvider(store, service.LogoConfig{
		Bucket:      cfg.ImageBucket,
		Object:      cfg.LogoObject,
		FallbackURL: cfg.LogoFallbackURL,
	}, nil)
	layout := pdf.NewLayout(profile, cfg.LegacyOverflow)

	a.Documents = service.NewDocumentService(reqRepo, store, logos, layout, a.publisher(), service.DocumentConfig{Bucket: cfg.PDFBucket})
	a.Pins = service.NewPinService(cfg.AppPin, cfg.AppPinHash)
	a.Requisicoes = service.NewRequisicaoService(reqRepo, itemRepo, rastreioRepo, txManager, a.Documents, events, a.publisher())
	a.Rastreio = service.NewRastreioService(rastreioRepo, itemRepo)
	a.Opcoes = service.NewOpcaoService(opcaoRepo)
	a.Statistics = service.NewStatisticsService(reqRepo, itemRepo)

	return a, nil
}

func (a *App) publisher() service.EventPublisher {
	if a.Hub == nil {
		return nil
	}
	return a.Hub
}

func (a *App) objectStore(ctx context.Context) (storage.ObjectStore, error) {
	if a.Config.StorageDriver == "memory" {
		slog.Warn("Using in-memory object store, generated documents are not persisted")
		return storage.NewMemoryStore(a.Config.PublicBaseURL), nil
	}
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	a.closers = append(a.closers, client.Close)
	return storage.NewGCSStore(client, a.Config.PublicBaseURL), nil
}

// CORS answers preflight requests the way the browser client expects
func (a *App) CORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = a.Config.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "apikey", "x-client-info"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	return cors.New(corsConfig)
}

// FunctionHandler exposes generate-pdf and validate-pin
func (a *App) FunctionHandler() *handler.FunctionHandler {
	return handler.NewFunctionHandler(a.Documents, a.Pins)
}

// RegisterRoutes mounts every REST route on router
func (a *App) RegisterRoutes(router *gin.RouterGroup) {
	a.FunctionHandler().RegisterRoutes(router)
	handler.NewRequisicaoHandler(a.Requisicoes, a.Auth).RegisterRoutes(router)
	handler.NewRastreioHandler(a.Rastreio, a.Auth).RegisterRoutes(router)
	handler.NewOpcaoHandler(a.Opcoes, a.Auth).RegisterRoutes(router)
	handler.NewStatisticsHandler(a.Statistics, a.Auth).RegisterRoutes(router)
}

// Close releases external clients
func (a *App) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			slog.Warn("Failed to close client", "error", err)
		}
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
