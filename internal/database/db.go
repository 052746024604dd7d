package database

import (
	"log/slog"

	"requisicoes/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		slog.Warn("Failed to auto-migrate models", "error", err)
	}
	return db, nil
}

// Migrate creates or updates the requisition tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Requisicao{},
		&model.ItemRequisicao{},
		&model.Rastreio{},
		&model.OpcaoFormulario{},
	)
}
