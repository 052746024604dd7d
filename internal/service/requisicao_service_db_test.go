package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"requisicoes/internal/model"
	"requisicoes/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Requisicao{}, &model.ItemRequisicao{}, &model.Rastreio{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestRequisicaoService_ApproveOnceAgainstDatabase(t *testing.T) {
	db := openServiceDB(t)
	docs := &fakeDocuments{result: GenerateResult{PDFURL: "https://x/a.pdf", FileName: "a.pdf", Pages: 1}}
	svc := NewRequisicaoService(
		repository.NewRequisicaoRepository(db),
		repository.NewItemRepository(db),
		repository.NewRastreioRepository(db),
		repository.NewTransactionManager(db),
		docs, &fakeNotifier{}, nil,
	)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u-1", CreateRequisicaoRequest{
		Solicitante: "Maria",
		LocalOrigem: "Almoxarifado",
		Destino:     "Obra Norte",
		Itens:       []ItemRequest{{Produto: "Cimento", Unidade: "SC", Quantidade: qty("10")}},
	})
	require.NoError(t, err)

	var innerErr error
	docs.during = func() {
		_, innerErr = svc.Approve(ctx, created.ID, "segundo@tropical.com")
	}
	_, outerErr := svc.Approve(ctx, created.ID, "primeiro@tropical.com")

	require.NoError(t, innerErr)
	assert.ErrorIs(t, outerErr, ErrInvalidTransition)

	var rows int64
	require.NoError(t, db.Model(&model.Rastreio{}).Where("requisicao_id = ?", created.ID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)

	var stored model.Requisicao
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, model.StatusAprovada, stored.Status)
}
