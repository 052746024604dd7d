package service

import (
	"context"
	"testing"

	"requisicoes/internal/model"
	"requisicoes/internal/repository"
	ws "requisicoes/internal/websocket"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requisicaoFixture struct {
	db       *fakeStore
	docs     *fakeDocuments
	notifier *fakeNotifier
	hub      *fakePublisher
	svc      RequisicaoService
}

func newRequisicaoFixture() *requisicaoFixture {
	f := &requisicaoFixture{
		db:       newFakeStore(),
		docs:     &fakeDocuments{result: GenerateResult{PDFURL: "https://x/requisicao.pdf", FileName: "requisicao.pdf", Pages: 1}},
		notifier: &fakeNotifier{},
		hub:      &fakePublisher{},
	}
	f.svc = NewRequisicaoService(f.db, itemRepo{f.db}, rastreioRepo{f.db}, fakeTx{}, f.docs, f.notifier, f.hub)
	return f
}

func qty(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRequisicaoService_Create(t *testing.T) {
	f := newRequisicaoFixture()
	obs := "urgente"

	req, err := f.svc.Create(context.Background(), "user-1", CreateRequisicaoRequest{
		Solicitante: " Maria ",
		LocalOrigem: "Almoxarifado",
		Destino:     "Obra Norte",
		Observacao:  &obs,
		Itens: []ItemRequest{
			{Produto: "Cimento", Unidade: "SC", Quantidade: qty("10")},
			{Produto: "Areia", Unidade: "M3", Quantidade: qty("2.5")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria", req.Solicitante)
	assert.Equal(t, model.StatusPendente, req.Status)
	assert.Equal(t, "user-1", req.UserID)

	items, _ := f.db.ListByRequisicao(context.Background(), req.ID)
	require.Len(t, items, 2)
	assert.Equal(t, "Cimento", items[0].Produto)
	assert.Equal(t, 1, items[1].Posicao)

	assert.Equal(t, []int64{req.ID}, f.notifier.sent)
	assert.Equal(t, []string{ws.EventRequisicaoCriada}, f.hub.types())
}

func TestRequisicaoService_CreateSurvivesNotifierFailure(t *testing.T) {
	f := newRequisicaoFixture()
	f.notifier.err = errBoom

	_, err := f.svc.Create(context.Background(), "u", CreateRequisicaoRequest{
		Solicitante: "Maria", Destino: "Obra",
		Itens: []ItemRequest{{Produto: "Cimento", Unidade: "SC", Quantidade: qty("1")}},
	})
	assert.NoError(t, err)
}

func TestRequisicaoService_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		in   CreateRequisicaoRequest
	}{
		{"no items", CreateRequisicaoRequest{Solicitante: "M", Destino: "D"}},
		{"zero quantity", CreateRequisicaoRequest{Solicitante: "M", Destino: "D",
			Itens: []ItemRequest{{Produto: "P", Unidade: "U", Quantidade: qty("0")}}}},
		{"negative quantity", CreateRequisicaoRequest{Solicitante: "M", Destino: "D",
			Itens: []ItemRequest{{Produto: "P", Unidade: "U", Quantidade: qty("-1")}}}},
		{"blank product", CreateRequisicaoRequest{Solicitante: "M", Destino: "D",
			Itens: []ItemRequest{{Produto: "  ", Unidade: "U", Quantidade: qty("1")}}}},
		{"blank destination", CreateRequisicaoRequest{Solicitante: "M", Destino: " ",
			Itens: []ItemRequest{{Produto: "P", Unidade: "U", Quantidade: qty("1")}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRequisicaoFixture()
			_, err := f.svc.Create(context.Background(), "u", tt.in)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, f.notifier.sent)
		})
	}
}

func TestRequisicaoService_UpdateDiffsItems(t *testing.T) {
	f := newRequisicaoFixture()
	req := f.db.seed(model.Requisicao{Destino: "Obra Norte"},
		model.ItemRequisicao{Produto: "Cimento", Unidade: "SC", Quantidade: qty("10")},
		model.ItemRequisicao{Produto: "Areia", Unidade: "M3", Quantidade: qty("2")},
	)
	stored, _ := f.db.ListByRequisicao(context.Background(), req.ID)
	keep := stored[0].ID.String()

	got, err := f.svc.Update(context.Background(), req.ID, UpdateRequisicaoRequest{
		Destino: "Obra Sul",
		Itens: []ItemRequest{
			{ID: keep, Produto: "Cimento CP2", Unidade: "SC", Quantidade: qty("12")},
			{Produto: "Brita", Unidade: "M3", Quantidade: qty("3")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Obra Sul", got.Destino)
	require.Len(t, got.Itens, 2)
	assert.Equal(t, keep, got.Itens[0].ID.String())
	assert.Equal(t, "Cimento CP2", got.Itens[0].Produto)
	assert.Equal(t, "Brita", got.Itens[1].Produto)
}

func TestRequisicaoService_UpdateRejectsForeignItem(t *testing.T) {
	f := newRequisicaoFixture()
	req := f.db.seed(model.Requisicao{Destino: "Obra Norte"},
		model.ItemRequisicao{Produto: "Cimento", Unidade: "SC", Quantidade: qty("10")})

	_, err := f.svc.Update(context.Background(), req.ID, UpdateRequisicaoRequest{
		Destino: "Obra Norte",
		Itens:   []ItemRequest{{ID: "00000000-0000-0000-0000-000000000001", Produto: "X", Unidade: "U", Quantidade: qty("1")}},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRequisicaoService_UpdateApprovedIsRejected(t *testing.T) {
	f := newRequisicaoFixture()
	req := f.db.seed(model.Requisicao{Destino: "Obra Norte", Status: model.StatusAprovada})

	_, err := f.svc.Update(context.Background(), req.ID, UpdateRequisicaoRequest{
		Destino: "Obra Norte",
		Itens:   []ItemRequest{{Produto: "X", Unidade: "U", Quantidade: qty("1")}},
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRequisicaoService_Approve(t *testing.T) {
	f := newRequisicaoFixture()
	req := f.db.seed(model.Requisicao{Destino: "Obra Norte"})

	res, err := f.svc.Approve(context.Background(), req.ID, "chefe@tropical.com")
	require.NoError(t, err)
	assert.Equal(t, "https://x/requisicao.pdf", res.PDFURL)
	assert.Equal(t, []int64{req.ID}, f.docs.calls)

	stored, _ := f.db.FindByID(context.Background(), req.ID)
	assert.Equal(t, model.StatusAprovada, stored.Status)

	require.Len(t, f.db.rastreio, 1)
	entry := f.db.rastreio[0]
	assert.Equal(t, req.ID, entry.RequisicaoID)
	assert.Equal(t, "chefe@tropical.com", *entry.AprovadoPor)
	assert.Equal(t, "Requisição aprovada e PDF gerado", *entry.Observacao)
	assert.NotNil(t, entry.DataAprovacao)

	assert.Equal(t, []string{ws.EventRequisicaoAprovada}, f.hub.types())
}

func TestRequisicaoService_ApproveRequiresPending(t *testing.T) {
	f := newRequisicaoFixture()
	req := f.db.seed(model.Requisicao{Destino: "Obra Norte", Status: model.StatusAprovada})

	_, err := f.svc.Approve(context.Background(), req.ID, "a@b")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, f.docs.calls)
}

func TestRequisicaoService_ApproveLosesToConcurrentApproval(t *testing.T) {
	f := newRequisicaoFixture()
	req := f.db.seed(model.Requisicao{Destino: "Obra Norte"})

	var innerErr error
	f.docs.during = func() {
		_, innerErr = f.svc.Approve(context.Background(), req.ID, "segundo@tropical.com")
	}

	_, err := f.svc.Approve(context.Background(), req.ID, "primeiro@tropical.com")
	require.NoError(t, innerErr)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.Len(t, f.db.rastreio, 1)
	assert.Equal(t, "segundo@tropical.com", *f.db.rastreio[0].AprovadoPor)
	assert.Equal(t, []string{ws.EventRequisicaoAprovada}, f.hub.types())
}

func TestRequisicaoService_ApproveKeepsStatusWhenGenerationFails(t *testing.T) {
	f := newRequisicaoFixture()
	f.docs.err = ErrUpstream
	req := f.db.seed(model.Requisicao{Destino: "Obra Norte"})

	_, err := f.svc.Approve(context.Background(), req.ID, "a@b")
	assert.ErrorIs(t, err, ErrUpstream)

	stored, _ := f.db.FindByID(context.Background(), req.ID)
	assert.Equal(t, model.StatusPendente, stored.Status)
	assert.Empty(t, f.db.rastreio)
}

func TestRequisicaoService_GetUnknown(t *testing.T) {
	f := newRequisicaoFixture()
	_, err := f.svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Approve(context.Background(), 99, "a@b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRequisicaoService_ListAndRegenerate(t *testing.T) {
	f := newRequisicaoFixture()
	f.db.seed(model.Requisicao{Destino: "Obra Norte"})
	b := f.db.seed(model.Requisicao{Destino: "Obra Sul", Status: model.StatusAprovada})

	list, total, err := f.svc.List(context.Background(), repository.RequisicaoFilter{Status: model.StatusAprovada, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, b.ID, list[0].ID)

	_, err = f.svc.Regenerate(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID}, f.docs.calls)
	stored, _ := f.db.FindByID(context.Background(), b.ID)
	assert.Equal(t, model.StatusAprovada, stored.Status)
}
