package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"requisicoes/internal/model"
	"requisicoes/internal/pdf"
	"requisicoes/internal/repository"
	ws "requisicoes/internal/websocket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errBoom = errors.New("boom")

// fakeStore keeps requisitions and their items in memory and implements
// the requisition, item and rastreio repositories.
type fakeStore struct {
	mu       sync.Mutex
	nextID   int64
	reqs     map[int64]*model.Requisicao
	items    map[int64][]model.ItemRequisicao
	rastreio []model.Rastreio

	findErr   error
	setURLErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, reqs: map[int64]*model.Requisicao{}, items: map[int64][]model.ItemRequisicao{}}
}

func (f *fakeStore) seed(req model.Requisicao, items ...model.ItemRequisicao) *model.Requisicao {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.ID == 0 {
		req.ID = f.nextID
	}
	if req.ID >= f.nextID {
		f.nextID = req.ID + 1
	}
	if req.Status == "" {
		req.Status = model.StatusPendente
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].RequisicaoID = req.ID
		items[i].Posicao = i
	}
	f.reqs[req.ID] = &req
	f.items[req.ID] = items
	return &req
}

func (f *fakeStore) Create(_ context.Context, req *model.Requisicao) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	req.ID = f.nextID
	f.nextID++
	cp := *req
	f.reqs[req.ID] = &cp
	return nil
}

func (f *fakeStore) Update(_ context.Context, req *model.Requisicao) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.reqs[req.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.LocalOrigem = req.LocalOrigem
	stored.Destino = req.Destino
	stored.Observacao = req.Observacao
	return nil
}

func (f *fakeStore) FindByID(_ context.Context, id int64) (*model.Requisicao, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	req, ok := f.reqs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *req
	return &cp, nil
}

func (f *fakeStore) FindByIDWithItems(ctx context.Context, id int64) (*model.Requisicao, error) {
	req, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Itens, _ = f.ListByRequisicao(ctx, id)
	return req, nil
}

func (f *fakeStore) List(_ context.Context, filter repository.RequisicaoFilter) ([]model.Requisicao, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Requisicao
	for _, r := range f.reqs {
		if filter.Status == "" || r.Status == filter.Status {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeStore) TransitionStatus(_ context.Context, id int64, from, to string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.reqs[id]
	if !ok || req.Status != from {
		return false, nil
	}
	req.Status = to
	return true, nil
}

func (f *fakeStore) SetPDFURL(_ context.Context, id int64, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setURLErr != nil {
		return f.setURLErr
	}
	req, ok := f.reqs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	req.PDFURL = &url
	return nil
}

func (f *fakeStore) CountByStatus(_ context.Context, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, r := range f.reqs {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountByDestinoSince(context.Context, time.Time) ([]model.DestinoCount, error) {
	return []model.DestinoCount{{Destino: "Obra Norte", Quantidade: 2}}, nil
}

func (f *fakeStore) ListDestinos(context.Context) ([]string, error) {
	return []string{"Obra Norte"}, nil
}

// ItemRepository

func (f *fakeStore) CreateBatch(_ context.Context, items []model.ItemRequisicao) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		f.items[items[i].RequisicaoID] = append(f.items[items[i].RequisicaoID], items[i])
	}
	return nil
}

func (f *fakeStore) UpdateItem(item *model.ItemRequisicao) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.items[item.RequisicaoID]
	for i := range list {
		if list[i].ID == item.ID {
			list[i] = *item
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStore) DeleteByIDs(_ context.Context, requisicaoID int64, ids []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	drop := map[uuid.UUID]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	var kept []model.ItemRequisicao
	for _, it := range f.items[requisicaoID] {
		if !drop[it.ID] {
			kept = append(kept, it)
		}
	}
	f.items[requisicaoID] = kept
	return nil
}

func (f *fakeStore) ListByRequisicao(_ context.Context, requisicaoID int64) ([]model.ItemRequisicao, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]model.ItemRequisicao{}, f.items[requisicaoID]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Posicao < out[j].Posicao })
	return out, nil
}

func (f *fakeStore) CountApprovedSince(context.Context, time.Time) (int64, error) {
	return 5, nil
}

func (f *fakeStore) SumQuantitySince(context.Context, time.Time) (decimal.Decimal, error) {
	return decimal.RequireFromString("12.5"), nil
}

// itemRepo adapts fakeStore to ItemRepository, whose Update collides with
// RequisicaoRepository.Update.
type itemRepo struct{ *fakeStore }

func (r itemRepo) Update(_ context.Context, item *model.ItemRequisicao) error {
	return r.fakeStore.UpdateItem(item)
}

// rastreioRepo adapts fakeStore to RastreioRepository.
type rastreioRepo struct{ *fakeStore }

func (r rastreioRepo) Create(_ context.Context, entry *model.Rastreio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = uuid.New()
	r.rastreio = append(r.rastreio, *entry)
	return nil
}

func (r rastreioRepo) List(_ context.Context, _ string, _, _ int) ([]model.Rastreio, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Rastreio, 0, len(r.rastreio))
	for _, e := range r.rastreio {
		if req, ok := r.reqs[e.RequisicaoID]; ok {
			cp := *req
			e.Requisicao = &cp
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

type fakeTx struct{}

func (fakeTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []ws.Event
}

func (p *fakePublisher) Publish(evt ws.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeLogo struct {
	data []byte
	err  error
}

func (l fakeLogo) Logo(context.Context) ([]byte, error) { return l.data, l.err }

type fakeRenderer struct {
	err  error
	docs []pdf.Document
}

func (r *fakeRenderer) Render(doc pdf.Document) ([]byte, error) {
	r.docs = append(r.docs, doc)
	if r.err != nil {
		return nil, r.err
	}
	return pdf.NewLayout(pdf.DefaultProfile(), false).Render(doc)
}

type fakeDocuments struct {
	calls  []int64
	result GenerateResult
	err    error
	// during runs once, inside the next generation.
	during func()
}

func (d *fakeDocuments) GenerateDocument(_ context.Context, id int64) (GenerateResult, error) {
	d.calls = append(d.calls, id)
	if hook := d.during; hook != nil {
		d.during = nil
		hook()
	}
	return d.result, d.err
}

type fakeNotifier struct {
	sent []int64
	err  error
}

func (n *fakeNotifier) RequisitionCreated(_ context.Context, req *model.Requisicao) error {
	n.sent = append(n.sent, req.ID)
	return n.err
}
