// Package notifier announces requisition lifecycle events to an external
// webhook as CloudEvents.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"requisicoes/internal/model"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventTypeCreated = "br.com.tropical.requisicao.criada"
	EventSource      = "/requisicoes"
)

// ItemPayload is one item line of the notification
type ItemPayload struct {
	Produto    string          `json:"produto"`
	Unidade    string          `json:"unidade"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// CreatedPayload is the data of a requisition-created event
type CreatedPayload struct {
	ID          int64         `json:"id"`
	Solicitante string        `json:"solicitante"`
	LocalOrigem string        `json:"local_origem"`
	Destino     string        `json:"destino"`
	Observacao  *string       `json:"observacao"`
	Status      string        `json:"status"`
	DataCriacao time.Time     `json:"data_criacao"`
	Itens       []ItemPayload `json:"itens"`
}

// Notifier posts CloudEvents to a webhook. The zero target disables it.
type Notifier struct {
	client cloudevents.Client
	target string
}

func New(target string) (*Notifier, error) {
	if target == "" {
		return &Notifier{}, nil
	}
	client, err := cloudevents.NewClientHTTP(cloudevents.WithTarget(target))
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudevents client: %w", err)
	}
	return &Notifier{client: client, target: target}, nil
}

// RequisitionCreated sends the requisition-created event for req
func (n *Notifier) RequisitionCreated(ctx context.Context, req *model.Requisicao) error {
	if n.client == nil {
		return nil
	}

	payload := CreatedPayload{
		ID:          req.ID,
		Solicitante: req.Solicitante,
		LocalOrigem: req.LocalOrigem,
		Destino:     req.Destino,
		Observacao:  req.Observacao,
		Status:      req.Status,
		DataCriacao: req.CreatedAt,
		Itens:       make([]ItemPayload, 0, len(req.Itens)),
	}
	if payload.DataCriacao.IsZero() {
		payload.DataCriacao = time.Now()
	}
	for _, it := range req.Itens {
		payload.Itens = append(payload.Itens, ItemPayload{Produto: it.Produto, Unidade: it.Unidade, Quantidade: it.Quantidade})
	}

	evt := cloudevents.NewEvent()
	evt.SetID(uuid.NewString())
	evt.SetType(EventTypeCreated)
	evt.SetSource(EventSource)
	evt.SetSubject(strconv.FormatInt(req.ID, 10))
	evt.SetTime(payload.DataCriacao)
	if err := evt.SetData(cloudevents.ApplicationJSON, payload); err != nil {
		return fmt.Errorf("failed to encode event data: %w", err)
	}

	result := n.client.Send(ctx, evt)
	if !cloudevents.IsACK(result) {
		return fmt.Errorf("webhook rejected event %s: %w", evt.ID(), result)
	}
	slog.Info("Requisition notification sent", "requisicaoId", req.ID, "target", n.target)
	return nil
}
