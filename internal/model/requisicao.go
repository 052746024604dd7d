package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Quantities travel as JSON numbers, the way the front-end sends them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Requisition status values
const (
	StatusPendente = "pendente"
	StatusAprovada = "aprovada"
	StatusGerada   = "gerada"
)

// ValidStatus reports whether s is a known requisition status. Rows in
// status gerada predate the approval flow and are still listed.
func ValidStatus(s string) bool {
	switch s {
	case StatusPendente, StatusAprovada, StatusGerada:
		return true
	}
	return false
}

// Requisicao is a request to move materials from an origin to a destination
type Requisicao struct {
	ID          int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string           `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Solicitante string           `gorm:"type:varchar(255);not null" json:"solicitante"`
	LocalOrigem string           `gorm:"type:varchar(255);not null" json:"local_origem"`
	Destino     string           `gorm:"type:varchar(255);not null;index" json:"destino"`
	Observacao  *string          `gorm:"type:text" json:"observacao"`
	Status      string           `gorm:"type:varchar(20);not null;default:'pendente';index" json:"status"`
	PDFURL      *string          `gorm:"column:pdf_url;type:text" json:"pdf_url"`
	Itens       []ItemRequisicao `gorm:"foreignKey:RequisicaoID;constraint:OnDelete:CASCADE" json:"itens,omitempty"`
	CreatedAt   time.Time        `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (Requisicao) TableName() string { return "requisicoes" }

// ItemRequisicao is one product line of a requisition
type ItemRequisicao struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	RequisicaoID int64           `gorm:"not null;index" json:"requisicao_id"`
	Posicao      int             `gorm:"not null;default:0" json:"-"` // keeps the order the items were entered in
	Produto      string          `gorm:"type:varchar(255);not null" json:"produto"`
	Unidade      string          `gorm:"type:varchar(50);not null" json:"unidade"`
	Quantidade   decimal.Decimal `gorm:"type:numeric(14,3);not null" json:"quantidade"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (ItemRequisicao) TableName() string { return "itens_requisicao" }

func (i *ItemRequisicao) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
