package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rastreio is the approval trail entry written when a requisition is approved
type Rastreio struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	RequisicaoID  int64       `gorm:"not null;index" json:"requisicao_id"`
	Requisicao    *Requisicao `gorm:"foreignKey:RequisicaoID" json:"requisicao,omitempty"`
	AprovadoPor   *string     `gorm:"type:varchar(255)" json:"aprovado_por"`
	DataAprovacao *time.Time  `gorm:"index" json:"data_aprovacao"`
	Observacao    *string     `gorm:"type:text" json:"observacao"`
	CreatedAt     time.Time   `json:"created_at"`
}

func (Rastreio) TableName() string { return "rastreio" }

func (r *Rastreio) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
