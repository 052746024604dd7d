package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Form option kinds
const (
	OpcaoLocalOrigem = "local_origem"
	OpcaoDestino     = "destino"
	OpcaoProduto     = "produto"
	OpcaoUnidade     = "unidade"
)

// OpcaoFormulario is a selectable value offered by the requisition form
type OpcaoFormulario struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Tipo       string    `gorm:"type:varchar(30);not null;index" json:"tipo"`
	Valor      string    `gorm:"type:varchar(255);not null" json:"valor"`
	Finalidade *string   `gorm:"type:varchar(255)" json:"finalidade"` // only used by produto
	Ativo      bool      `gorm:"not null;default:true" json:"ativo"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (OpcaoFormulario) TableName() string { return "opcoes_formulario" }

func (o *OpcaoFormulario) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
