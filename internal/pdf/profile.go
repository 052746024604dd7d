package pdf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Cell is a piece of static text at a fixed horizontal offset.
type Cell struct {
	Text string  `yaml:"text"`
	X    float64 `yaml:"x"`
}

// FormProfile holds the static wording of the delivery form.
type FormProfile struct {
	Title         string `yaml:"title"`
	Organization  string `yaml:"organization"`
	Address       string `yaml:"address"`
	Phone         string `yaml:"phone"`
	DefaultOrigin string `yaml:"default_origin"`
	Instruction   string `yaml:"instruction"`
	City          string `yaml:"city"`

	AuthorizationCaption string `yaml:"authorization_caption"`
	ReceiverCaption      string `yaml:"receiver_caption"`
	DelivererCaption     string `yaml:"deliverer_caption"`

	RecordControlTitle string `yaml:"record_control_title"`
	RetentionHeader    []Cell `yaml:"retention_header"`
	RetentionRow       []Cell `yaml:"retention_row"`
	CopiesNote         string `yaml:"copies_note"`
	FormNumber         string `yaml:"form_number"`
}

// DefaultProfile returns the wording of form 071/00.
func DefaultProfile() FormProfile {
	return FormProfile{
		Title:         "REQUISIÇÃO DE  MATERIAL",
		Organization:  "CONSTRUTORA E IMOBILIÁRIA TROPICAL LTDA.",
		Address:       "Av. Presidente Kennedy, nº 336 - São Cristóvão - CEP: 64.052-335",
		Phone:         "Fone: (86) 3232-3979 / Fax: (86) 3231-1832 - Teresina-Piauí",
		DefaultOrigin: "Escritório",
		Instruction:   "Autorizo a entrega ao portador dos itens discriminados abaixo:",
		City:          "Teresina",

		AuthorizationCaption: "Autorização",
		ReceiverCaption:      "Assinatura Recebedor",
		DelivererCaption:     "Assinatura Entregador",

		RecordControlTitle: "Controle de Registro:",
		RetentionHeader: []Cell{
			{Text: "IDENTIFICAÇÃO", X: 55},
			{Text: "ARMAZENAMENTO", X: 150},
			{Text: "PROTEÇÃO", X: 255},
			{Text: "RECUPERAÇÃO", X: 330},
			{Text: "TEMPO DE RETENÇÃO", X: 410},
			{Text: "DESCARTE", X: 500},
		},
		RetentionRow: []Cell{
			{Text: "REQUISIÇÃO DE MATERIAL", X: 55},
			{Text: "PASTA", X: 170},
			{Text: "POR MÊS", X: 330},
			{Text: "DA OBRA", X: 425},
			{Text: "DESTRUIR", X: 500},
		},
		CopiesNote: "1ª VIA BRANCA / 2ª VIA AZUL",
		FormNumber: "FORM. 071/00",
	}
}

// LoadProfile reads a YAML file on top of the default profile. Fields absent
// from the file keep their default value. An empty path returns the defaults.
func LoadProfile(path string) (FormProfile, error) {
	profile := DefaultProfile()
	if path == "" {
		return profile, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("read form profile: %w", err)
	}
	if err := yaml.Unmarshal(b, &profile); err != nil {
		return profile, fmt.Errorf("parse form profile %s: %w", path, err)
	}
	return profile, nil
}
