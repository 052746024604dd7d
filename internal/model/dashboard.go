package model

import "github.com/shopspring/decimal"

// DestinoCount is the number of requisitions sent to one destination
type DestinoCount struct {
	Destino    string `json:"destino"`
	Quantidade int64  `json:"quantidade"`
}

// DashboardResponse summarises the queue for the home screen
type DashboardResponse struct {
	Pendentes        int64           `json:"pendentes"`
	Aprovadas        int64           `json:"aprovadas"`
	ItensUltimosDias decimal.Decimal `json:"ultimos_dias"`
	PorDestino       []DestinoCount  `json:"por_destino"`
}
