package entities

import "time"

// ServiceLineItem is a labor entry on a service order. ValorMaoObra is
// back-office data and never reaches a public snapshot.
type ServiceLineItem struct {
	ID             string    `json:"id"`
	OrdemServicoID string    `json:"ordem_servico_id"`
	Descricao      string    `json:"descricao"`
	ValorMaoObra   float64   `json:"valor_mao_obra"`
	Data           time.Time `json:"data"`
}

// PartLineItem is a parts-usage entry on a service order. Nome comes from the
// parts catalog; unit cost stays in the back office.
type PartLineItem struct {
	ID             string  `json:"id"`
	OrdemServicoID string  `json:"ordem_servico_id"`
	PecaID         string  `json:"peca_id"`
	Nome           string  `json:"nome"`
	Quantidade     int     `json:"quantidade"`
	ValorUnitario  float64 `json:"valor_unitario"`
}
