package entities

import "time"

// VisitReport is a timestamped free-text note a staff member attaches to a
// service order. ColaboradorID identifies the author internally only; public
// views carry the date and text, never the author.
type VisitReport struct {
	ID             string    `json:"id"`
	OrdemServicoID string    `json:"ordem_servico_id"`
	ColaboradorID  string    `json:"colaborador_id"`
	Data           time.Time `json:"data"`
	Descricao      string    `json:"descricao"`
}
