package entities

import "time"

// QuoteStatus represents the approval state of an orçamento.
type QuoteStatus string

const (
	QuoteStatusAguardando QuoteStatus = "aguardando"
	QuoteStatusAprovado   QuoteStatus = "aprovado"
	QuoteStatusReprovado  QuoteStatus = "reprovado"
)

var quoteStatusLabels = map[QuoteStatus]string{
	QuoteStatusAguardando: "Aguardando Aprovação",
	QuoteStatusAprovado:   "Aprovado",
	QuoteStatusReprovado:  "Reprovado",
}

func (s QuoteStatus) Label() string {
	if l, ok := quoteStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Quote is a billing estimate (orçamento) attached to a service order. Only
// the most recent one per order matters for the status page; its Valor never
// leaves the back office.
type Quote struct {
	ID             string      `json:"id"`
	OrdemServicoID string      `json:"ordem_servico_id"`
	Valor          float64     `json:"valor"`
	Status         QuoteStatus `json:"status"`
	Observacoes    string      `json:"observacoes"`
	CreatedAt      time.Time   `json:"created_at"`
}
