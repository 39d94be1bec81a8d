package entities

import "time"

// The snapshot types are the only shapes the public status endpoints may
// serve. Monetary values and staff identity are not omitted at render time:
// the fields do not exist on these types at all, so a valid access token can
// never unlock them.

// VehicleSummary is the vehicle slice of a snapshot. Placa is already masked.
type VehicleSummary struct {
	Modelo string
	Placa  string
	Ano    string
}

// QuoteSummary is the orçamento slice of an extended snapshot: approval state
// and notes, no value.
type QuoteSummary struct {
	Status      string
	StatusKey   *QuoteStatus
	Observacoes string
}

// ServiceEntry is a labor line without its price.
type ServiceEntry struct {
	Descricao string
	Data      time.Time
}

// PartEntry is a parts line without unit or total cost.
type PartEntry struct {
	Nome       string
	Quantidade int
}

// ReportEntry is a visit report without its author.
type ReportEntry struct {
	Data      time.Time
	Descricao string
}

// PublicSnapshot is what any caller gets for a known order number, token or
// not.
type PublicSnapshot struct {
	NumeroOS          int
	DataEntrada       time.Time
	StatusKey         OSStatus
	Status            string
	Veiculo           *VehicleSummary
	DefeitoRelatado   string
	UltimaAtualizacao time.Time
}

// ExtendedSnapshot is the superset unlocked by a valid per-order access token:
// diagnostic detail, quote state, line items and visit reports.
type ExtendedSnapshot struct {
	PublicSnapshot
	DefeitoIdentificado string
	ObservacoesTecnicas string
	Orcamento           QuoteSummary
	Servicos            []ServiceEntry
	Pecas               []PartEntry
	Relatorios          []ReportEntry
}

// Snapshot pairs the always-public projection with the token-gated extension.
// Extended is nil unless the caller presented the order's own access token.
type Snapshot struct {
	Public   PublicSnapshot
	Extended *ExtendedSnapshot
}
