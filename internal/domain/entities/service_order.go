package entities

import "time"

// OSStatus represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - The shop staff drives every transition through the back-office screens.
//   - Transitions are free-form: any status is reachable from any other, the
//     workshop does not enforce a strict sequence at this layer.
type OSStatus string

const (
	OSStatusAguardandoDiagnostico OSStatus = "aguardando_diagnostico"
	OSStatusEmConserto            OSStatus = "em_conserto"
	OSStatusAguardandoPeca        OSStatus = "aguardando_peca"
	OSStatusConcluido             OSStatus = "concluido"
	OSStatusEntregue              OSStatus = "entregue"
)

var osStatusLabels = map[OSStatus]string{
	OSStatusAguardandoDiagnostico: "Em Diagnóstico",
	OSStatusEmConserto:            "Em Execução",
	OSStatusAguardandoPeca:        "Aguardando Peça",
	OSStatusConcluido:             "Concluída",
	OSStatusEntregue:              "Entregue",
}

// Label returns the customer-facing status text. Unknown statuses fall back to
// the raw key, mirroring what the status page always displayed.
func (s OSStatus) Label() string {
	if l, ok := osStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// ServiceOrder is the central work-order record (OS).
//
// AccessToken is the per-order capability secret handed to the customer on
// check-in; presenting it on the public status page unlocks the extended view.
// It never widens visibility to pricing or staff identity.
type ServiceOrder struct {
	ID                  string    `json:"id"`
	NumeroOS            int       `json:"numero_os"`
	ClienteID           string    `json:"cliente_id"`
	VeiculoID           string    `json:"veiculo_id"`
	TecnicoID           string    `json:"tecnico_id"`
	Status              OSStatus  `json:"status"`
	DefeitoRelatado     string    `json:"defeito_relatado"`
	DefeitoIdentificado string    `json:"defeito_identificado"`
	ObservacoesTecnicas string    `json:"observacoes_tecnicas"`
	DataEntrada         time.Time `json:"data_entrada"`
	AccessToken         string    `json:"-"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
