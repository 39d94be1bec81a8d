package response

import (
	"time"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
)

// The response shapes mirror the snapshot variants one-to-one. Neither type
// declares a monetary or staff-identity field, so nothing a handler does can
// leak one.

type VehicleResponse struct {
	Modelo string `json:"modelo"`
	Placa  string `json:"placa"`
	Ano    string `json:"ano"`
}

// DiagnosticsResponse always ships both gated fields; without a valid token
// they are null, exactly like the original payload.
type DiagnosticsResponse struct {
	DefeitoRelatado     string  `json:"defeito_relatado"`
	DefeitoIdentificado *string `json:"defeito_identificado"`
	ObservacoesTecnicas *string `json:"observacoes_tecnicas"`
}

type PublicSnapshotResponse struct {
	NumeroOS          int                 `json:"numero_os"`
	DataEntrada       time.Time           `json:"data_entrada"`
	Status            string              `json:"status"`
	StatusKey         string              `json:"status_key"`
	Veiculo           *VehicleResponse    `json:"veiculo"`
	Diagnostico       DiagnosticsResponse `json:"diagnostico"`
	UltimaAtualizacao time.Time           `json:"ultima_atualizacao"`
}

type QuoteResponse struct {
	Status      string  `json:"status"`
	StatusKey   *string `json:"status_key"`
	Observacoes *string `json:"observacoes"`
}

type ServiceEntryResponse struct {
	Descricao string    `json:"descricao"`
	Data      time.Time `json:"data"`
}

type PartEntryResponse struct {
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
}

type ReportEntryResponse struct {
	Data      time.Time `json:"data"`
	Descricao string    `json:"descricao"`
}

type ExtendedSnapshotResponse struct {
	PublicSnapshotResponse
	Orcamento  QuoteResponse          `json:"orcamento"`
	Servicos   []ServiceEntryResponse `json:"servicos"`
	Pecas      []PartEntryResponse    `json:"pecas"`
	Relatorios []ReportEntryResponse  `json:"relatorios"`
}

func FromPublicSnapshot(p entities.PublicSnapshot) PublicSnapshotResponse {
	resp := PublicSnapshotResponse{
		NumeroOS:          p.NumeroOS,
		DataEntrada:       p.DataEntrada,
		Status:            p.Status,
		StatusKey:         string(p.StatusKey),
		Diagnostico:       DiagnosticsResponse{DefeitoRelatado: p.DefeitoRelatado},
		UltimaAtualizacao: p.UltimaAtualizacao,
	}
	if p.Veiculo != nil {
		resp.Veiculo = &VehicleResponse{Modelo: p.Veiculo.Modelo, Placa: p.Veiculo.Placa, Ano: p.Veiculo.Ano}
	}
	return resp
}

func FromExtendedSnapshot(ext entities.ExtendedSnapshot) ExtendedSnapshotResponse {
	resp := ExtendedSnapshotResponse{
		PublicSnapshotResponse: FromPublicSnapshot(ext.PublicSnapshot),
		Orcamento:              fromQuoteSummary(ext.Orcamento),
		Servicos:               make([]ServiceEntryResponse, 0, len(ext.Servicos)),
		Pecas:                  make([]PartEntryResponse, 0, len(ext.Pecas)),
		Relatorios:             make([]ReportEntryResponse, 0, len(ext.Relatorios)),
	}
	resp.Diagnostico.DefeitoIdentificado = nullable(ext.DefeitoIdentificado)
	resp.Diagnostico.ObservacoesTecnicas = nullable(ext.ObservacoesTecnicas)

	for _, s := range ext.Servicos {
		resp.Servicos = append(resp.Servicos, ServiceEntryResponse{Descricao: s.Descricao, Data: s.Data})
	}
	for _, p := range ext.Pecas {
		resp.Pecas = append(resp.Pecas, PartEntryResponse{Nome: p.Nome, Quantidade: p.Quantidade})
	}
	for _, r := range ext.Relatorios {
		resp.Relatorios = append(resp.Relatorios, ReportEntryResponse{Data: r.Data, Descricao: r.Descricao})
	}
	return resp
}

// FromSnapshot picks the variant the token validity earned.
func FromSnapshot(s entities.Snapshot) any {
	if s.Extended != nil {
		return FromExtendedSnapshot(*s.Extended)
	}
	return FromPublicSnapshot(s.Public)
}

func fromQuoteSummary(q entities.QuoteSummary) QuoteResponse {
	resp := QuoteResponse{
		Status:      q.Status,
		Observacoes: nullable(q.Observacoes),
	}
	if q.StatusKey != nil {
		key := string(*q.StatusKey)
		resp.StatusKey = &key
	}
	return resp
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
