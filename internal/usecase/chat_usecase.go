package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase/interfaces"
)

var (
	ErrMissingQuestion = errors.New("missing question")
	ErrQuestionTooLong = errors.New("question too long")
)

// maxQuestionRunes bounds the caller-supplied question; the endpoint fans out
// to a paid completion API.
const maxQuestionRunes = 500

const dateLayoutBR = "02/01/2006"

// IChatUseCase answers a customer question about one service order, grounded
// exclusively on the order's public snapshot.
type IChatUseCase interface {
	Answer(ctx context.Context, numeroOS int, pergunta, accessToken string) (string, error)
}

type ChatUseCase struct {
	assembler ILookupUseCase
	gateway   interfaces.ICompletionGateway
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(assembler ILookupUseCase, gateway interfaces.ICompletionGateway) *ChatUseCase {
	return &ChatUseCase{assembler: assembler, gateway: gateway}
}

// Answer builds the constrained prompt from the snapshot (same token gating as
// the lookup endpoint, never pricing, never staff names) and forwards the
// question. A failing or throttled completion API degrades to a deterministic
// templated summary instead of an error: the chat always answers something.
func (u *ChatUseCase) Answer(ctx context.Context, numeroOS int, pergunta, accessToken string) (string, error) {
	if numeroOS <= 0 {
		return "", ErrMissingOrderNumber
	}
	if strings.TrimSpace(pergunta) == "" {
		return "", ErrMissingQuestion
	}
	if utf8.RuneCountInString(pergunta) > maxQuestionRunes {
		return "", ErrQuestionTooLong
	}

	snap, err := u.assembler.AssembleSnapshot(ctx, numeroOS, accessToken)
	if err != nil {
		return "", err
	}

	if u.gateway == nil {
		log.Printf("[chat][usecase] gateway nao configurado, usando resumo padrao numero_os=%d", numeroOS)
		return BuildFallbackSummary(snap.Public), nil
	}

	reply, err := u.gateway.Complete(ctx, BuildSystemPrompt(snap), pergunta)
	if err != nil {
		log.Printf("[chat][usecase] completion indisponivel numero_os=%d err=%v", numeroOS, err)
		return BuildFallbackSummary(snap.Public), nil
	}
	if strings.TrimSpace(reply) == "" {
		return "Desculpe, não consegui processar sua pergunta. Tente novamente.", nil
	}
	return reply, nil
}

// Prompt caps: the assistant does not need every line item to answer a status
// question.
const (
	promptServiceLimit = 5
	promptReportLimit  = 3
)

// BuildSystemPrompt renders the instruction block prepended to the customer's
// question. Everything token-gated in the snapshot is token-gated here, and
// pricing and staff identity are absent by construction (the snapshot types do
// not carry them).
func BuildSystemPrompt(snap entities.Snapshot) string {
	var b strings.Builder

	b.WriteString(`Você é um assistente virtual profissional da oficina elétrica automotiva.
Sua ÚNICA função é responder perguntas sobre o status de ordens de serviço.

REGRAS ABSOLUTAS:
1. Responda APENAS com base nos dados fornecidos abaixo
2. NÃO invente informações que não estejam nos dados
3. NÃO sugira diagnósticos, reparos ou soluções técnicas
4. NÃO informe valores ou preços - diga que essa informação não está disponível
5. NÃO dê opiniões sobre procedimentos técnicos
6. Use linguagem profissional, clara e objetiva
7. Foque em status, transparência e informações já cadastradas
8. Se não tiver a informação solicitada, diga que não está disponível
9. Sempre cite o número da OS na resposta

`)

	p := snap.Public
	fmt.Fprintf(&b, "DADOS DA ORDEM DE SERVIÇO Nº %d:\n", p.NumeroOS)
	fmt.Fprintf(&b, "- Status atual: %s\n", p.Status)
	fmt.Fprintf(&b, "- Data de entrada: %s\n", p.DataEntrada.Format(dateLayoutBR))
	fmt.Fprintf(&b, "- Veículo: %s\n", vehicleLine(p.Veiculo))
	fmt.Fprintf(&b, "- Defeito relatado pelo cliente: %s\n", orDefault(p.DefeitoRelatado, "Não informado"))

	if ext := snap.Extended; ext != nil {
		fmt.Fprintf(&b, "- Defeito identificado pelo técnico: %s\n", orDefault(ext.DefeitoIdentificado, "Ainda não identificado"))
		fmt.Fprintf(&b, "- Observações técnicas: %s\n", orDefault(ext.ObservacoesTecnicas, "Nenhuma observação"))
	}
	fmt.Fprintf(&b, "- Última atualização: %s\n", p.UltimaAtualizacao.Format(dateLayoutBR))

	if ext := snap.Extended; ext != nil {
		fmt.Fprintf(&b, "\nORÇAMENTO:\n- Status: %s\n- Nota: Valores não são exibidos por segurança\n", ext.Orcamento.Status)

		if len(ext.Servicos) > 0 {
			b.WriteString("\nSERVIÇOS EM ANDAMENTO:\n")
			for i, s := range ext.Servicos {
				if i == promptServiceLimit {
					break
				}
				fmt.Fprintf(&b, "- %s\n", s.Descricao)
			}
		}
		if len(ext.Relatorios) > 0 {
			b.WriteString("\nÚLTIMAS ATUALIZAÇÕES:\n")
			for i, r := range ext.Relatorios {
				if i == promptReportLimit {
					break
				}
				fmt.Fprintf(&b, "- %s: %s\n", r.Data.Format(dateLayoutBR), r.Descricao)
			}
		}
	}

	b.WriteString(`
IMPORTANTE: Valores financeiros não estão disponíveis para consulta pública. Para informações sobre preços, o cliente deve entrar em contato diretamente com a oficina.

Responda à pergunta do cliente de forma clara, profissional e baseada APENAS nos dados acima.`)

	return b.String()
}

// BuildFallbackSummary is the deterministic reply used when the completion API
// is down or throttled. It is built only from always-public fields, so the
// fallback can never show more than the no-token lookup would.
func BuildFallbackSummary(p entities.PublicSnapshot) string {
	return fmt.Sprintf(`A Ordem de Serviço nº %d está atualmente com status: %s.

📅 Data de entrada: %s
🚗 Veículo: %s

📅 Última atualização: %s

Para mais informações, entre em contato conosco.`,
		p.NumeroOS,
		p.Status,
		p.DataEntrada.Format(dateLayoutBR),
		vehicleLine(p.Veiculo),
		p.UltimaAtualizacao.Format(dateLayoutBR),
	)
}

func vehicleLine(v *entities.VehicleSummary) string {
	if v == nil {
		return "Não informado"
	}
	return strings.TrimSpace(v.Modelo + " " + v.Ano)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
