package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase/interfaces"
)

var (
	ErrMissingOrderNumber = errors.New("missing order number")
	ErrOrderNotFound      = errors.New("service order not found")
)

// publicReportLimit caps how many visit reports the extended snapshot carries.
const publicReportLimit = 5

// CallerInfo identifies the public caller for the audit trail.
type CallerInfo struct {
	IP        string
	UserAgent string
}

// ILookupUseCase assembles the public projection of a service order.
//
// GetPublicSnapshot is the lookup endpoint's entry: it appends one audit row
// per attempt (found or not) and gates fields on the access token.
// AssembleSnapshot applies the exact same gating without touching the audit
// trail; the chat responder builds its prompt from it.
type ILookupUseCase interface {
	GetPublicSnapshot(ctx context.Context, numeroOS int, accessToken string, caller CallerInfo) (entities.Snapshot, error)
	AssembleSnapshot(ctx context.Context, numeroOS int, accessToken string) (entities.Snapshot, error)
}

type LookupUseCase struct {
	orders   interfaces.IServiceOrderRepository
	vehicles interfaces.IVehicleRepository
	items    interfaces.IOrderItemsRepository
	audit    interfaces.IAccessLogRepository
}

var _ ILookupUseCase = (*LookupUseCase)(nil)

func NewLookupUseCase(
	orders interfaces.IServiceOrderRepository,
	vehicles interfaces.IVehicleRepository,
	items interfaces.IOrderItemsRepository,
	audit interfaces.IAccessLogRepository,
) *LookupUseCase {
	return &LookupUseCase{orders: orders, vehicles: vehicles, items: items, audit: audit}
}

func (u *LookupUseCase) GetPublicSnapshot(ctx context.Context, numeroOS int, accessToken string, caller CallerInfo) (entities.Snapshot, error) {
	if numeroOS <= 0 {
		return entities.Snapshot{}, ErrMissingOrderNumber
	}

	log.Printf("[lookup][usecase] consulta numero_os=%d", numeroOS)

	os, err := u.orders.GetByNumeroOS(ctx, numeroOS)
	if err != nil {
		u.logAccess(ctx, numeroOS, caller, false)
		return entities.Snapshot{}, err
	}
	if os.ID == "" {
		u.logAccess(ctx, numeroOS, caller, false)
		return entities.Snapshot{}, ErrOrderNotFound
	}

	// The token gates field visibility only; every successful lookup is
	// audited the same way.
	u.logAccess(ctx, numeroOS, caller, true)

	return u.assemble(ctx, os, accessToken)
}

func (u *LookupUseCase) AssembleSnapshot(ctx context.Context, numeroOS int, accessToken string) (entities.Snapshot, error) {
	if numeroOS <= 0 {
		return entities.Snapshot{}, ErrMissingOrderNumber
	}

	os, err := u.orders.GetByNumeroOS(ctx, numeroOS)
	if err != nil {
		return entities.Snapshot{}, err
	}
	if os.ID == "" {
		return entities.Snapshot{}, ErrOrderNotFound
	}

	return u.assemble(ctx, os, accessToken)
}

func (u *LookupUseCase) assemble(ctx context.Context, os entities.ServiceOrder, accessToken string) (entities.Snapshot, error) {
	tokenValid := validateAccessToken(os.AccessToken, accessToken)
	log.Printf("[lookup][usecase] os encontrada id=%s token_valido=%v", os.ID, tokenValid)

	snap := entities.Snapshot{
		Public: entities.PublicSnapshot{
			NumeroOS:          os.NumeroOS,
			DataEntrada:       os.DataEntrada,
			StatusKey:         os.Status,
			Status:            os.Status.Label(),
			Veiculo:           u.vehicleSummary(ctx, os.VeiculoID),
			DefeitoRelatado:   os.DefeitoRelatado,
			UltimaAtualizacao: os.UpdatedAt,
		},
	}

	if !tokenValid {
		return snap, nil
	}

	ext, err := u.assembleExtended(ctx, os, snap.Public)
	if err != nil {
		return entities.Snapshot{}, err
	}
	snap.Extended = ext
	return snap, nil
}

// vehicleSummary is best-effort: a broken vehicle reference degrades the
// snapshot to veiculo=null instead of failing the lookup.
func (u *LookupUseCase) vehicleSummary(ctx context.Context, veiculoID string) *entities.VehicleSummary {
	if veiculoID == "" {
		return nil
	}
	veh, err := u.vehicles.GetByID(ctx, veiculoID)
	if err != nil {
		log.Printf("[lookup][usecase] falha ao carregar veiculo id=%s err=%v", veiculoID, err)
		return nil
	}
	if veh.ID == "" {
		return nil
	}
	return &entities.VehicleSummary{
		Modelo: veh.Modelo,
		Placa:  entities.MaskPlate(veh.Placa),
		Ano:    veh.Ano,
	}
}

func (u *LookupUseCase) assembleExtended(ctx context.Context, os entities.ServiceOrder, public entities.PublicSnapshot) (*entities.ExtendedSnapshot, error) {
	var (
		servicos   []entities.ServiceLineItem
		pecas      []entities.PartLineItem
		quote      entities.Quote
		relatorios []entities.VisitReport
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		servicos, err = u.items.ListServicesByOrderID(gctx, os.ID, 0)
		return err
	})
	g.Go(func() (err error) {
		pecas, err = u.items.ListPartsByOrderID(gctx, os.ID)
		return err
	})
	g.Go(func() (err error) {
		quote, err = u.items.GetLatestQuoteByOrderID(gctx, os.ID)
		return err
	})
	g.Go(func() (err error) {
		relatorios, err = u.items.ListReportsByOrderID(gctx, os.ID, publicReportLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ext := &entities.ExtendedSnapshot{
		PublicSnapshot:      public,
		DefeitoIdentificado: os.DefeitoIdentificado,
		ObservacoesTecnicas: os.ObservacoesTecnicas,
		Orcamento:           quoteSummary(quote),
	}
	for _, s := range servicos {
		ext.Servicos = append(ext.Servicos, entities.ServiceEntry{Descricao: s.Descricao, Data: s.Data})
	}
	for _, p := range pecas {
		nome := p.Nome
		if nome == "" {
			nome = "Peça"
		}
		ext.Pecas = append(ext.Pecas, entities.PartEntry{Nome: nome, Quantidade: p.Quantidade})
	}
	for _, r := range relatorios {
		ext.Relatorios = append(ext.Relatorios, entities.ReportEntry{Data: r.Data, Descricao: r.Descricao})
	}
	return ext, nil
}

func quoteSummary(q entities.Quote) entities.QuoteSummary {
	if q.ID == "" {
		return entities.QuoteSummary{Status: "Não formalizado"}
	}
	status := q.Status
	return entities.QuoteSummary{
		Status:      status.Label(),
		StatusKey:   &status,
		Observacoes: q.Observacoes,
	}
}

// validateAccessToken is a plaintext capability check; the token has uuid
// entropy and the comparison is constant-time.
func validateAccessToken(stored, presented string) bool {
	if stored == "" || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

// logAccess is best-effort: the audit trail never vetoes a lookup.
func (u *LookupUseCase) logAccess(ctx context.Context, numeroOS int, caller CallerInfo, success bool) {
	entry := entities.AccessLogEntry{
		ID:        uuid.NewString(),
		NumeroOS:  numeroOS,
		IPAddress: caller.IP,
		UserAgent: caller.UserAgent,
		Success:   success,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.audit.Append(ctx, entry); err != nil {
		log.Printf("[lookup][usecase] falha ao registrar acesso numero_os=%d err=%v", numeroOS, err)
	}
}
