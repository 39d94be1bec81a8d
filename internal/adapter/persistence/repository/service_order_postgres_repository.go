package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase/interfaces"
)

// ServiceOrderPostgresRepository reads ordens_servico through the
// service-credential pool.
type ServiceOrderPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderPostgresRepository)(nil)

func NewServiceOrderPostgresRepository(pool *pgxpool.Pool) *ServiceOrderPostgresRepository {
	return &ServiceOrderPostgresRepository{pool: pool}
}

func (r *ServiceOrderPostgresRepository) GetByNumeroOS(ctx context.Context, numeroOS int) (entities.ServiceOrder, error) {
	const query = `
		SELECT id, numero_os, COALESCE(cliente_id::text, ''), COALESCE(veiculo_id::text, ''),
		       COALESCE(tecnico_id::text, ''), status, COALESCE(defeito_relatado, ''),
		       COALESCE(defeito_identificado, ''), COALESCE(observacoes_tecnicas, ''),
		       data_entrada, COALESCE(access_token, ''), created_at, updated_at
		FROM ordens_servico
		WHERE numero_os = $1
	`

	var os entities.ServiceOrder
	err := r.pool.QueryRow(ctx, query, numeroOS).Scan(
		&os.ID, &os.NumeroOS, &os.ClienteID, &os.VeiculoID,
		&os.TecnicoID, &os.Status, &os.DefeitoRelatado,
		&os.DefeitoIdentificado, &os.ObservacoesTecnicas,
		&os.DataEntrada, &os.AccessToken, &os.CreatedAt, &os.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.ServiceOrder{}, nil
	}
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return os, nil
}
