package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase/interfaces"
)

type VehiclePostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IVehicleRepository = (*VehiclePostgresRepository)(nil)

func NewVehiclePostgresRepository(pool *pgxpool.Pool) *VehiclePostgresRepository {
	return &VehiclePostgresRepository{pool: pool}
}

func (r *VehiclePostgresRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	const query = `
		SELECT id, COALESCE(cliente_id::text, ''), COALESCE(placa, ''),
		       COALESCE(modelo, ''), COALESCE(ano, ''), created_at
		FROM veiculos
		WHERE id = $1
	`

	var v entities.Vehicle
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.ClienteID, &v.Placa, &v.Modelo, &v.Ano, &v.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Vehicle{}, nil
	}
	if err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}
