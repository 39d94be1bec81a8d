package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase/interfaces"
)

// OrderItemsPostgresRepository serves the per-order reads the extended
// snapshot joins in memory: servicos_os, pecas_os (with the part name from the
// catalog), the latest orcamentos_os row and relatorios_atendimento.
type OrderItemsPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IOrderItemsRepository = (*OrderItemsPostgresRepository)(nil)

func NewOrderItemsPostgresRepository(pool *pgxpool.Pool) *OrderItemsPostgresRepository {
	return &OrderItemsPostgresRepository{pool: pool}
}

func (r *OrderItemsPostgresRepository) ListServicesByOrderID(ctx context.Context, orderID string, limit int) ([]entities.ServiceLineItem, error) {
	query := `
		SELECT id, ordem_servico_id, COALESCE(descricao, ''), COALESCE(valor_mao_obra, 0), data
		FROM servicos_os
		WHERE ordem_servico_id = $1
		ORDER BY data DESC
	`
	args := []any{orderID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.ServiceLineItem
	for rows.Next() {
		var it entities.ServiceLineItem
		if err := rows.Scan(&it.ID, &it.OrdemServicoID, &it.Descricao, &it.ValorMaoObra, &it.Data); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *OrderItemsPostgresRepository) ListPartsByOrderID(ctx context.Context, orderID string) ([]entities.PartLineItem, error) {
	const query = `
		SELECT po.id, po.ordem_servico_id, COALESCE(po.peca_id::text, ''),
		       COALESCE(p.nome, ''), po.quantidade, COALESCE(po.valor_unitario, 0)
		FROM pecas_os po
		LEFT JOIN pecas p ON p.id = po.peca_id
		WHERE po.ordem_servico_id = $1
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.PartLineItem
	for rows.Next() {
		var it entities.PartLineItem
		if err := rows.Scan(&it.ID, &it.OrdemServicoID, &it.PecaID, &it.Nome, &it.Quantidade, &it.ValorUnitario); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *OrderItemsPostgresRepository) GetLatestQuoteByOrderID(ctx context.Context, orderID string) (entities.Quote, error) {
	const query = `
		SELECT id, ordem_servico_id, COALESCE(valor, 0), status, COALESCE(observacoes, ''), created_at
		FROM orcamentos_os
		WHERE ordem_servico_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var q entities.Quote
	err := r.pool.QueryRow(ctx, query, orderID).Scan(
		&q.ID, &q.OrdemServicoID, &q.Valor, &q.Status, &q.Observacoes, &q.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *OrderItemsPostgresRepository) ListReportsByOrderID(ctx context.Context, orderID string, limit int) ([]entities.VisitReport, error) {
	query := `
		SELECT id, ordem_servico_id, COALESCE(colaborador_id::text, ''), data, COALESCE(descricao, '')
		FROM relatorios_atendimento
		WHERE ordem_servico_id = $1
		ORDER BY data DESC
	`
	args := []any{orderID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []entities.VisitReport
	for rows.Next() {
		var rep entities.VisitReport
		if err := rows.Scan(&rep.ID, &rep.OrdemServicoID, &rep.ColaboradorID, &rep.Data, &rep.Descricao); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}
