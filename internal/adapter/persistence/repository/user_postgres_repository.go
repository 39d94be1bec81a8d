package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase/interfaces"
)

type UserPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IUserRepository = (*UserPostgresRepository)(nil)

func NewUserPostgresRepository(pool *pgxpool.Pool) *UserPostgresRepository {
	return &UserPostgresRepository{pool: pool}
}

func (r *UserPostgresRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	const query = `
		SELECT id, email, COALESCE(nome, ''), password_hash, created_at
		FROM usuarios
		WHERE lower(email) = lower($1)
	`

	var u entities.User
	err := r.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.Nome, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserPostgresRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	const query = `
		INSERT INTO usuarios (id, email, nome, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.pool.Exec(ctx, query, u.ID, u.Email, u.Nome, u.PasswordHash, u.CreatedAt); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

// RolePostgresRepository owns the user_roles table. It always runs on the
// service-credential pool: role rows are not readable with a caller's own
// credential.
type RolePostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IRoleRepository = (*RolePostgresRepository)(nil)

func NewRolePostgresRepository(pool *pgxpool.Pool) *RolePostgresRepository {
	return &RolePostgresRepository{pool: pool}
}

func (r *RolePostgresRepository) GetByUserID(ctx context.Context, userID string) (entities.Role, error) {
	const query = `SELECT role FROM user_roles WHERE user_id = $1`

	var role entities.Role
	err := r.pool.QueryRow(ctx, query, userID).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

func (r *RolePostgresRepository) HasRole(ctx context.Context, role entities.Role) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM user_roles WHERE role = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, role).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *RolePostgresRepository) Assign(ctx context.Context, userID string, role entities.Role) error {
	const query = `
		INSERT INTO user_roles (user_id, role, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role
	`
	_, err := r.pool.Exec(ctx, query, userID, role)
	return err
}

func (r *RolePostgresRepository) List(ctx context.Context) ([]entities.RoleAssignment, error) {
	const query = `
		SELECT ur.user_id, COALESCE(u.email, ''), ur.role, ur.created_at
		FROM user_roles ur
		LEFT JOIN usuarios u ON u.id = ur.user_id
		ORDER BY ur.created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.RoleAssignment
	for rows.Next() {
		var ra entities.RoleAssignment
		if err := rows.Scan(&ra.UserID, &ra.Email, &ra.Role, &ra.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ra)
	}
	return out, rows.Err()
}
