package interfaces

import (
	"context"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
)

type IUserRepository interface {
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	Create(ctx context.Context, u entities.User) (entities.User, error)
}

// IRoleRepository reads and writes the user_roles table. Reads run on the
// service-credential pool: the caller's own credential is not necessarily
// allowed to see role rows.
type IRoleRepository interface {
	// GetByUserID returns "" with a nil error when the user has no
	// assignment row; the resolver maps that to the default role.
	GetByUserID(ctx context.Context, userID string) (entities.Role, error)
	HasRole(ctx context.Context, role entities.Role) (bool, error)
	Assign(ctx context.Context, userID string, role entities.Role) error
	List(ctx context.Context) ([]entities.RoleAssignment, error)
}
