package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase/interfaces"
)

var (
	ErrInvalidUserID = errors.New("invalid user id")
	ErrInvalidRole   = errors.New("invalid role")
)

// IUserAdminUseCase is the role-administration surface behind the admin-only
// users screen.
type IUserAdminUseCase interface {
	ListRoles(ctx context.Context) ([]entities.RoleAssignment, error)
	AssignRole(ctx context.Context, userID string, role entities.Role) error
}

type UserAdminUseCase struct {
	roles interfaces.IRoleRepository
}

var _ IUserAdminUseCase = (*UserAdminUseCase)(nil)

func NewUserAdminUseCase(roles interfaces.IRoleRepository) *UserAdminUseCase {
	return &UserAdminUseCase{roles: roles}
}

func (u *UserAdminUseCase) ListRoles(ctx context.Context) ([]entities.RoleAssignment, error) {
	return u.roles.List(ctx)
}

func (u *UserAdminUseCase) AssignRole(ctx context.Context, userID string, role entities.Role) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}
	if role != entities.RoleAdmin && role != entities.RoleUser {
		return ErrInvalidRole
	}
	return u.roles.Assign(ctx, userID, role)
}
