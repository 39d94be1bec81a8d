package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase/interfaces"
)

// SeedResult reports what the bootstrap did.
type SeedResult struct {
	Created bool
	UserID  string
	Message string
}

// ISeedUseCase bootstraps the first admin account. Idempotent: once any admin
// role row exists it refuses to create another, which is what makes the
// endpoint safe to leave callable.
type ISeedUseCase interface {
	EnsureAdmin(ctx context.Context) (SeedResult, error)
}

type SeedUseCase struct {
	users    interfaces.IUserRepository
	roles    interfaces.IRoleRepository
	email    string
	password string
}

var _ ISeedUseCase = (*SeedUseCase)(nil)

func NewSeedUseCase(users interfaces.IUserRepository, roles interfaces.IRoleRepository, email, password string) *SeedUseCase {
	return &SeedUseCase{users: users, roles: roles, email: email, password: password}
}

func (u *SeedUseCase) EnsureAdmin(ctx context.Context) (SeedResult, error) {
	log.Printf("[seed][usecase] verificando admin existente")

	hasAdmin, err := u.roles.HasRole(ctx, entities.RoleAdmin)
	if err != nil {
		return SeedResult{}, err
	}
	if hasAdmin {
		log.Printf("[seed][usecase] admin ja existe, nada a fazer")
		return SeedResult{Created: false, Message: "Admin já existe no sistema"}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
	if err != nil {
		return SeedResult{}, err
	}

	user, err := u.users.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Email:        u.email,
		Nome:         "Administrador",
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return SeedResult{}, err
	}

	if err := u.roles.Assign(ctx, user.ID, entities.RoleAdmin); err != nil {
		return SeedResult{}, err
	}

	log.Printf("[seed][usecase] admin criado user_id=%s", user.ID)
	return SeedResult{Created: true, UserID: user.ID, Message: "Admin criado com sucesso"}, nil
}
