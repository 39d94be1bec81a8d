package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	mock_interfaces "github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserAdminUseCase_AssignRole(t *testing.T) {
	t.Run("blank user id", func(t *testing.T) {
		uc := NewUserAdminUseCase(nil)
		if err := uc.AssignRole(context.Background(), "   ", entities.RoleAdmin); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc := NewUserAdminUseCase(nil)
		if err := uc.AssignRole(context.Background(), "u-1", entities.Role("root")); !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("assigns a valid role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		roles := mock_interfaces.NewMockIRoleRepository(ctrl)
		uc := NewUserAdminUseCase(roles)

		roles.EXPECT().Assign(gomock.Any(), "u-1", entities.RoleAdmin).Return(nil)

		if err := uc.AssignRole(context.Background(), " u-1 ", entities.RoleAdmin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserAdminUseCase_ListRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	roles := mock_interfaces.NewMockIRoleRepository(ctrl)
	uc := NewUserAdminUseCase(roles)

	roles.EXPECT().List(gomock.Any()).Return([]entities.RoleAssignment{
		{UserID: "u-1", Email: "admin@oficina.com", Role: entities.RoleAdmin},
	}, nil)

	out, err := uc.ListRoles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Role != entities.RoleAdmin {
		t.Fatalf("unexpected assignments %+v", out)
	}
}
