package response

import (
	"time"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase"
)

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func FromAuthUser(u entities.AuthUser) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Role: string(u.Role)}
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type RoleAssignmentResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromRoleAssignments(assignments []entities.RoleAssignment) []RoleAssignmentResponse {
	out := make([]RoleAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, RoleAssignmentResponse{
			UserID:    a.UserID,
			Email:     a.Email,
			Role:      string(a.Role),
			CreatedAt: a.CreatedAt,
		})
	}
	return out
}

type SeedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Created bool   `json:"created"`
	UserID  string `json:"user_id,omitempty"`
}

func FromSeedResult(r usecase.SeedResult) SeedResponse {
	return SeedResponse{Success: true, Message: r.Message, Created: r.Created, UserID: r.UserID}
}
