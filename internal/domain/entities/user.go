package entities

import "time"

// Role is the back-office authorization level. "admin" is the only privileged
// role; anyone without an explicit assignment row is a plain "user".
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is a back-office account. PasswordHash is a bcrypt digest.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Nome         string    `json:"nome"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RoleAssignment is a row of the user_roles table.
type RoleAssignment struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthUser is the identity the auth resolver attaches to a request once the
// bearer credential checked out.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
