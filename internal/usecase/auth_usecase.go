package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase/interfaces"
)

var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidCredential = errors.New("invalid or expired credential")
	ErrInvalidLogin      = errors.New("invalid email or password")
)

const tokenTTL = 72 * time.Hour

// IAuthUseCase owns back-office identity: issuing bearer tokens at login and
// resolving a request's identity and role from one.
type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (string, entities.AuthUser, error)
	Authenticate(ctx context.Context, authorizationHeader string) (entities.AuthUser, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	roles  interfaces.IRoleRepository
	secret []byte
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, roles interfaces.IRoleRepository, secret string) *AuthUseCase {
	return &AuthUseCase{users: users, roles: roles, secret: []byte(secret)}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, entities.AuthUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", entities.AuthUser{}, ErrInvalidLogin
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.AuthUser{}, err
	}
	if user.ID == "" {
		return "", entities.AuthUser{}, ErrInvalidLogin
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", entities.AuthUser{}, ErrInvalidLogin
	}

	authUser := entities.AuthUser{
		ID:    user.ID,
		Email: user.Email,
		Role:  u.resolveRole(ctx, user.ID),
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return "", entities.AuthUser{}, err
	}

	log.Printf("[auth][usecase] login user_id=%s role=%s", authUser.ID, authUser.Role)
	return token, authUser, nil
}

// Authenticate validates the Authorization header and resolves the caller's
// role. The role read runs on the service-credential pool: the bearer token
// itself does not grant access to the user_roles table.
func (u *AuthUseCase) Authenticate(ctx context.Context, authorizationHeader string) (entities.AuthUser, error) {
	if !strings.HasPrefix(authorizationHeader, "Bearer ") {
		return entities.AuthUser{}, ErrMissingCredential
	}
	raw := strings.TrimPrefix(authorizationHeader, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredential
		}
		return u.secret, nil
	})
	if err != nil || !token.Valid {
		log.Printf("[auth][usecase] token rejeitado err=%v", err)
		return entities.AuthUser{}, ErrInvalidCredential
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entities.AuthUser{}, ErrInvalidCredential
	}
	userID, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if userID == "" {
		return entities.AuthUser{}, ErrInvalidCredential
	}

	authUser := entities.AuthUser{
		ID:    userID,
		Email: email,
		Role:  u.resolveRole(ctx, userID),
	}
	log.Printf("[auth][usecase] usuario autenticado user_id=%s role=%s", authUser.ID, authUser.Role)
	return authUser, nil
}

// resolveRole defaults to "user" when no assignment row exists; a failed read
// degrades the same way rather than rejecting the request.
func (u *AuthUseCase) resolveRole(ctx context.Context, userID string) entities.Role {
	role, err := u.roles.GetByUserID(ctx, userID)
	if err != nil {
		log.Printf("[auth][usecase] falha ao buscar role user_id=%s err=%v", userID, err)
		return entities.RoleUser
	}
	if role == "" {
		return entities.RoleUser
	}
	return role
}
