package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase"
)

const authUserKey = "authUser"

// Authentication resolves the bearer credential into an identity and role and
// attaches it to the request. 401 covers both a missing and a rejected
// credential; role checks come later and answer 403.
func Authentication(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			msg := "Token inválido ou expirado"
			if errors.Is(err, usecase.ErrMissingCredential) {
				msg = "Token não fornecido"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		c.Set(authUserKey, user)
		c.Next()
	}
}

// RequireRole gates a route group on the resolved role. Runs after
// Authentication.
func RequireRole(required entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := AuthUserFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
			return
		}
		if required == entities.RoleAdmin && user.Role != entities.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acesso negado. Requer perfil de administrador."})
			return
		}
		c.Next()
	}
}

func AuthUserFromContext(c *gin.Context) (entities.AuthUser, bool) {
	v, ok := c.Get(authUserKey)
	if !ok {
		return entities.AuthUser{}, false
	}
	user, ok := v.(entities.AuthUser)
	return user, ok
}
