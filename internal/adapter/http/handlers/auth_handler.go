package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/dto/request"
	response "github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/dto/response"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/middleware"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase"
	"github.com/leandrosouza2gf/ottoautoeletrtica/pkg"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)

// AuthHandler issues bearer tokens and answers the route-guard identity probe.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	token, user, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapLoginError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{Token: token, User: response.FromAuthUser(user)})
}

// Me reports the identity and role the middleware resolved; the front end
// gates routes on it.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.AuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
		return
	}
	c.JSON(http.StatusOK, response.FromAuthUser(user))
}

func mapLoginError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLogin):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
