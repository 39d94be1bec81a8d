package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/dto/request"
	response "github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/dto/response"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase"
	"github.com/leandrosouza2gf/ottoautoeletrtica/pkg"
)

var errInvalidRolePayload = pkg.NewDomainErrorSimple("INVALID_ROLE_INPUT", "Invalid role payload", http.StatusBadRequest)

// UserAdminHandler is the admin-only role-management surface.
type UserAdminHandler struct {
	usecase usecase.IUserAdminUseCase
}

func NewUserAdminHandler(uc usecase.IUserAdminUseCase) *UserAdminHandler {
	return &UserAdminHandler{usecase: uc}
}

func (h *UserAdminHandler) ListRoles(c *gin.Context) {
	assignments, err := h.usecase.ListRoles(c.Request.Context())
	if err != nil {
		appErr := mapUserAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRoleAssignments(assignments))
}

func (h *UserAdminHandler) AssignRole(c *gin.Context) {
	var payload request.AssignRoleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRolePayload.HTTPStatus, errInvalidRolePayload.ToHTTPError())
		return
	}

	if err := h.usecase.AssignRole(c.Request.Context(), payload.UserID, entities.Role(payload.Role)); err != nil {
		appErr := mapUserAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapUserAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
