package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/dto/request"
	response "github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/dto/response"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/middleware"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase"
)

// PublicLookupHandler serves the tokenless/token-gated order-status query.
// Error bodies here are plain {"error": ...} strings: the consumer is the
// public status page, not the back office.
type PublicLookupHandler struct {
	usecase usecase.ILookupUseCase
}

func NewPublicLookupHandler(uc usecase.ILookupUseCase) *PublicLookupHandler {
	return &PublicLookupHandler{usecase: uc}
}

func (h *PublicLookupHandler) Lookup(c *gin.Context) {
	var payload request.LookupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Número da OS é obrigatório"})
		return
	}

	caller := usecase.CallerInfo{
		IP:        middleware.ClientIP(c),
		UserAgent: userAgent(c),
	}

	snap, err := h.usecase.GetPublicSnapshot(c.Request.Context(), payload.NumeroOS, payload.AccessToken, caller)
	if err != nil {
		status, msg := mapLookupError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func mapLookupError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrMissingOrderNumber):
		return http.StatusBadRequest, "Número da OS é obrigatório"
	case errors.Is(err, usecase.ErrOrderNotFound):
		return http.StatusNotFound, "OS não encontrada"
	default:
		return http.StatusInternalServerError, "Erro ao processar solicitação"
	}
}

func userAgent(c *gin.Context) string {
	if ua := c.GetHeader("User-Agent"); ua != "" {
		return ua
	}
	return "unknown"
}
