package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/dto/response"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase"
)

// SeedAdminHandler bootstraps the first admin account. The usecase is
// idempotent, which is the only reason this route can stay callable without a
// credential (there is no admin yet to authenticate as).
type SeedAdminHandler struct {
	usecase usecase.ISeedUseCase
}

func NewSeedAdminHandler(uc usecase.ISeedUseCase) *SeedAdminHandler {
	return &SeedAdminHandler{usecase: uc}
}

func (h *SeedAdminHandler) Seed(c *gin.Context) {
	result, err := h.usecase.EnsureAdmin(c.Request.Context())
	if err != nil {
		log.Printf("[seed][handler] falha no seed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao processar solicitação"})
		return
	}
	c.JSON(http.StatusOK, response.FromSeedResult(result))
}
