package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/handlers"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/middleware"
)

const (
	PathPublic = "/public"

	// Requests per minute per caller. The chat ceiling is stricter: every
	// admitted request fans out to the paid completion API.
	lookupRateLimit = 10
	chatRateLimit   = 5
)

func addPublicRoutes(
	rg *gin.RouterGroup,
	lookupHandler *handlers.PublicLookupHandler,
	chatHandler *handlers.ChatHandler,
	seedHandler *handlers.SeedAdminHandler,
	lookupLimiter middleware.Limiter,
	chatLimiter middleware.Limiter,
) {
	public := rg.Group(PathPublic)
	{
		public.POST("/consultar-os", middleware.RateLimit(lookupLimiter), lookupHandler.Lookup)
		public.POST("/chat-os", middleware.RateLimit(chatLimiter), chatHandler.Ask)
		public.POST("/seed-admin", seedHandler.Seed)
	}
}
