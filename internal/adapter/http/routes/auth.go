package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/handlers"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/middleware"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase"
)

const (
	PathAuth  = "/auth"
	PathAdmin = "/admin"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, authUseCase usecase.IAuthUseCase) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.Authentication(authUseCase), authHandler.Me)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, userAdminHandler *handlers.UserAdminHandler, authUseCase usecase.IAuthUseCase) {
	admin := rg.Group(PathAdmin,
		middleware.Authentication(authUseCase),
		middleware.RequireRole(entities.RoleAdmin),
	)
	{
		admin.GET("/users", userAdminHandler.ListRoles)
		admin.POST("/users/role", userAdminHandler.AssignRole)
	}
}
