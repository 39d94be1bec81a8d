package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/leandrosouza2gf/ottoautoeletrtica/docs" // This will be auto-generated
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/handlers"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/middleware"
	repository2 "github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/persistence/repository"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/infrastructure/ai"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/infrastructure/database"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/usecase/interfaces"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()

	pool := database.ConnectPostgres(ctx)
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewServiceOrderPostgresRepository(pool)
	vehicleRepo := repository2.NewVehiclePostgresRepository(pool)
	itemsRepo := repository2.NewOrderItemsPostgresRepository(pool)
	auditRepo := repository2.NewAccessLogDynamoRepository(ddb)
	userRepo := repository2.NewUserPostgresRepository(pool)
	roleRepo := repository2.NewRolePostgresRepository(pool)

	lookupUseCase := usecase.NewLookupUseCase(orderRepo, vehicleRepo, itemsRepo, auditRepo)

	var gateway interfaces.ICompletionGateway
	aiGateway, err := ai.NewCompletionGateway(os.Getenv("AI_GATEWAY_API_KEY"))
	if err != nil {
		log.Printf("Completion gateway not configured: %v", err)
	} else {
		gateway = aiGateway
	}
	chatUseCase := usecase.NewChatUseCase(lookupUseCase, gateway)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Printf("JWT_SECRET not set, falling back to an insecure development secret")
		jwtSecret = "insecure-dev-secret"
	}
	authUseCase := usecase.NewAuthUseCase(userRepo, roleRepo, jwtSecret)

	seedUseCase := usecase.NewSeedUseCase(userRepo, roleRepo,
		getenvDefault("SEED_ADMIN_EMAIL", "admin@admin.com"),
		getenvDefault("SEED_ADMIN_PASSWORD", "admin123"),
	)
	userAdminUseCase := usecase.NewUserAdminUseCase(roleRepo)

	lookupHandler := handlers.NewPublicLookupHandler(lookupUseCase)
	chatHandler := handlers.NewChatHandler(chatUseCase)
	seedHandler := handlers.NewSeedAdminHandler(seedUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	userAdminHandler := handlers.NewUserAdminHandler(userAdminUseCase)

	lookupLimiter, chatLimiter := buildLimiters()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, lookupHandler, chatHandler, seedHandler, lookupLimiter, chatLimiter)
	addAuthRoutes(v1, authHandler, authUseCase)
	addAdminRoutes(v1, userAdminHandler, authUseCase)
}

// buildLimiters picks the shared Redis counters when REDIS_URL is set and the
// per-instance map otherwise. Either way the throttle is best-effort, not a
// security boundary.
func buildLimiters() (middleware.Limiter, middleware.Limiter) {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		client, err := database.NewRedisClient(redisURL)
		if err != nil {
			log.Printf("Redis rate-limit store unavailable, using in-memory counters: %v", err)
		} else {
			return middleware.NewRedisWindowLimiter(client, "consultar-os", lookupRateLimit, middleware.RateWindow),
				middleware.NewRedisWindowLimiter(client, "chat-os", chatRateLimit, middleware.RateWindow)
		}
	}
	return middleware.NewFixedWindowLimiter(lookupRateLimit, middleware.RateWindow),
		middleware.NewFixedWindowLimiter(chatRateLimit, middleware.RateWindow)
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
