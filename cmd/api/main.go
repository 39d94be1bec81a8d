package main

import (
	_ "github.com/leandrosouza2gf/ottoautoeletrtica/docs"
	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Oficina Elétrica API
// @version         1.0
// @description     Public order-status lookup and chat for the auto-electric shop, plus back-office auth.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
