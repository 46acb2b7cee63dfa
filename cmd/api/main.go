package main

import (
	_ "boq_service/docs"
	"boq_service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Bills of Quantities Service API
// @version         1.0
// @description     Estimates, sections and derived work volumes and resource quantities.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
