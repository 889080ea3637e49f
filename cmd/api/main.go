package main

import (
	_ "paypal_unified/docs"
	"paypal_unified/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PayPal Unified API
// @version         1.0
// @description     PayPal checkout (create, approve, execute) and webhook reconciliation backed by DynamoDB.
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
