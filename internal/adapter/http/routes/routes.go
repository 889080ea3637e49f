package routes

import (
	"log"
	_ "paypal_unified/docs" // This will be auto-generated
	"paypal_unified/internal/adapter/http/handlers"
	"paypal_unified/internal/infrastructure/bootstrap"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	services, err := bootstrap.Build()
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	getRoutes(services)

	err = router.Run(":" + strconv.Itoa(services.App.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(services *bootstrap.Services) {
	cookie := services.App.SessionCookieName

	payPalHandler := handlers.NewPayPalUnifiedHandler(services.Checkout, services.Webhooks, cookie, services.App.StorefrontURL)
	sessionHandler := handlers.NewCheckoutSessionHandler(services.Checkout, cookie)
	orderHandler := handlers.NewOrderHandler(services.Orders, services.PaymentInstruction)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPayPalUnifiedRoutes(v1, payPalHandler)
	addCheckoutSessionRoutes(v1, sessionHandler)
	addOrderRoutes(v1, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
