package routes

import (
	"paypal_unified/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayPalUnified    = "/paypal-unified"
	PathCheckoutSessions = "/checkout-sessions"
	PathOrders           = "/orders"
)

func addPayPalUnifiedRoutes(rg *gin.RouterGroup, handler *handlers.PayPalUnifiedHandler) {
	paypal := rg.Group(PathPayPalUnified)
	{
		// Browser routes: every outcome is a redirect.
		paypal.GET("", handler.Index)
		paypal.GET("/gateway", handler.Gateway)
		paypal.GET("/return", handler.Return)
		paypal.GET("/cancel", handler.Cancel)
		paypal.GET("/error", handler.Error)

		paypal.POST("/patch-address", handler.PatchAddress)
		paypal.POST("/webhook", handler.Webhook)
	}
}

func addCheckoutSessionRoutes(rg *gin.RouterGroup, handler *handlers.CheckoutSessionHandler) {
	sessions := rg.Group(PathCheckoutSessions)
	{
		sessions.PUT("/:session_id", handler.PutOrderContext)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, handler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_number", handler.GetOrder)
		orders.GET("/:order_number/payment-instruction", handler.GetPaymentInstruction)
	}
}
