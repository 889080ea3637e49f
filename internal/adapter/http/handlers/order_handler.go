package handlers

import (
	"errors"
	"log"
	"net/http"
	response "paypal_unified/internal/adapter/http/dto/response"
	"paypal_unified/internal/usecase"
	"paypal_unified/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the reconciled order state to the storefront.

type OrderHandler struct {
	orders       usecase.IOrderDataUseCase
	instructions usecase.IPaymentInstructionUseCase
}

func NewOrderHandler(orders usecase.IOrderDataUseCase, instructions usecase.IPaymentInstructionUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, instructions: instructions}
}

// GetOrder godoc
// @Summary      Get order payment state
// @Tags         orders
// @Produce      json
// @Param        order_number  path  string  true  "Order number"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_number} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	number := c.Param("order_number")
	order, err := h.orders.GetOrder(c.Request.Context(), number)
	if err != nil {
		log.Printf("[paypal][handler] get order failed order_number=%s err=%v", number, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetPaymentInstruction godoc
// @Summary      Get pay-upon-invoice instruction of an order
// @Tags         orders
// @Produce      json
// @Param        order_number  path  string  true  "Order number"
// @Success      200  {object}  response.PaymentInstructionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_number}/payment-instruction [get]
func (h *OrderHandler) GetPaymentInstruction(c *gin.Context) {
	number := c.Param("order_number")
	record, err := h.instructions.GetByOrderNumber(c.Request.Context(), number)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentInstruction(record))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentInstructionNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_INSTRUCTION_NOT_FOUND", "Payment instruction not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
