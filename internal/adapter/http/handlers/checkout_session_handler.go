package handlers

import (
	"errors"
	"log"
	"net/http"
	request "paypal_unified/internal/adapter/http/dto/request"
	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase"
	"paypal_unified/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

const sessionCookieMaxAge = 24 * 60 * 60

var errInvalidOrderContextPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_CONTEXT", "Invalid order context payload", http.StatusBadRequest)

// CheckoutSessionHandler lets the storefront hand over the basket of a checkout session.

type CheckoutSessionHandler struct {
	checkout          usecase.ICheckoutUseCase
	sessionCookieName string
}

func NewCheckoutSessionHandler(checkout usecase.ICheckoutUseCase, sessionCookieName string) *CheckoutSessionHandler {
	return &CheckoutSessionHandler{checkout: checkout, sessionCookieName: sessionCookieName}
}

// PutOrderContext stores the order context and sets the session cookie the
// PayPal routes read it back with.
// @Summary      Store checkout basket
// @Tags         checkout-sessions
// @Accept       json
// @Param        session_id  path  string                        true  "Session id"
// @Param        body        body  request.OrderContextRequest  true  "Basket"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Router       /checkout-sessions/{session_id} [put]
func (h *CheckoutSessionHandler) PutOrderContext(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Param("session_id"))
	var payload request.OrderContextRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[paypal][handler] invalid order context session_id=%s err=%v", sessionID, err)
		c.JSON(errInvalidOrderContextPayload.HTTPStatus, errInvalidOrderContextPayload.ToHTTPError())
		return
	}

	if err := h.checkout.SaveOrderContext(c.Request.Context(), sessionID, payload.ToOrderContext()); err != nil {
		log.Printf("[paypal][handler] save order context failed session_id=%s err=%v", sessionID, err)
		appErr := mapOrderContextError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.SetCookie(h.sessionCookieName, sessionID, sessionCookieMaxAge, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func mapOrderContextError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidOrderContext), errors.Is(err, usecase.ErrNoOrderContext):
		return errInvalidOrderContextPayload
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
