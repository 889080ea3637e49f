package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	response "paypal_unified/internal/adapter/http/dto/response"
	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase"
	"paypal_unified/pkg"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	PathPayPalUnifiedError = "/v1/paypal-unified/error"

	shopIDHeader = "X-Shop-Id"
	shopIDQuery  = "shopId"
)

// PayPalUnifiedHandler serves the storefront-facing PayPal routes and the webhook endpoint.
//
// Browser routes never answer with an error body: every failure becomes a
// redirect to the error route carrying one of the checkout error codes.

type PayPalUnifiedHandler struct {
	checkout          usecase.ICheckoutUseCase
	webhooks          usecase.IWebhookUseCase
	sessionCookieName string
	storefrontURL     string
}

func NewPayPalUnifiedHandler(checkout usecase.ICheckoutUseCase, webhooks usecase.IWebhookUseCase, sessionCookieName string, storefrontURL string) *PayPalUnifiedHandler {
	return &PayPalUnifiedHandler{
		checkout:          checkout,
		webhooks:          webhooks,
		sessionCookieName: sessionCookieName,
		storefrontURL:     strings.TrimRight(storefrontURL, "/"),
	}
}

// Index forwards to the gateway.
func (h *PayPalUnifiedHandler) Index(c *gin.Context) {
	h.Gateway(c)
}

// Gateway creates the PayPal payment and sends the customer to PayPal.
// @Summary      Start PayPal checkout
// @Tags         paypal-unified
// @Param        shopId  query  string  false  "Shop id"
// @Success      302
// @Router       /paypal-unified/gateway [get]
func (h *PayPalUnifiedHandler) Gateway(c *gin.Context) {
	sessionID := h.sessionID(c)
	log.Printf("[paypal][handler] gateway start session_id=%s", sessionID)

	result, err := h.checkout.Gateway(c.Request.Context(), sessionID, shopID(c))
	if err != nil {
		h.redirectToError(c, usecase.ClassifyCheckoutError(err))
		return
	}
	c.Redirect(http.StatusFound, result.RedirectURL)
}

// Return executes the payment the customer approved on PayPal.
// @Summary      PayPal return
// @Tags         paypal-unified
// @Param        paymentId  query  string  true  "PayPal payment id"
// @Param        PayerID    query  string  true  "PayPal payer id"
// @Success      302
// @Router       /paypal-unified/return [get]
func (h *PayPalUnifiedHandler) Return(c *gin.Context) {
	sessionID := h.sessionID(c)
	paymentID := c.Query("paymentId")
	payerID := c.Query("PayerID")
	log.Printf("[paypal][handler] return start session_id=%s payment_id=%s", sessionID, paymentID)

	result, err := h.checkout.Return(c.Request.Context(), sessionID, shopID(c), paymentID, payerID)
	if err != nil {
		h.redirectToError(c, usecase.ClassifyCheckoutError(err))
		return
	}
	log.Printf("[paypal][handler] return success payment_id=%s order_number=%s", paymentID, result.OrderNumber)
	c.Redirect(http.StatusFound, result.RedirectURL)
}

// Cancel is PayPal's cancel_url.
// @Summary      PayPal cancel
// @Tags         paypal-unified
// @Success      302
// @Router       /paypal-unified/cancel [get]
func (h *PayPalUnifiedHandler) Cancel(c *gin.Context) {
	err := h.checkout.Cancel()
	h.redirectToError(c, usecase.ClassifyCheckoutError(err))
}

// PatchAddress patches the session's shipping address into a payment created
// by the in-context (Plus) integration.
// @Summary      Patch shipping address
// @Tags         paypal-unified
// @Param        paymentId  query  string  true  "PayPal payment id"
// @Success      200  {object}  response.WebhookResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /paypal-unified/patch-address [post]
func (h *PayPalUnifiedHandler) PatchAddress(c *gin.Context) {
	paymentID := c.Query("paymentId")
	if err := h.checkout.PatchAddress(c.Request.Context(), h.sessionID(c), shopID(c), paymentID); err != nil {
		log.Printf("[paypal][handler] patch address failed payment_id=%s err=%v", paymentID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.WebhookResponse{Status: "patched"})
}

// Error sends the customer back to the storefront's payment selection with the error code.
// @Summary      Checkout error redirect
// @Tags         paypal-unified
// @Param        code  query  int  false  "Error code 0-4"
// @Success      302
// @Router       /paypal-unified/error [get]
func (h *PayPalUnifiedHandler) Error(c *gin.Context) {
	code, err := strconv.Atoi(c.Query("code"))
	if err != nil {
		code = int(usecase.ErrorCodeUnknown)
	}
	normalized := usecase.NormalizeErrorCode(code)
	q := url.Values{"paypal_unified_error_code": {strconv.Itoa(int(normalized))}}
	c.Redirect(http.StatusFound, h.storefrontURL+"/checkout/shippingPayment?"+q.Encode())
}

// Webhook receives PayPal webhook deliveries.
//
// A delivery whose handler failed answers 500 so PayPal retries it.
// @Summary      PayPal webhook
// @Tags         paypal-unified
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.WebhookResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /paypal-unified/webhook [post]
func (h *PayPalUnifiedHandler) Webhook(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	headers := make(map[string]string, len(c.Request.Header))
	for k := range c.Request.Header {
		headers[k] = c.Request.Header.Get(k)
	}

	handled, err := h.webhooks.Receive(c.Request.Context(), shopID(c), headers, raw)
	status, body := WebhookResult(handled, err)
	c.JSON(status, body)
}

// WebhookResult maps the outcome of a webhook delivery to the HTTP answer for PayPal.
func WebhookResult(handled bool, err error) (int, any) {
	switch {
	case errors.Is(err, usecase.ErrWebhookHandlerNotFound):
		return http.StatusOK, response.WebhookResponse{Status: "ignored"}
	case errors.Is(err, entities.ErrMalformedWebhook):
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Invalid webhook payload", http.StatusBadRequest)
		return appErr.HTTPStatus, appErr.ToHTTPError()
	case errors.Is(err, usecase.ErrWebhookSignature):
		appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusUnauthorized)
		return appErr.HTTPStatus, appErr.ToHTTPError()
	case err != nil:
		log.Printf("[paypal][handler] webhook failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		return appErr.HTTPStatus, appErr.ToHTTPError()
	case !handled:
		appErr := pkg.NewDomainErrorSimple("WEBHOOK_NOT_PROCESSED", "Webhook could not be processed", http.StatusInternalServerError)
		return appErr.HTTPStatus, appErr.ToHTTPError()
	default:
		return http.StatusOK, response.WebhookResponse{Status: "processed"}
	}
}

func (h *PayPalUnifiedHandler) redirectToError(c *gin.Context, code usecase.ErrorCode) {
	c.Redirect(http.StatusFound, PathPayPalUnifiedError+"?code="+strconv.Itoa(int(code)))
}

func (h *PayPalUnifiedHandler) sessionID(c *gin.Context) string {
	return sessionIDFromCookie(c, h.sessionCookieName)
}

func sessionIDFromCookie(c *gin.Context, name string) string {
	v, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

func shopID(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(shopIDHeader)); v != "" {
		return v
	}
	return strings.TrimSpace(c.Query(shopIDQuery))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch usecase.ClassifyCheckoutError(err) {
	case usecase.ErrorCodeNoOrder:
		return pkg.NewDomainErrorSimple("NO_ORDER", "No order to process", http.StatusBadRequest)
	case usecase.ErrorCodeCanceled:
		return pkg.NewDomainErrorSimple("PAYMENT_CANCELED", "Payment canceled", http.StatusConflict)
	case usecase.ErrorCodeCommunicationFailure:
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Communication with PayPal failed", http.StatusBadGateway)
	case usecase.ErrorCodeSystemOrderFailure:
		return pkg.NewDomainErrorSimple("ORDER_UPDATE_FAILED", "Order could not be updated", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
