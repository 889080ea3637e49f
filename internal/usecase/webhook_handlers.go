package usecase

import (
	"context"
	"log"
	"paypal_unified/internal/domain/entities"
)

// SaleStatusHandler moves the order correlated to a sale event to a fixed
// payment status. The order is found through the payment id stored as its
// temporary id when the order was saved.
type SaleStatusHandler struct {
	eventType string
	name      string
	status    entities.PaymentStatus
	orders    IOrderDataUseCase
}

var _ IWebhookHandler = (*SaleStatusHandler)(nil)

// NewSaleRefundedHandler marks orders as refunded on PAYMENT.SALE.REFUNDED.
func NewSaleRefundedHandler(orders IOrderDataUseCase) *SaleStatusHandler {
	return &SaleStatusHandler{eventType: entities.WebhookEventSaleRefunded, name: "SaleRefunded", status: entities.PaymentStatusRefunded, orders: orders}
}

// NewSaleCompletedHandler approves orders whose sale completed after checkout (e.g. pending eCheck).
func NewSaleCompletedHandler(orders IOrderDataUseCase) *SaleStatusHandler {
	return &SaleStatusHandler{eventType: entities.WebhookEventSaleCompleted, name: "SaleCompleted", status: entities.PaymentStatusApproved, orders: orders}
}

// NewSaleDeniedHandler marks orders as denied on PAYMENT.SALE.DENIED.
func NewSaleDeniedHandler(orders IOrderDataUseCase) *SaleStatusHandler {
	return &SaleStatusHandler{eventType: entities.WebhookEventSaleDenied, name: "SaleDenied", status: entities.PaymentStatusDenied, orders: orders}
}

func (h *SaleStatusHandler) EventType() string {
	return h.eventType
}

func (h *SaleStatusHandler) Invoke(ctx context.Context, webhook entities.Webhook) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[paypal][webhook][%s] could not update entity event_id=%s panic=%v", h.name, webhook.ID, r)
			ok = false
		}
	}()

	parentPayment := webhook.ParentPayment()
	found, err := h.orders.ApplyPaymentStatusByTemporaryID(ctx, parentPayment, h.status)
	if err != nil {
		log.Printf("[paypal][webhook][%s] could not update entity event_id=%s temporary_id=%s err=%v", h.name, webhook.ID, parentPayment, err)
		return false
	}
	if !found {
		log.Printf("[paypal][webhook][%s] could not find associated order with the temporary id %q webhook=%v", h.name, parentPayment, webhook.ToMap())
		return false
	}
	log.Printf("[paypal][webhook][%s] order updated event_id=%s temporary_id=%s status=%s", h.name, webhook.ID, parentPayment, h.status)
	return true
}
