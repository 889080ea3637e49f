package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment state of a local order.
//
// Transitions are monotonic in business meaning:
//   - open -> approved | denied | refunded
//   - approved -> refunded
//
// Re-applying the current status is a no-op. Anything else is a regression.

type PaymentStatus string

const (
	PaymentStatusOpen     PaymentStatus = "open"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

var allowedPaymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusOpen:     {PaymentStatusApproved, PaymentStatusDenied, PaymentStatusRefunded},
	PaymentStatusApproved: {PaymentStatusRefunded},
}

// CanTransitionTo reports whether moving from s to next keeps the status history monotonic.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s == next {
		return true
	}
	// Orders persisted before a status was known behave like open ones.
	if s == "" {
		s = PaymentStatusOpen
	}
	for _, allowed := range allowedPaymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order attribute keys.
const (
	OrderAttributePaymentType = "paypal_unified_payment_type"
)

// Payment type attribute values.
const (
	PaymentTypeClassic     = "PayPalClassic"
	PaymentTypePlusInvoice = "PayPalPlusInvoice"
)

// Order is the local storefront order correlated to a PayPal payment.
//
// Storage model (DynamoDB):
//   - PK: number
//   - GSI1 (temporary_id-index): temporary_id
//
// TemporaryID holds the PayPal payment id captured when the order was saved.
// Webhooks only carry that id (resource.parent_payment), so it is the
// correlation key for asynchronous reconciliation.

type Order struct {
	ID            string            `json:"id"`
	Number        string            `json:"number"`
	ShopID        string            `json:"shop_id"`
	SessionID     string            `json:"session_id,omitempty"`
	TemporaryID   string            `json:"temporary_id"`
	TransactionID string            `json:"transaction_id"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	Currency      string            `json:"currency"`
	Total         decimal.Decimal   `json:"total"`
	Attributes    map[string]string `json:"attributes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
