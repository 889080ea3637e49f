package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Webhook event types handled by the service.
const (
	WebhookEventSaleCompleted = "PAYMENT.SALE.COMPLETED"
	WebhookEventSaleDenied    = "PAYMENT.SALE.DENIED"
	WebhookEventSaleRefunded  = "PAYMENT.SALE.REFUNDED"
)

var ErrMalformedWebhook = errors.New("malformed webhook")

// Webhook is an event pushed by PayPal. It is immutable once decoded.
type Webhook struct {
	ID           string         `json:"id"`
	CreationTime string         `json:"create_time"`
	ResourceType string         `json:"resource_type"`
	EventType    string         `json:"event_type"`
	Summary      string         `json:"summary"`
	Resource     map[string]any `json:"resource"`
}

// ParseWebhook decodes a raw webhook body. id and event_type are mandatory.
func ParseWebhook(raw []byte) (Webhook, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Webhook{}, &ParseError{Err: fmt.Errorf("%w: empty body", ErrMalformedWebhook)}
	}

	var w Webhook
	if err := json.Unmarshal(raw, &w); err != nil {
		return Webhook{}, &ParseError{Err: fmt.Errorf("%w: %v", ErrMalformedWebhook, err)}
	}
	if strings.TrimSpace(w.ID) == "" {
		return Webhook{}, &ParseError{Field: "id", Err: fmt.Errorf("%w: missing", ErrMalformedWebhook)}
	}
	if strings.TrimSpace(w.EventType) == "" {
		return Webhook{}, &ParseError{Field: "event_type", Err: fmt.Errorf("%w: missing", ErrMalformedWebhook)}
	}
	return w, nil
}

// ResourceString returns a string field of the resource payload, or "".
func (w Webhook) ResourceString(key string) string {
	if w.Resource == nil {
		return ""
	}
	v, ok := w.Resource[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

// ParentPayment is the PayPal payment id a sale event belongs to.
func (w Webhook) ParentPayment() string {
	return w.ResourceString("parent_payment")
}

// ToMap is the representation attached to log lines.
func (w Webhook) ToMap() map[string]any {
	return map[string]any{
		"id":           w.ID,
		"creationTime": w.CreationTime,
		"resourceType": w.ResourceType,
		"eventType":    w.EventType,
		"summary":      w.Summary,
		"resource":     w.Resource,
	}
}
