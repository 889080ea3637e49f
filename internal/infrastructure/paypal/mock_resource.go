package paypal

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"os"
	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"
	"strings"

	"github.com/google/uuid"
)

const mockPayerID = "MOCK-PAYER"

// MockPaymentResource is an in-process PayPal stand-in for local runs.
// The approval link points straight back to the return URL, and every execute
// completes the sale.
type MockPaymentResource struct{}

var _ interfaces.IPaymentResource = (*MockPaymentResource)(nil)

func NewMockPaymentResource() *MockPaymentResource {
	log.Printf("[paypal][gateway] mock mode enabled")
	return &MockPaymentResource{}
}

func (m *MockPaymentResource) Create(_ context.Context, shopID string, oc entities.OrderContext, urls interfaces.RedirectURLs) (json.RawMessage, error) {
	id := "PAY-MOCK-" + strings.ToUpper(uuid.NewString())
	approval := urls.ReturnURL
	q := url.Values{"paymentId": {id}, "PayerID": {mockPayerID}}
	if strings.Contains(approval, "?") {
		approval += "&" + q.Encode()
	} else {
		approval += "?" + q.Encode()
	}

	log.Printf("[paypal][gateway] mock create payment_id=%s shop_id=%s total=%s", id, shopID, oc.Total.StringFixed(2))
	return json.Marshal(map[string]any{
		"id":     id,
		"intent": "sale",
		"state":  "created",
		"links": []map[string]string{
			{"rel": "approval_url", "href": approval, "method": "REDIRECT"},
		},
	})
}

func (m *MockPaymentResource) Patch(_ context.Context, _ string, paymentID string, patches []entities.Patch) error {
	log.Printf("[paypal][gateway] mock patch payment_id=%s operations=%d", paymentID, len(patches))
	return nil
}

func (m *MockPaymentResource) Execute(_ context.Context, _ string, payerID string, paymentID string) (json.RawMessage, error) {
	saleID := "SALE-MOCK-" + strings.ToUpper(uuid.NewString())
	log.Printf("[paypal][gateway] mock execute payment_id=%s payer_id=%s sale_id=%s", paymentID, payerID, saleID)
	return json.Marshal(map[string]any{
		"id":    paymentID,
		"state": "approved",
		"transactions": []map[string]any{{
			"related_resources": []map[string]any{{
				"sale": map[string]string{"id": saleID, "state": string(entities.SaleStateCompleted), "parent_payment": paymentID},
			}},
		}},
	})
}

// IsMockEnabled reports whether PAYMENT_GATEWAY_MOCK (or PAYPAL_MOCK) asks for the mock provider.
func IsMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "PAYPAL_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
