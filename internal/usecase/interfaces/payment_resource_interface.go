package interfaces

import (
	"context"
	"encoding/json"
	"paypal_unified/internal/domain/entities"
)

// RedirectURLs are the URLs PayPal sends the customer back to.
type RedirectURLs struct {
	ReturnURL string
	CancelURL string
}

// IPaymentResource abstracts PayPal's payment API.
//
// Failed calls return *entities.ProviderRequestError. Execute returns a nil
// body without error when PayPal answers with no content; callers treat that
// as a communication failure.
type IPaymentResource interface {
	Create(ctx context.Context, shopID string, oc entities.OrderContext, urls RedirectURLs) (json.RawMessage, error)
	Patch(ctx context.Context, shopID string, paymentID string, patches []entities.Patch) error
	Execute(ctx context.Context, shopID string, payerID string, paymentID string) (json.RawMessage, error)
}
