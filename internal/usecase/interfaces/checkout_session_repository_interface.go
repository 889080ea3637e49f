package interfaces

import (
	"context"
	"paypal_unified/internal/domain/entities"
)

// ICheckoutSessionRepository stores the order context of a storefront session
// between the gateway redirect and the return from PayPal.
//
// Get returns nil (and no error) when the session holds no order context.

type ICheckoutSessionRepository interface {
	Get(ctx context.Context, sessionID string) (*entities.OrderContext, error)
	Save(ctx context.Context, sessionID string, oc entities.OrderContext) error
	Delete(ctx context.Context, sessionID string) error
}
