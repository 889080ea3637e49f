package interfaces

import (
	"context"
	"paypal_unified/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Lookups return a zero Order (empty Number) and a nil error when nothing matches.
// Update methods behave the same way when the order does not exist.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByNumber(ctx context.Context, number string) (entities.Order, error)
	GetByTemporaryID(ctx context.Context, temporaryID string) (entities.Order, error)
	UpdatePaymentStatus(ctx context.Context, number string, status entities.PaymentStatus) (entities.Order, error)
	UpdateTransactionID(ctx context.Context, number string, transactionID string) (entities.Order, error)
	SetAttribute(ctx context.Context, number string, key string, value string) (entities.Order, error)
}

// IOrderNumberGenerator hands out sequential storefront order numbers.
type IOrderNumberGenerator interface {
	Next(ctx context.Context) (string, error)
}
