package interfaces

import (
	"context"
	"paypal_unified/internal/domain/entities"
)

// IPaymentInstructionRepository persists pay-upon-invoice instructions.

type IPaymentInstructionRepository interface {
	Create(ctx context.Context, r entities.PaymentInstructionRecord) error
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.PaymentInstructionRecord, error)
}
