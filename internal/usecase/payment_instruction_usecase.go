package usecase

import (
	"context"
	"errors"
	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"
	"strings"
)

var ErrPaymentInstructionNotFound = errors.New("payment instruction not found")

// IPaymentInstructionUseCase exposes the bank details of pay-upon-invoice
// orders so the storefront can print them on the finish page and the invoice.
type IPaymentInstructionUseCase interface {
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.PaymentInstructionRecord, error)
}

type PaymentInstructionUseCase struct {
	repo interfaces.IPaymentInstructionRepository
}

var _ IPaymentInstructionUseCase = (*PaymentInstructionUseCase)(nil)

func NewPaymentInstructionUseCase(repo interfaces.IPaymentInstructionRepository) *PaymentInstructionUseCase {
	return &PaymentInstructionUseCase{repo: repo}
}

func (u *PaymentInstructionUseCase) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.PaymentInstructionRecord, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.PaymentInstructionRecord{}, ErrInvalidOrderNumber
	}
	r, err := u.repo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.PaymentInstructionRecord{}, err
	}
	if r.OrderNumber == "" {
		return entities.PaymentInstructionRecord{}, ErrPaymentInstructionNotFound
	}
	return r, nil
}
