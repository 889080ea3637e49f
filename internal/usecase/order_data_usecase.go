package usecase

import (
	"context"
	"errors"
	"log"
	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderNumber = errors.New("invalid order number")
)

// IOrderDataUseCase reconciles local orders with the PayPal payment state.
//
// Every Apply* method expects the order to exist already: orders are saved by
// the checkout flow before (or right after) the remote round-trip, so
// reconciliation only ever updates. The bool result is false when no order matched.

type IOrderDataUseCase interface {
	SaveOrder(ctx context.Context, oc entities.OrderContext, sessionID string, temporaryID string, status entities.PaymentStatus) (string, error)
	ApplyPaymentStatus(ctx context.Context, orderNumber string, status entities.PaymentStatus) (bool, error)
	ApplyPaymentStatusByTemporaryID(ctx context.Context, temporaryID string, status entities.PaymentStatus) (bool, error)
	ApplyTransactionID(ctx context.Context, orderNumber string, transactionID string) (bool, error)
	ApplyPaymentTypeAttribute(ctx context.Context, orderNumber string, payment entities.Payment)
	GetOrder(ctx context.Context, orderNumber string) (entities.Order, error)
	GetOrderByTemporaryID(ctx context.Context, temporaryID string) (entities.Order, error)
}

type OrderDataUseCase struct {
	repo    interfaces.IOrderRepository
	numbers interfaces.IOrderNumberGenerator
	now     func() time.Time
}

var _ IOrderDataUseCase = (*OrderDataUseCase)(nil)

func NewOrderDataUseCase(repo interfaces.IOrderRepository, numbers interfaces.IOrderNumberGenerator) *OrderDataUseCase {
	return &OrderDataUseCase{repo: repo, numbers: numbers, now: time.Now}
}

// SaveOrder persists the local order for a PayPal payment and returns its number.
//
// A second call for the same temporary id (reload of the return page) returns
// the existing order instead of creating a duplicate.
func (u *OrderDataUseCase) SaveOrder(ctx context.Context, oc entities.OrderContext, sessionID string, temporaryID string, status entities.PaymentStatus) (string, error) {
	existing, err := u.repo.GetByTemporaryID(ctx, temporaryID)
	if err != nil {
		return "", err
	}
	if existing.Number != "" {
		log.Printf("[paypal][order] reusing order order_number=%s temporary_id=%s", existing.Number, temporaryID)
		return existing.Number, nil
	}

	number, err := u.numbers.Next(ctx)
	if err != nil {
		log.Printf("[paypal][order] order number generation failed temporary_id=%s err=%v", temporaryID, err)
		return "", err
	}

	now := u.now().UTC()
	o := entities.Order{
		ID:            uuid.NewString(),
		Number:        number,
		ShopID:        oc.ShopID,
		SessionID:     sessionID,
		TemporaryID:   temporaryID,
		TransactionID: temporaryID,
		PaymentStatus: status,
		Currency:      oc.Currency,
		Total:         oc.Total,
		Attributes:    map[string]string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[paypal][order] create failed order_number=%s temporary_id=%s err=%v", number, temporaryID, err)
		return "", err
	}
	log.Printf("[paypal][order] order saved order_number=%s temporary_id=%s status=%s", created.Number, temporaryID, status)
	return created.Number, nil
}

func (u *OrderDataUseCase) ApplyPaymentStatus(ctx context.Context, orderNumber string, status entities.PaymentStatus) (bool, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return false, ErrInvalidOrderNumber
	}
	order, err := u.repo.GetByNumber(ctx, orderNumber)
	if err != nil {
		return false, err
	}
	return u.applyStatus(ctx, order, status)
}

func (u *OrderDataUseCase) ApplyPaymentStatusByTemporaryID(ctx context.Context, temporaryID string, status entities.PaymentStatus) (bool, error) {
	temporaryID = strings.TrimSpace(temporaryID)
	if temporaryID == "" {
		return false, nil
	}
	order, err := u.repo.GetByTemporaryID(ctx, temporaryID)
	if err != nil {
		return false, err
	}
	return u.applyStatus(ctx, order, status)
}

// applyStatus re-checks the current status before writing so repeated
// deliveries of the same event are no-ops, and regressions are refused.
func (u *OrderDataUseCase) applyStatus(ctx context.Context, order entities.Order, status entities.PaymentStatus) (bool, error) {
	if order.Number == "" {
		return false, nil
	}
	if order.PaymentStatus == status {
		log.Printf("[paypal][order] status unchanged order_number=%s status=%s", order.Number, status)
		return true, nil
	}
	if !order.PaymentStatus.CanTransitionTo(status) {
		log.Printf("[paypal][order] refusing status regression order_number=%s from=%s to=%s", order.Number, order.PaymentStatus, status)
		return true, nil
	}

	updated, err := u.repo.UpdatePaymentStatus(ctx, order.Number, status)
	if err != nil {
		return false, err
	}
	if updated.Number == "" {
		return false, nil
	}
	log.Printf("[paypal][order] status applied order_number=%s from=%s to=%s", order.Number, order.PaymentStatus, status)
	return true, nil
}

func (u *OrderDataUseCase) ApplyTransactionID(ctx context.Context, orderNumber string, transactionID string) (bool, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return false, ErrInvalidOrderNumber
	}
	updated, err := u.repo.UpdateTransactionID(ctx, orderNumber, transactionID)
	if err != nil {
		return false, err
	}
	return updated.Number != "", nil
}

// ApplyPaymentTypeAttribute is best-effort: failures are logged, never returned.
func (u *OrderDataUseCase) ApplyPaymentTypeAttribute(ctx context.Context, orderNumber string, payment entities.Payment) {
	paymentType := payment.PaymentType()
	updated, err := u.repo.SetAttribute(ctx, orderNumber, entities.OrderAttributePaymentType, paymentType)
	if err != nil {
		log.Printf("[paypal][order] payment type attribute failed order_number=%s err=%v", orderNumber, err)
		return
	}
	if updated.Number == "" {
		log.Printf("[paypal][order] payment type attribute skipped, order not found order_number=%s", orderNumber)
	}
}

func (u *OrderDataUseCase) GetOrder(ctx context.Context, orderNumber string) (entities.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.Order{}, ErrInvalidOrderNumber
	}
	o, err := u.repo.GetByNumber(ctx, orderNumber)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Number == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// GetOrderByTemporaryID returns the zero value when no order carries temporaryID.
func (u *OrderDataUseCase) GetOrderByTemporaryID(ctx context.Context, temporaryID string) (entities.Order, error) {
	temporaryID = strings.TrimSpace(temporaryID)
	if temporaryID == "" {
		return entities.Order{}, nil
	}
	return u.repo.GetByTemporaryID(ctx, temporaryID)
}
