package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"
	"strings"
	"time"
)

// CheckoutState is the position of a PayPal checkout in its lifecycle.
type CheckoutState string

const (
	CheckoutStateInitiated        CheckoutState = "initiated"
	CheckoutStateCreated          CheckoutState = "created"
	CheckoutStateAddressPatched   CheckoutState = "address_patched"
	CheckoutStateAwaitingApproval CheckoutState = "awaiting_approval"
	CheckoutStateExecuting        CheckoutState = "executing"
	CheckoutStateCompleted        CheckoutState = "completed"
	CheckoutStateFailed           CheckoutState = "failed"
)

// CheckoutResult tells the HTTP layer where to send the customer next.
type CheckoutResult struct {
	State       CheckoutState
	RedirectURL string
	PaymentID   string
	OrderNumber string
}

// CheckoutURLs are the absolute URLs used while redirecting the customer.
type CheckoutURLs struct {
	ReturnURL string
	CancelURL string
	FinishURL string
}

// ICheckoutUseCase drives the PayPal payment lifecycle:
//
//	gateway: create -> patch shipping address -> redirect to PayPal approval
//	return:  (save order + patch order number) -> execute -> (save order) -> reconcile -> finish
//
// What is persisted before or after each remote call is chosen so that a
// failure never leaves a PayPal payment without a way back to a local order.

type ICheckoutUseCase interface {
	Gateway(ctx context.Context, sessionID string, shopID string) (CheckoutResult, error)
	Return(ctx context.Context, sessionID string, shopID string, paymentID string, payerID string) (CheckoutResult, error)
	PatchAddress(ctx context.Context, sessionID string, shopID string, paymentID string) error
	Cancel() error
	SaveOrderContext(ctx context.Context, sessionID string, oc entities.OrderContext) error
}

type CheckoutUseCase struct {
	sessions     interfaces.ICheckoutSessionRepository
	payments     interfaces.IPaymentResource
	orders       IOrderDataUseCase
	instructions interfaces.IPaymentInstructionRepository
	settings     interfaces.IShopSettingsProvider
	urls         CheckoutURLs
	now          func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	sessions interfaces.ICheckoutSessionRepository,
	payments interfaces.IPaymentResource,
	orders IOrderDataUseCase,
	instructions interfaces.IPaymentInstructionRepository,
	settings interfaces.IShopSettingsProvider,
	urls CheckoutURLs,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		sessions:     sessions,
		payments:     payments,
		orders:       orders,
		instructions: instructions,
		settings:     settings,
		urls:         urls,
		now:          time.Now,
	}
}

func (u *CheckoutUseCase) Gateway(ctx context.Context, sessionID string, shopID string) (CheckoutResult, error) {
	result := CheckoutResult{State: CheckoutStateInitiated}
	log.Printf("[paypal][checkout] gateway start session_id=%s", sessionID)

	oc, err := u.loadOrderContext(ctx, sessionID)
	if err != nil {
		return u.fail(result, err)
	}
	shopID = u.resolveShopID(shopID, oc)

	raw, err := u.payments.Create(ctx, shopID, *oc, interfaces.RedirectURLs{ReturnURL: u.urls.ReturnURL, CancelURL: u.urls.CancelURL})
	if err != nil {
		return u.fail(result, fmt.Errorf("%w: create payment: %w", ErrCommunicationFailure, err))
	}
	payment, err := entities.ParsePayment(raw)
	if err != nil {
		return u.fail(result, fmt.Errorf("%w: %w", ErrCommunicationFailure, err))
	}
	if payment.Links.ApprovalURL == "" {
		return u.fail(result, fmt.Errorf("%w: %w payment_id=%s", ErrCommunicationFailure, ErrMissingApprovalURL, payment.ID))
	}
	result.PaymentID = payment.ID
	result.State = CheckoutStateCreated
	log.Printf("[paypal][checkout] payment created payment_id=%s", payment.ID)

	// The Plus integration patches the address itself through PatchAddress.
	if oc.ShippingAddress != nil {
		patches := []entities.Patch{entities.NewShippingAddressPatch(*oc.ShippingAddress)}
		if err := u.payments.Patch(ctx, shopID, payment.ID, patches); err != nil {
			return u.fail(result, fmt.Errorf("%w: patch shipping address: %w", ErrCommunicationFailure, err))
		}
		result.State = CheckoutStateAddressPatched
	}

	result.State = CheckoutStateAwaitingApproval
	result.RedirectURL = payment.Links.ApprovalURL
	log.Printf("[paypal][checkout] redirecting to approval payment_id=%s", payment.ID)
	return result, nil
}

func (u *CheckoutUseCase) Return(ctx context.Context, sessionID string, shopID string, paymentID string, payerID string) (CheckoutResult, error) {
	paymentID = strings.TrimSpace(paymentID)
	payerID = strings.TrimSpace(payerID)
	result := CheckoutResult{State: CheckoutStateAwaitingApproval, PaymentID: paymentID}
	log.Printf("[paypal][checkout] return start session_id=%s payment_id=%s", sessionID, paymentID)

	if paymentID == "" || payerID == "" {
		return u.fail(result, ErrMissingReturnArgument)
	}
	oc, err := u.loadOrderContext(ctx, sessionID)
	if err != nil {
		// A reload of the return page after success finds the session already cleared.
		if errors.Is(err, ErrNoOrderContext) {
			if order, ok := u.completedOrder(ctx, paymentID); ok {
				log.Printf("[paypal][checkout] return already completed payment_id=%s order_number=%s", paymentID, order.Number)
				result.State = CheckoutStateCompleted
				result.OrderNumber = order.Number
				result.RedirectURL = u.urls.FinishURL
				return result, nil
			}
		}
		return u.fail(result, err)
	}
	shopID = u.resolveShopID(shopID, oc)
	settings, err := u.settings.Get(shopID)
	if err != nil {
		return u.fail(result, err)
	}

	// With the order number sent to PayPal the order must exist before execute,
	// otherwise it is saved only once the payment went through.
	orderNumber := ""
	if settings.SendOrderNumber {
		orderNumber, err = u.orders.SaveOrder(ctx, *oc, sessionID, paymentID, entities.PaymentStatusOpen)
		if err != nil {
			return u.fail(result, fmt.Errorf("save order: %w", err))
		}
		result.OrderNumber = orderNumber

		if err := u.payments.Patch(ctx, shopID, paymentID, []entities.Patch{entities.NewOrderNumberPatch(orderNumber)}); err != nil {
			return u.fail(result, fmt.Errorf("%w: patch order number: %w", ErrCommunicationFailure, err))
		}
	}

	result.State = CheckoutStateExecuting
	raw, err := u.payments.Execute(ctx, shopID, payerID, paymentID)
	if err != nil {
		return u.fail(result, fmt.Errorf("%w: execute payment: %w", ErrCommunicationFailure, err))
	}
	if raw == nil {
		return u.fail(result, fmt.Errorf("%w: %w", ErrCommunicationFailure, ErrEmptyExecuteResponse))
	}
	payment, err := entities.ParsePayment(raw)
	if err != nil {
		return u.fail(result, fmt.Errorf("%w: %w", ErrCommunicationFailure, err))
	}
	// PayPal has taken the money once execute parsed: keep a local order even if the sale is missing.
	if !settings.SendOrderNumber {
		orderNumber, err = u.orders.SaveOrder(ctx, *oc, sessionID, paymentID, entities.PaymentStatusOpen)
		if err != nil {
			return u.fail(result, fmt.Errorf("save order: %w", err))
		}
		result.OrderNumber = orderNumber
	}

	sale, ok := payment.FirstSale()
	if !ok {
		return u.fail(result, fmt.Errorf("%w: %w payment_id=%s", ErrCommunicationFailure, ErrMissingSale, payment.ID))
	}

	if sale.State == entities.SaleStateCompleted {
		applied, err := u.orders.ApplyPaymentStatus(ctx, orderNumber, entities.PaymentStatusApproved)
		if err != nil {
			return u.fail(result, fmt.Errorf("apply payment status: %w", err))
		}
		if !applied {
			return u.fail(result, fmt.Errorf("%w: order_number=%s", ErrSystemOrderFailure, orderNumber))
		}
	}

	// The sale id replaces the payment id as the order's transaction id.
	applied, err := u.orders.ApplyTransactionID(ctx, orderNumber, sale.ID)
	if err != nil {
		return u.fail(result, fmt.Errorf("apply transaction id: %w", err))
	}
	if !applied {
		return u.fail(result, fmt.Errorf("%w: order_number=%s", ErrSystemOrderFailure, orderNumber))
	}

	if payment.PaymentInstruction != nil {
		record := entities.NewPaymentInstructionRecord(orderNumber, *payment.PaymentInstruction, u.now().UTC())
		if err := u.instructions.Create(ctx, record); err != nil {
			return u.fail(result, fmt.Errorf("create payment instructions: %w", err))
		}
	}

	u.orders.ApplyPaymentTypeAttribute(ctx, orderNumber, payment)

	if err := u.sessions.Delete(ctx, sessionID); err != nil {
		log.Printf("[paypal][checkout] session cleanup failed session_id=%s err=%v", sessionID, err)
	}

	result.State = CheckoutStateCompleted
	result.RedirectURL = u.urls.FinishURL
	log.Printf("[paypal][checkout] return success payment_id=%s order_number=%s sale_id=%s sale_state=%s", paymentID, orderNumber, sale.ID, sale.State)
	return result, nil
}

func (u *CheckoutUseCase) PatchAddress(ctx context.Context, sessionID string, shopID string, paymentID string) error {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return ErrMissingReturnArgument
	}
	oc, err := u.loadOrderContext(ctx, sessionID)
	if err != nil {
		return err
	}
	if oc.ShippingAddress == nil {
		log.Printf("[paypal][checkout] no shipping address to patch payment_id=%s", paymentID)
		return nil
	}
	shopID = u.resolveShopID(shopID, oc)

	patches := []entities.Patch{entities.NewShippingAddressPatch(*oc.ShippingAddress)}
	if err := u.payments.Patch(ctx, shopID, paymentID, patches); err != nil {
		return fmt.Errorf("%w: patch shipping address: %w", ErrCommunicationFailure, err)
	}
	log.Printf("[paypal][checkout] shipping address patched payment_id=%s", paymentID)
	return nil
}

func (u *CheckoutUseCase) Cancel() error {
	log.Printf("[paypal][checkout] payment canceled by customer")
	return ErrPaymentCanceled
}

// SaveOrderContext stores the basket the storefront wants to pay with PayPal.
func (u *CheckoutUseCase) SaveOrderContext(ctx context.Context, sessionID string, oc entities.OrderContext) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrNoOrderContext
	}
	if err := oc.Validate(); err != nil {
		return err
	}
	return u.sessions.Save(ctx, sessionID, oc)
}

func (u *CheckoutUseCase) loadOrderContext(ctx context.Context, sessionID string) (*entities.OrderContext, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrNoOrderContext
	}
	oc, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load order context: %w", err)
	}
	if oc == nil {
		return nil, ErrNoOrderContext
	}
	if err := oc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoOrderContext, err)
	}
	return oc, nil
}

// completedOrder reports the order of a payment whose return already went
// through: the sale id replaced the payment id, or the status moved on from open.
func (u *CheckoutUseCase) completedOrder(ctx context.Context, paymentID string) (entities.Order, bool) {
	order, err := u.orders.GetOrderByTemporaryID(ctx, paymentID)
	if err != nil {
		log.Printf("[paypal][checkout] completed order lookup failed payment_id=%s err=%v", paymentID, err)
		return entities.Order{}, false
	}
	if order.Number == "" {
		return entities.Order{}, false
	}
	if order.PaymentStatus != entities.PaymentStatusOpen || order.TransactionID != order.TemporaryID {
		return order, true
	}
	return entities.Order{}, false
}

func (u *CheckoutUseCase) resolveShopID(shopID string, oc *entities.OrderContext) string {
	if v := strings.TrimSpace(shopID); v != "" {
		return v
	}
	if oc != nil && strings.TrimSpace(oc.ShopID) != "" {
		return strings.TrimSpace(oc.ShopID)
	}
	return u.settings.DefaultShopID()
}

func (u *CheckoutUseCase) fail(result CheckoutResult, err error) (CheckoutResult, error) {
	log.Printf("[paypal][checkout] failed state=%s payment_id=%s code=%d err=%v", result.State, result.PaymentID, ClassifyCheckoutError(err), err)
	LogProviderError(err)
	result.State = CheckoutStateFailed
	result.RedirectURL = ""
	return result, err
}
