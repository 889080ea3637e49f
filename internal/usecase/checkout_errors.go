package usecase

import (
	"errors"
	"log"
	"paypal_unified/internal/domain/entities"
)

// ErrorCode is the code the storefront uses to pick the message shown after a
// failed PayPal checkout.
type ErrorCode int

const (
	ErrorCodeNoOrder              ErrorCode = 0
	ErrorCodeCanceled             ErrorCode = 1
	ErrorCodeCommunicationFailure ErrorCode = 2
	ErrorCodeSystemOrderFailure   ErrorCode = 3
	ErrorCodeUnknown              ErrorCode = 4
)

var (
	ErrNoOrderContext        = errors.New("no order to process")
	ErrPaymentCanceled       = errors.New("payment canceled by the customer")
	ErrCommunicationFailure  = errors.New("communication failure")
	ErrSystemOrderFailure    = errors.New("system order failure")
	ErrEmptyExecuteResponse  = errors.New("execute returned no payment")
	ErrMissingApprovalURL    = errors.New("payment has no approval url")
	ErrMissingSale           = errors.New("payment has no sale")
	ErrMissingReturnArgument = errors.New("missing paymentId or PayerID")
)

// ClassifyCheckoutError maps any checkout failure to one of the fixed error codes.
func ClassifyCheckoutError(err error) ErrorCode {
	var reqErr *entities.ProviderRequestError
	var parseErr *entities.ParseError

	switch {
	case err == nil:
		return ErrorCodeUnknown
	case errors.Is(err, ErrNoOrderContext), errors.Is(err, ErrMissingReturnArgument):
		return ErrorCodeNoOrder
	case errors.Is(err, ErrPaymentCanceled):
		return ErrorCodeCanceled
	case errors.Is(err, ErrCommunicationFailure),
		errors.As(err, &reqErr),
		errors.As(err, &parseErr):
		return ErrorCodeCommunicationFailure
	case errors.Is(err, ErrSystemOrderFailure):
		return ErrorCodeSystemOrderFailure
	default:
		return ErrorCodeUnknown
	}
}

// NormalizeErrorCode clamps a code received over HTTP to the known range.
func NormalizeErrorCode(code int) ErrorCode {
	if code < int(ErrorCodeNoOrder) || code > int(ErrorCodeUnknown) {
		return ErrorCodeUnknown
	}
	return ErrorCode(code)
}

// LogProviderError logs the PayPal error body carried by err, if any.
func LogProviderError(err error) {
	var reqErr *entities.ProviderRequestError
	if !errors.As(err, &reqErr) {
		return
	}
	resp := entities.ParseErrorResponse(reqErr.Body)
	if resp == nil {
		log.Printf("[paypal][checkout] request failed status=%d err=%v", reqErr.StatusCode, reqErr.Err)
		return
	}
	log.Printf("[paypal][checkout] received an error status=%d name=%s message=%q debug_id=%s details=%q",
		reqErr.StatusCode, resp.Name, resp.Message, resp.DebugID, resp.DetailsString())
}
