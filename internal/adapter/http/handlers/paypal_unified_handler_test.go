package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"paypal_unified/internal/adapter/http/handlers/mocks"
	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

const testStorefront = "https://shop.test"

func newPayPalRouter(t *testing.T) (*gin.Engine, *mocks.MockICheckoutUseCase, *mocks.MockIWebhookUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	checkout := mocks.NewMockICheckoutUseCase(ctrl)
	webhooks := mocks.NewMockIWebhookUseCase(ctrl)
	h := NewPayPalUnifiedHandler(checkout, webhooks, "session", testStorefront+"/")

	r := gin.New()
	r.GET("/v1/paypal-unified", h.Index)
	r.GET("/v1/paypal-unified/gateway", h.Gateway)
	r.GET("/v1/paypal-unified/return", h.Return)
	r.GET("/v1/paypal-unified/cancel", h.Cancel)
	r.GET("/v1/paypal-unified/error", h.Error)
	r.POST("/v1/paypal-unified/patch-address", h.PatchAddress)
	r.POST("/v1/paypal-unified/webhook", h.Webhook)
	return r, checkout, webhooks
}

func TestPayPalUnifiedHandler_Gateway(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("redirects to approval url", func(t *testing.T) {
		r, checkout, _ := newPayPalRouter(t)
		checkout.EXPECT().Gateway(gomock.Any(), "sess-1", "2").Return(usecase.CheckoutResult{
			State:       usecase.CheckoutStateAwaitingApproval,
			RedirectURL: "https://www.sandbox.paypal.com/approve?token=EC-1",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/paypal-unified/gateway?shopId=2", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "sess-1"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "https://www.sandbox.paypal.com/approve?token=EC-1" {
			t.Fatalf("unexpected location %q", loc)
		}
	})

	t.Run("index behaves like gateway and prefers shop header", func(t *testing.T) {
		r, checkout, _ := newPayPalRouter(t)
		checkout.EXPECT().Gateway(gomock.Any(), "", "7").Return(usecase.CheckoutResult{}, usecase.ErrNoOrderContext)

		req := httptest.NewRequest(http.MethodGet, "/v1/paypal-unified?shopId=2", nil)
		req.Header.Set("X-Shop-Id", "7")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/v1/paypal-unified/error?code=0" {
			t.Fatalf("unexpected location %q", loc)
		}
	})

	t.Run("communication failure", func(t *testing.T) {
		r, checkout, _ := newPayPalRouter(t)
		checkout.EXPECT().Gateway(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.CheckoutResult{}, fmt.Errorf("%w: create payment: boom", usecase.ErrCommunicationFailure))

		req := httptest.NewRequest(http.MethodGet, "/v1/paypal-unified/gateway", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if loc := w.Header().Get("Location"); loc != "/v1/paypal-unified/error?code=2" {
			t.Fatalf("unexpected location %q", loc)
		}
	})
}

func TestPayPalUnifiedHandler_Return(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success redirects to finish", func(t *testing.T) {
		r, checkout, _ := newPayPalRouter(t)
		checkout.EXPECT().Return(gomock.Any(), "sess-1", "", "PAY-1", "PAYER-1").Return(usecase.CheckoutResult{
			State:       usecase.CheckoutStateCompleted,
			RedirectURL: testStorefront + "/checkout/finish?sUniqueID=PAY-1",
			OrderNumber: "20001",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/paypal-unified/return?paymentId=PAY-1&PayerID=PAYER-1", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "sess-1"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != testStorefront+"/checkout/finish?sUniqueID=PAY-1" {
			t.Fatalf("unexpected location %q", loc)
		}
	})

	t.Run("system order failure", func(t *testing.T) {
		r, checkout, _ := newPayPalRouter(t)
		checkout.EXPECT().Return(gomock.Any(), gomock.Any(), gomock.Any(), "PAY-1", "PAYER-1").
			Return(usecase.CheckoutResult{}, usecase.ErrSystemOrderFailure)

		req := httptest.NewRequest(http.MethodGet, "/v1/paypal-unified/return?paymentId=PAY-1&PayerID=PAYER-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if loc := w.Header().Get("Location"); loc != "/v1/paypal-unified/error?code=3" {
			t.Fatalf("unexpected location %q", loc)
		}
	})
}

func TestPayPalUnifiedHandler_Cancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, checkout, _ := newPayPalRouter(t)
	checkout.EXPECT().Cancel().Return(usecase.ErrPaymentCanceled)

	req := httptest.NewRequest(http.MethodGet, "/v1/paypal-unified/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/v1/paypal-unified/error?code=1" {
		t.Fatalf("unexpected location %q", loc)
	}
}

func TestPayPalUnifiedHandler_Error(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name  string
		query string
		want  string
	}{
		{name: "known code", query: "?code=2", want: "2"},
		{name: "zero", query: "?code=0", want: "0"},
		{name: "out of range", query: "?code=17", want: "4"},
		{name: "negative", query: "?code=-1", want: "4"},
		{name: "not a number", query: "?code=abc", want: "4"},
		{name: "missing", query: "", want: "4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _, _ := newPayPalRouter(t)
			req := httptest.NewRequest(http.MethodGet, "/v1/paypal-unified/error"+tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusFound {
				t.Fatalf("expected 302, got %d", w.Code)
			}
			want := testStorefront + "/checkout/shippingPayment?paypal_unified_error_code=" + tc.want
			if loc := w.Header().Get("Location"); loc != want {
				t.Fatalf("expected %q, got %q", want, loc)
			}
		})
	}
}

func TestPayPalUnifiedHandler_PatchAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		r, checkout, _ := newPayPalRouter(t)
		checkout.EXPECT().PatchAddress(gomock.Any(), "sess-1", "", "PAY-1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/paypal-unified/patch-address?paymentId=PAY-1", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "sess-1"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing payment id", func(t *testing.T) {
		r, checkout, _ := newPayPalRouter(t)
		checkout.EXPECT().PatchAddress(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(usecase.ErrMissingReturnArgument)

		req := httptest.NewRequest(http.MethodPost, "/v1/paypal-unified/patch-address", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		r, checkout, _ := newPayPalRouter(t)
		checkout.EXPECT().PatchAddress(gomock.Any(), gomock.Any(), gomock.Any(), "PAY-1").
			Return(fmt.Errorf("%w: patch shipping address: x", usecase.ErrCommunicationFailure))

		req := httptest.NewRequest(http.MethodPost, "/v1/paypal-unified/patch-address?paymentId=PAY-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["code"] != "PAYMENT_PROVIDER_ERROR" {
			t.Fatalf("unexpected code %q", body["code"])
		}
	})
}

func TestPayPalUnifiedHandler_Webhook(t *testing.T) {
	gin.SetMode(gin.TestMode)
	payload := `{"id":"WH-1","event_type":"PAYMENT.SALE.REFUNDED"}`

	cases := []struct {
		name    string
		handled bool
		err     error
		status  int
	}{
		{name: "processed", handled: true, status: http.StatusOK},
		{name: "handler failed", handled: false, status: http.StatusInternalServerError},
		{name: "unregistered event type", err: fmt.Errorf("%w: X", usecase.ErrWebhookHandlerNotFound), status: http.StatusOK},
		{name: "malformed", err: fmt.Errorf("%w: bad json", entities.ErrMalformedWebhook), status: http.StatusBadRequest},
		{name: "bad signature", err: usecase.ErrWebhookSignature, status: http.StatusUnauthorized},
		{name: "storage error", err: errors.New("dynamodb down"), status: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _, webhooks := newPayPalRouter(t)
			webhooks.EXPECT().Receive(gomock.Any(), "1", gomock.Any(), []byte(payload)).
				DoAndReturn(func(_ context.Context, _ string, headers map[string]string, _ []byte) (bool, error) {
					if headers["Paypal-Transmission-Id"] != "tx-1" {
						t.Fatalf("transmission header not forwarded: %v", headers)
					}
					return tc.handled, tc.err
				})

			req := httptest.NewRequest(http.MethodPost, "/v1/paypal-unified/webhook?shopId=1", bytes.NewBufferString(payload))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("PAYPAL-TRANSMISSION-ID", "tx-1")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}

	t.Run("unreadable body", func(t *testing.T) {
		r, _, _ := newPayPalRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/paypal-unified/webhook", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
