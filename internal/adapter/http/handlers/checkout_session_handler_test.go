package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"paypal_unified/internal/adapter/http/handlers/mocks"
	"paypal_unified/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const validOrderContextJSON = `{
	"shop_id": "1",
	"currency": "eur",
	"items": [{"name": "Shirt", "sku": "SW-1", "quantity": 2, "price": 10.00}],
	"shipping": 3.90,
	"total": 23.90,
	"customer": {"email": "jane@example.com", "first_name": "Jane", "last_name": "Doe"},
	"shipping_address": {"street": "Main 1", "city": "Berlin", "zipcode": "10115", "country_code": "de"}
}`

func newCheckoutSessionRouter(t *testing.T) (*gin.Engine, *mocks.MockICheckoutUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	h := NewCheckoutSessionHandler(uc, "session")

	r := gin.New()
	r.PUT("/v1/checkout-sessions/:session_id", h.PutOrderContext)
	return r, uc
}

func TestCheckoutSessionHandler_PutOrderContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newCheckoutSessionRouter(t)
		req := httptest.NewRequest(http.MethodPut, "/v1/checkout-sessions/sess-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no items", func(t *testing.T) {
		r, _ := newCheckoutSessionRouter(t)
		req := httptest.NewRequest(http.MethodPut, "/v1/checkout-sessions/sess-1", bytes.NewBufferString(`{"currency":"EUR","items":[],"total":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejected by usecase", func(t *testing.T) {
		r, uc := newCheckoutSessionRouter(t)
		uc.EXPECT().SaveOrderContext(gomock.Any(), "sess-1", gomock.Any()).Return(entities.ErrInvalidOrderContext)

		req := httptest.NewRequest(http.MethodPut, "/v1/checkout-sessions/sess-1", bytes.NewBufferString(validOrderContextJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		r, uc := newCheckoutSessionRouter(t)
		uc.EXPECT().SaveOrderContext(gomock.Any(), "sess-1", gomock.Any()).Return(errors.New("dynamodb down"))

		req := httptest.NewRequest(http.MethodPut, "/v1/checkout-sessions/sess-1", bytes.NewBufferString(validOrderContextJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success sets session cookie", func(t *testing.T) {
		r, uc := newCheckoutSessionRouter(t)
		uc.EXPECT().SaveOrderContext(gomock.Any(), "sess-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, oc entities.OrderContext) error {
				if oc.Currency != "EUR" {
					t.Fatalf("expected EUR, got %q", oc.Currency)
				}
				if !oc.Total.Equal(decimal.RequireFromString("23.90")) {
					t.Fatalf("unexpected total %s", oc.Total)
				}
				if oc.ShippingAddress == nil || oc.ShippingAddress.CountryCode != "DE" {
					t.Fatalf("unexpected shipping address %+v", oc.ShippingAddress)
				}
				return nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/checkout-sessions/sess-1", bytes.NewBufferString(validOrderContextJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if cookie := w.Header().Get("Set-Cookie"); !strings.HasPrefix(cookie, "session=sess-1") {
			t.Fatalf("unexpected cookie %q", cookie)
		}
	})
}
