package usecase

import (
	"context"
	"errors"
	"testing"

	"paypal_unified/internal/domain/entities"
	mock_interfaces "paypal_unified/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const refundWebhookJSON = `{"id":"WH-1","create_time":"2026-10-01T10:00:00Z","resource_type":"sale","event_type":"PAYMENT.SALE.REFUNDED","summary":"A sale was refunded","resource":{"id":"REFUND-1","parent_payment":"PAY-1","state":"completed"}}`

type stubHandler struct {
	event  string
	result bool
	calls  int
}

func (h *stubHandler) EventType() string { return h.event }

func (h *stubHandler) Invoke(_ context.Context, _ entities.Webhook) bool {
	h.calls++
	return h.result
}

func TestSaleStatusHandler_Invoke(t *testing.T) {
	webhook, err := entities.ParseWebhook([]byte(refundWebhookJSON))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	t.Run("refund is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		h := NewSaleRefundedHandler(NewOrderDataUseCase(repo, nil))

		gomock.InOrder(
			repo.EXPECT().GetByTemporaryID(gomock.Any(), "PAY-1").Return(entities.Order{Number: "20050", PaymentStatus: entities.PaymentStatusApproved}, nil),
			repo.EXPECT().UpdatePaymentStatus(gomock.Any(), "20050", entities.PaymentStatusRefunded).Return(entities.Order{Number: "20050", PaymentStatus: entities.PaymentStatusRefunded}, nil),
			repo.EXPECT().GetByTemporaryID(gomock.Any(), "PAY-1").Return(entities.Order{Number: "20050", PaymentStatus: entities.PaymentStatusRefunded}, nil),
		)

		if !h.Invoke(context.Background(), webhook) {
			t.Fatalf("expected first delivery to succeed")
		}
		if !h.Invoke(context.Background(), webhook) {
			t.Fatalf("expected second delivery to succeed")
		}
	})

	t.Run("unknown payment returns false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		h := NewSaleRefundedHandler(NewOrderDataUseCase(repo, nil))

		repo.EXPECT().GetByTemporaryID(gomock.Any(), "PAY-1").Return(entities.Order{}, nil)

		if h.Invoke(context.Background(), webhook) {
			t.Fatalf("expected false for unknown order")
		}
	})

	t.Run("repository error returns false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		h := NewSaleRefundedHandler(NewOrderDataUseCase(repo, nil))

		repo.EXPECT().GetByTemporaryID(gomock.Any(), "PAY-1").Return(entities.Order{}, errors.New("ddb"))

		if h.Invoke(context.Background(), webhook) {
			t.Fatalf("expected false on error")
		}
	})

	t.Run("panic is recovered", func(t *testing.T) {
		h := NewSaleRefundedHandler(nil)
		if h.Invoke(context.Background(), webhook) {
			t.Fatalf("expected false on panic")
		}
	})

	t.Run("event types", func(t *testing.T) {
		if NewSaleCompletedHandler(nil).EventType() != entities.WebhookEventSaleCompleted ||
			NewSaleDeniedHandler(nil).EventType() != entities.WebhookEventSaleDenied ||
			NewSaleRefundedHandler(nil).EventType() != entities.WebhookEventSaleRefunded {
			t.Fatalf("unexpected event type binding")
		}
	})
}

func TestWebhookUseCase_Dispatch(t *testing.T) {
	t.Run("unregistered event type", func(t *testing.T) {
		uc := NewWebhookUseCase(nil, nil, nil)
		_, err := uc.Dispatch(context.Background(), entities.Webhook{ID: "WH-1", EventType: "PAYMENT.CAPTURE.COMPLETED"})
		if !errors.Is(err, ErrWebhookHandlerNotFound) {
			t.Fatalf("expected ErrWebhookHandlerNotFound, got %v", err)
		}
	})

	t.Run("latest registration wins", func(t *testing.T) {
		first := &stubHandler{event: entities.WebhookEventSaleRefunded, result: false}
		second := &stubHandler{event: entities.WebhookEventSaleRefunded, result: true}
		uc := NewWebhookUseCase(nil, nil, nil, first)
		uc.Register(second)

		ok, err := uc.Dispatch(context.Background(), entities.Webhook{EventType: entities.WebhookEventSaleRefunded})
		if err != nil || !ok {
			t.Fatalf("unexpected result ok=%v err=%v", ok, err)
		}
		if first.calls != 0 || second.calls != 1 {
			t.Fatalf("unexpected calls first=%d second=%d", first.calls, second.calls)
		}
	})
}

func TestWebhookUseCase_Receive(t *testing.T) {
	headers := map[string]string{"Paypal-Transmission-Id": "T-1"}

	t.Run("malformed body", func(t *testing.T) {
		uc := NewWebhookUseCase(nil, nil, nil)
		if _, err := uc.Receive(context.Background(), "1", headers, []byte(`{}`)); !errors.Is(err, entities.ErrMalformedWebhook) {
			t.Fatalf("expected ErrMalformedWebhook, got %v", err)
		}
	})

	t.Run("rejected signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		verifier := mock_interfaces.NewMockIWebhookVerifier(ctrl)
		h := &stubHandler{event: entities.WebhookEventSaleRefunded, result: true}
		uc := NewWebhookUseCase(verifier, nil, nil, h)

		verifier.EXPECT().Verify(gomock.Any(), "1", headers, []byte(refundWebhookJSON)).Return(false, nil)

		if _, err := uc.Receive(context.Background(), "1", headers, []byte(refundWebhookJSON)); !errors.Is(err, ErrWebhookSignature) {
			t.Fatalf("expected ErrWebhookSignature, got %v", err)
		}
		if h.calls != 0 {
			t.Fatalf("handler must not run")
		}
	})

	t.Run("duplicate delivery is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		events := mock_interfaces.NewMockIWebhookEventRepository(ctrl)
		h := &stubHandler{event: entities.WebhookEventSaleRefunded, result: true}
		uc := NewWebhookUseCase(nil, events, nil, h)

		events.EXPECT().IsProcessed(gomock.Any(), "WH-1").Return(true, nil)

		ok, err := uc.Receive(context.Background(), "1", headers, []byte(refundWebhookJSON))
		if err != nil || !ok || h.calls != 0 {
			t.Fatalf("unexpected result ok=%v err=%v calls=%d", ok, err, h.calls)
		}
	})

	t.Run("archives dispatches and marks processed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		verifier := mock_interfaces.NewMockIWebhookVerifier(ctrl)
		events := mock_interfaces.NewMockIWebhookEventRepository(ctrl)
		archive := mock_interfaces.NewMockIWebhookArchive(ctrl)
		h := &stubHandler{event: entities.WebhookEventSaleRefunded, result: true}
		uc := NewWebhookUseCase(verifier, events, archive, h)

		gomock.InOrder(
			verifier.EXPECT().Verify(gomock.Any(), "1", headers, gomock.Any()).Return(true, nil),
			events.EXPECT().IsProcessed(gomock.Any(), "WH-1").Return(false, nil),
			archive.EXPECT().Archive(gomock.Any(), gomock.Any(), []byte(refundWebhookJSON)).Return(errors.New("s3")),
			events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any()).Return(nil),
		)

		ok, err := uc.Receive(context.Background(), "1", headers, []byte(refundWebhookJSON))
		if err != nil || !ok || h.calls != 1 {
			t.Fatalf("unexpected result ok=%v err=%v calls=%d", ok, err, h.calls)
		}
	})

	t.Run("failed handler is not marked processed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		events := mock_interfaces.NewMockIWebhookEventRepository(ctrl)
		h := &stubHandler{event: entities.WebhookEventSaleRefunded, result: false}
		uc := NewWebhookUseCase(nil, events, nil, h)

		events.EXPECT().IsProcessed(gomock.Any(), "WH-1").Return(false, nil)

		ok, err := uc.Receive(context.Background(), "1", headers, []byte(refundWebhookJSON))
		if err != nil || ok {
			t.Fatalf("unexpected result ok=%v err=%v", ok, err)
		}
	})
}
