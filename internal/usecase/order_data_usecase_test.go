package usecase

import (
	"context"
	"errors"
	"testing"

	"paypal_unified/internal/domain/entities"
	mock_interfaces "paypal_unified/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderDataUseCase_SaveOrder(t *testing.T) {
	oc := *testOrderContext(false)

	t.Run("reuses order of the same payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderDataUseCase(repo, mock_interfaces.NewMockIOrderNumberGenerator(ctrl))

		repo.EXPECT().GetByTemporaryID(gomock.Any(), "PAY-1").Return(entities.Order{Number: "20010"}, nil)

		n, err := uc.SaveOrder(context.Background(), oc, "sess-1", "PAY-1", entities.PaymentStatusOpen)
		if err != nil || n != "20010" {
			t.Fatalf("expected existing order, got %q err=%v", n, err)
		}
	})

	t.Run("number generation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		numbers := mock_interfaces.NewMockIOrderNumberGenerator(ctrl)
		uc := NewOrderDataUseCase(repo, numbers)

		repo.EXPECT().GetByTemporaryID(gomock.Any(), "PAY-1").Return(entities.Order{}, nil)
		numbers.EXPECT().Next(gomock.Any()).Return("", errors.New("ddb"))

		if _, err := uc.SaveOrder(context.Background(), oc, "sess-1", "PAY-1", entities.PaymentStatusOpen); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("creates order with snapshot of basket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		numbers := mock_interfaces.NewMockIOrderNumberGenerator(ctrl)
		uc := NewOrderDataUseCase(repo, numbers)

		repo.EXPECT().GetByTemporaryID(gomock.Any(), "PAY-1").Return(entities.Order{}, nil)
		numbers.EXPECT().Next(gomock.Any()).Return("20011", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.ShopID != "1" || o.Currency != "EUR" || !o.Total.Equal(oc.Total) {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.CreatedAt.IsZero() || o.Attributes == nil {
					t.Fatalf("expected timestamps and attributes")
				}
				return o, nil
			},
		)

		n, err := uc.SaveOrder(context.Background(), oc, "sess-1", "PAY-1", entities.PaymentStatusOpen)
		if err != nil || n != "20011" {
			t.Fatalf("unexpected result %q err=%v", n, err)
		}
	})
}

func TestOrderDataUseCase_ApplyPaymentStatus(t *testing.T) {
	cases := []struct {
		name    string
		current entities.PaymentStatus
		next    entities.PaymentStatus
		write   bool
	}{
		{name: "open to approved", current: entities.PaymentStatusOpen, next: entities.PaymentStatusApproved, write: true},
		{name: "approved to refunded", current: entities.PaymentStatusApproved, next: entities.PaymentStatusRefunded, write: true},
		{name: "same status is idempotent", current: entities.PaymentStatusRefunded, next: entities.PaymentStatusRefunded},
		{name: "refunded never goes back to approved", current: entities.PaymentStatusRefunded, next: entities.PaymentStatusApproved},
		{name: "denied never becomes approved", current: entities.PaymentStatusDenied, next: entities.PaymentStatusApproved},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIOrderRepository(ctrl)
			uc := NewOrderDataUseCase(repo, nil)

			repo.EXPECT().GetByNumber(gomock.Any(), "20020").Return(entities.Order{Number: "20020", PaymentStatus: tc.current}, nil)
			if tc.write {
				repo.EXPECT().UpdatePaymentStatus(gomock.Any(), "20020", tc.next).Return(entities.Order{Number: "20020", PaymentStatus: tc.next}, nil)
			}

			ok, err := uc.ApplyPaymentStatus(context.Background(), "20020", tc.next)
			if err != nil || !ok {
				t.Fatalf("expected applied, got ok=%v err=%v", ok, err)
			}
		})
	}

	t.Run("empty order number", func(t *testing.T) {
		uc := NewOrderDataUseCase(nil, nil)
		if _, err := uc.ApplyPaymentStatus(context.Background(), " ", entities.PaymentStatusApproved); !errors.Is(err, ErrInvalidOrderNumber) {
			t.Fatalf("expected ErrInvalidOrderNumber, got %v", err)
		}
	})

	t.Run("unknown temporary id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderDataUseCase(repo, nil)

		repo.EXPECT().GetByTemporaryID(gomock.Any(), "PAY-404").Return(entities.Order{}, nil)

		ok, err := uc.ApplyPaymentStatusByTemporaryID(context.Background(), "PAY-404", entities.PaymentStatusRefunded)
		if err != nil || ok {
			t.Fatalf("expected not found, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("empty temporary id", func(t *testing.T) {
		uc := NewOrderDataUseCase(nil, nil)
		ok, err := uc.ApplyPaymentStatusByTemporaryID(context.Background(), "", entities.PaymentStatusRefunded)
		if err != nil || ok {
			t.Fatalf("expected not found, got ok=%v err=%v", ok, err)
		}
	})
}

func TestOrderDataUseCase_GetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderDataUseCase(repo, nil)

	repo.EXPECT().GetByNumber(gomock.Any(), "404").Return(entities.Order{}, nil)
	if _, err := uc.GetOrder(context.Background(), "404"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	repo.EXPECT().GetByNumber(gomock.Any(), "20030").Return(entities.Order{Number: "20030"}, nil)
	o, err := uc.GetOrder(context.Background(), "20030")
	if err != nil || o.Number != "20030" {
		t.Fatalf("unexpected result: %+v err=%v", o, err)
	}
}

func TestOrderDataUseCase_GetOrderByTemporaryID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderDataUseCase(repo, nil)

	o, err := uc.GetOrderByTemporaryID(context.Background(), " ")
	if err != nil || o.Number != "" {
		t.Fatalf("expected zero order without lookup, got %+v err=%v", o, err)
	}

	repo.EXPECT().GetByTemporaryID(gomock.Any(), "PAY-1").Return(entities.Order{Number: "20031", TemporaryID: "PAY-1"}, nil)
	o, err = uc.GetOrderByTemporaryID(context.Background(), "PAY-1")
	if err != nil || o.Number != "20031" {
		t.Fatalf("unexpected result: %+v err=%v", o, err)
	}
}

func TestOrderDataUseCase_ApplyPaymentTypeAttribute(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderDataUseCase(repo, nil)

	repo.EXPECT().SetAttribute(gomock.Any(), "20040", entities.OrderAttributePaymentType, entities.PaymentTypeClassic).Return(entities.Order{}, errors.New("ddb"))

	// Failures are swallowed.
	uc.ApplyPaymentTypeAttribute(context.Background(), "20040", entities.Payment{ID: "PAY-1"})
}
