package usecase

import (
	"context"
	"errors"
	"testing"

	"paypal_unified/internal/domain/entities"
	mock_interfaces "paypal_unified/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentInstructionUseCase_GetByOrderNumber(t *testing.T) {
	t.Run("invalid order number", func(t *testing.T) {
		uc := NewPaymentInstructionUseCase(nil)
		if _, err := uc.GetByOrderNumber(context.Background(), ""); !errors.Is(err, ErrInvalidOrderNumber) {
			t.Fatalf("expected ErrInvalidOrderNumber, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentInstructionRepository(ctrl)
		uc := NewPaymentInstructionUseCase(repo)

		repo.EXPECT().GetByOrderNumber(gomock.Any(), "20001").Return(entities.PaymentInstructionRecord{}, nil)

		if _, err := uc.GetByOrderNumber(context.Background(), "20001"); !errors.Is(err, ErrPaymentInstructionNotFound) {
			t.Fatalf("expected ErrPaymentInstructionNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentInstructionRepository(ctrl)
		uc := NewPaymentInstructionUseCase(repo)

		repo.EXPECT().GetByOrderNumber(gomock.Any(), "20001").Return(entities.PaymentInstructionRecord{OrderNumber: "20001", ReferenceNumber: "REF-1"}, nil)

		r, err := uc.GetByOrderNumber(context.Background(), " 20001 ")
		if err != nil || r.ReferenceNumber != "REF-1" {
			t.Fatalf("unexpected result: %+v err=%v", r, err)
		}
	})
}
