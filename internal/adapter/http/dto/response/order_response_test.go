package response

import (
	"testing"
	"time"

	"paypal_unified/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:            "id-1",
		Number:        "20001",
		TemporaryID:   "PAY-1",
		TransactionID: "SALE-1",
		PaymentStatus: entities.PaymentStatusRefunded,
		Currency:      "EUR",
		Total:         decimal.RequireFromString("22.9"),
		Attributes:    map[string]string{entities.OrderAttributePaymentType: entities.PaymentTypePlusInvoice},
		CreatedAt:     now,
	}

	res := FromOrder(o)
	if res.OrderNumber != "20001" || res.PaymentStatus != "refunded" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Total != "22.90" {
		t.Fatalf("unexpected total: %s", res.Total)
	}
	if res.PaymentType != entities.PaymentTypePlusInvoice {
		t.Fatalf("unexpected payment type: %s", res.PaymentType)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %s", res.CreatedAt)
	}
}

func TestFromOrder_WithoutAttributes(t *testing.T) {
	res := FromOrder(entities.Order{Number: "1"})
	if res.PaymentType != "" {
		t.Fatalf("expected empty payment type, got %q", res.PaymentType)
	}
}

func TestFromPaymentInstruction(t *testing.T) {
	res := FromPaymentInstruction(entities.PaymentInstructionRecord{OrderNumber: "20001", IBAN: "DE89", BIC: "DEUTDEFF", DueDate: "2026-11-15"})
	if res.IBAN != "DE89" || res.BIC != "DEUTDEFF" || res.DueDate != "2026-11-15" {
		t.Fatalf("unexpected fields: %+v", res)
	}
}
