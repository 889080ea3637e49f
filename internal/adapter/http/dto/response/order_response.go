package response

import (
	"paypal_unified/internal/domain/entities"
	"time"
)

type OrderResponse struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"order_number"`
	ShopID        string    `json:"shop_id"`
	TemporaryID   string    `json:"temporary_id"`
	TransactionID string    `json:"transaction_id"`
	PaymentStatus string    `json:"payment_status"`
	PaymentType   string    `json:"payment_type,omitempty"`
	Currency      string    `json:"currency"`
	Total         string    `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.Number,
		ShopID:        o.ShopID,
		TemporaryID:   o.TemporaryID,
		TransactionID: o.TransactionID,
		PaymentStatus: string(o.PaymentStatus),
		PaymentType:   o.Attributes[entities.OrderAttributePaymentType],
		Currency:      o.Currency,
		Total:         o.Total.StringFixed(2),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

type PaymentInstructionResponse struct {
	OrderNumber       string `json:"order_number"`
	ReferenceNumber   string `json:"reference_number"`
	Type              string `json:"instruction_type"`
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
	DueDate           string `json:"payment_due_date"`
	BankName          string `json:"bank_name"`
	AccountHolderName string `json:"account_holder_name"`
	IBAN              string `json:"iban"`
	BIC               string `json:"bic"`
}

func FromPaymentInstruction(r entities.PaymentInstructionRecord) PaymentInstructionResponse {
	return PaymentInstructionResponse{
		OrderNumber:       r.OrderNumber,
		ReferenceNumber:   r.ReferenceNumber,
		Type:              r.Type,
		Amount:            r.Amount,
		Currency:          r.Currency,
		DueDate:           r.DueDate,
		BankName:          r.BankName,
		AccountHolderName: r.AccountHolderName,
		IBAN:              r.IBAN,
		BIC:               r.BIC,
	}
}

// WebhookResponse is returned to PayPal for every accepted delivery.
type WebhookResponse struct {
	Status string `json:"status"`
}
