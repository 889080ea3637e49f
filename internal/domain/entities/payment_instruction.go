package entities

import "time"

// PaymentInstructionRecord is a pay-upon-invoice instruction stored for an order
// so the storefront can print the bank details on the invoice.
//
// Storage model (DynamoDB):
//   - PK: order_number

type PaymentInstructionRecord struct {
	OrderNumber       string    `json:"order_number"`
	ReferenceNumber   string    `json:"reference_number"`
	Type              string    `json:"type"`
	Amount            string    `json:"amount"`
	Currency          string    `json:"currency"`
	DueDate           string    `json:"due_date"`
	BankName          string    `json:"bank_name"`
	AccountHolderName string    `json:"account_holder_name"`
	IBAN              string    `json:"iban"`
	BIC               string    `json:"bic"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewPaymentInstructionRecord flattens a provider instruction for persistence.
func NewPaymentInstructionRecord(orderNumber string, pi PaymentInstruction, now time.Time) PaymentInstructionRecord {
	return PaymentInstructionRecord{
		OrderNumber:       orderNumber,
		ReferenceNumber:   pi.ReferenceNumber,
		Type:              pi.Type,
		Amount:            pi.Amount.Value,
		Currency:          pi.Amount.Currency,
		DueDate:           pi.DueDate,
		BankName:          pi.RecipientBanking.BankName,
		AccountHolderName: pi.RecipientBanking.AccountHolderName,
		IBAN:              pi.RecipientBanking.IBAN,
		BIC:               pi.RecipientBanking.BIC,
		CreatedAt:         now,
	}
}
