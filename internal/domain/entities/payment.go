package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SaleState is the state PayPal reports for a sale transaction.
type SaleState string

const (
	SaleStateCreated           SaleState = "created"
	SaleStatePending           SaleState = "pending"
	SaleStateCompleted         SaleState = "completed"
	SaleStateRefunded          SaleState = "refunded"
	SaleStatePartiallyRefunded SaleState = "partially_refunded"
	SaleStateDenied            SaleState = "denied"
	SaleStateReversed          SaleState = "reversed"
)

// ErrMalformedPayment is wrapped by every ParseError produced for payment payloads.
var ErrMalformedPayment = errors.New("malformed payment")

// ParseError reports a provider payload that is missing a required field or is not valid JSON.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("parse provider payload: %v", e.Err)
	}
	return fmt.Sprintf("parse provider payload: field %q: %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Payment is PayPal's payment resource. Create and execute responses carry
// different subsets of fields, so a Payment is rebuilt from every response.
type Payment struct {
	ID                 string              `json:"id"`
	Intent             string              `json:"intent,omitempty"`
	State              string              `json:"state,omitempty"`
	CreateTime         string              `json:"create_time,omitempty"`
	Links              Links               `json:"links"`
	Transactions       []Transaction       `json:"transactions,omitempty"`
	PaymentInstruction *PaymentInstruction `json:"payment_instruction,omitempty"`
}

type Transaction struct {
	Amount           Amount            `json:"amount"`
	InvoiceNumber    string            `json:"invoice_number,omitempty"`
	RelatedResources []RelatedResource `json:"related_resources,omitempty"`
}

type Amount struct {
	Total    string `json:"total,omitempty"`
	Currency string `json:"currency,omitempty"`
}

type RelatedResource struct {
	Sale *Sale `json:"sale,omitempty"`
}

type Sale struct {
	ID            string    `json:"id"`
	State         SaleState `json:"state"`
	ParentPayment string    `json:"parent_payment,omitempty"`
	Amount        Amount    `json:"amount"`
}

// PaymentInstruction is returned for pay-upon-invoice payments and tells the
// customer where to transfer the money.
type PaymentInstruction struct {
	ReferenceNumber  string           `json:"reference_number"`
	Type             string           `json:"instruction_type"`
	Amount           InstructionValue `json:"amount"`
	DueDate          string           `json:"payment_due_date"`
	RecipientBanking RecipientBanking `json:"recipient_banking_instruction"`
}

type InstructionValue struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type RecipientBanking struct {
	BankName          string `json:"bank_name"`
	AccountHolderName string `json:"account_holder_name"`
	IBAN              string `json:"international_bank_account_number"`
	BIC               string `json:"bank_identifier_code"`
}

// Links holds the HATEOAS links of a payment.
//
// PayPal sends them as an array of {href, rel, method}; some callers store the
// flattened object form ({"approval_url": "..."}). Both decode into Links.
type Links struct {
	ApprovalURL string `json:"approval_url,omitempty"`
	Self        string `json:"self,omitempty"`
	Execute     string `json:"execute,omitempty"`
}

type link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}

func (l *Links) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '[' {
		var list []link
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		for _, it := range list {
			switch it.Rel {
			case "approval_url":
				l.ApprovalURL = it.Href
			case "self":
				l.Self = it.Href
			case "execute":
				l.Execute = it.Href
			}
		}
		return nil
	}

	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	l.ApprovalURL = flat["approval_url"]
	l.Self = flat["self"]
	l.Execute = flat["execute"]
	return nil
}

// ParsePayment builds a Payment from a raw provider response.
//
// A payment without an id is rejected instead of being returned half-filled.
func ParsePayment(raw []byte) (Payment, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Payment{}, &ParseError{Err: fmt.Errorf("%w: empty body", ErrMalformedPayment)}
	}

	var p Payment
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payment{}, &ParseError{Err: fmt.Errorf("%w: %v", ErrMalformedPayment, err)}
	}
	if strings.TrimSpace(p.ID) == "" {
		return Payment{}, &ParseError{Field: "id", Err: fmt.Errorf("%w: missing", ErrMalformedPayment)}
	}
	return p, nil
}

// FirstSale returns the first sale of the first transaction.
func (p Payment) FirstSale() (Sale, bool) {
	if len(p.Transactions) == 0 {
		return Sale{}, false
	}
	for _, rr := range p.Transactions[0].RelatedResources {
		if rr.Sale != nil {
			return *rr.Sale, true
		}
	}
	return Sale{}, false
}

// PaymentType is the value stored in the order's payment type attribute.
func (p Payment) PaymentType() string {
	if p.PaymentInstruction != nil {
		return PaymentTypePlusInvoice
	}
	return PaymentTypeClassic
}
