package entities

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidOrderContext = errors.New("invalid order context")

// OrderContext is the basket snapshot the storefront keeps in the checkout session
// while the customer is redirected to PayPal.

type OrderContext struct {
	ShopID          string           `json:"shop_id"`
	Currency        string           `json:"currency"`
	Items           []OrderItem      `json:"items"`
	Shipping        decimal.Decimal  `json:"shipping"`
	Tax             decimal.Decimal  `json:"tax"`
	Total           decimal.Decimal  `json:"total"`
	Customer        Customer         `json:"customer"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty"`
}

type OrderItem struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type Customer struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ShippingAddress struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Street      string `json:"street"`
	Additional  string `json:"additional,omitempty"`
	City        string `json:"city"`
	Zipcode     string `json:"zipcode"`
	CountryCode string `json:"country_code"`
	State       string `json:"state,omitempty"`
}

// RecipientName is the name PayPal prints on the shipping label.
func (a ShippingAddress) RecipientName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Validate checks the fields PayPal requires to create a payment.
func (oc OrderContext) Validate() error {
	if strings.TrimSpace(oc.Currency) == "" {
		return errors.Join(ErrInvalidOrderContext, errors.New("currency is required"))
	}
	if len(oc.Items) == 0 {
		return errors.Join(ErrInvalidOrderContext, errors.New("at least one item is required"))
	}
	if !oc.Total.IsPositive() {
		return errors.Join(ErrInvalidOrderContext, errors.New("total must be positive"))
	}
	for _, it := range oc.Items {
		if it.Quantity <= 0 {
			return errors.Join(ErrInvalidOrderContext, errors.New("item quantity must be positive"))
		}
	}
	return nil
}
