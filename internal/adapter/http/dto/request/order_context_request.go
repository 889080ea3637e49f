package request

import (
	"paypal_unified/internal/domain/entities"
	"strings"

	"github.com/shopspring/decimal"
)

// OrderContextRequest is the basket the storefront stores for a checkout session
// before sending the customer to the PayPal gateway.
//
// Amounts accept JSON numbers or strings ("19.99").

type OrderContextRequest struct {
	ShopID          string                  `json:"shop_id"`
	Currency        string                  `json:"currency" binding:"required,len=3"`
	Items           []OrderItemRequest      `json:"items" binding:"required,min=1,dive"`
	Shipping        decimal.Decimal         `json:"shipping"`
	Tax             decimal.Decimal         `json:"tax"`
	Total           decimal.Decimal         `json:"total"`
	Customer        CustomerRequest         `json:"customer"`
	ShippingAddress *ShippingAddressRequest `json:"shipping_address"`
}

type OrderItemRequest struct {
	Name     string          `json:"name" binding:"required"`
	SKU      string          `json:"sku"`
	Quantity int             `json:"quantity" binding:"required,gt=0"`
	Price    decimal.Decimal `json:"price"`
}

type CustomerRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ShippingAddressRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Street      string `json:"street" binding:"required"`
	Additional  string `json:"additional"`
	City        string `json:"city" binding:"required"`
	Zipcode     string `json:"zipcode" binding:"required"`
	CountryCode string `json:"country_code" binding:"required,len=2"`
	State       string `json:"state"`
}

func (r OrderContextRequest) ToOrderContext() entities.OrderContext {
	oc := entities.OrderContext{
		ShopID:   strings.TrimSpace(r.ShopID),
		Currency: strings.ToUpper(strings.TrimSpace(r.Currency)),
		Items:    make([]entities.OrderItem, 0, len(r.Items)),
		Shipping: r.Shipping,
		Tax:      r.Tax,
		Total:    r.Total,
		Customer: entities.Customer{
			Email:     r.Customer.Email,
			FirstName: r.Customer.FirstName,
			LastName:  r.Customer.LastName,
		},
	}
	for _, it := range r.Items {
		oc.Items = append(oc.Items, entities.OrderItem{Name: it.Name, SKU: it.SKU, Quantity: it.Quantity, Price: it.Price})
	}
	if a := r.ShippingAddress; a != nil {
		oc.ShippingAddress = &entities.ShippingAddress{
			FirstName:   a.FirstName,
			LastName:    a.LastName,
			Street:      a.Street,
			Additional:  a.Additional,
			City:        a.City,
			Zipcode:     a.Zipcode,
			CountryCode: strings.ToUpper(a.CountryCode),
			State:       a.State,
		}
	}
	return oc
}
