package request

import (
	"encoding/json"
	"testing"
)

func TestOrderContextRequest_ToOrderContext(t *testing.T) {
	raw := `{
		"shop_id":" 2 ",
		"currency":"eur",
		"items":[{"name":"T-Shirt","sku":"SW-1","quantity":2,"price":"9.50"}],
		"shipping":3.9,
		"total":"22.90",
		"customer":{"email":"max@example.com"},
		"shipping_address":{"street":"Ebbinghoff 10","city":"Schöppingen","zipcode":"48624","country_code":"de"}
	}`

	var req OrderContextRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	oc := req.ToOrderContext()

	if oc.ShopID != "2" || oc.Currency != "EUR" {
		t.Fatalf("unexpected shop/currency: %+v", oc)
	}
	if len(oc.Items) != 1 || oc.Items[0].Price.StringFixed(2) != "9.50" {
		t.Fatalf("unexpected items: %+v", oc.Items)
	}
	if oc.Shipping.StringFixed(2) != "3.90" || oc.Total.StringFixed(2) != "22.90" {
		t.Fatalf("unexpected amounts: %+v", oc)
	}
	if oc.ShippingAddress == nil || oc.ShippingAddress.CountryCode != "DE" {
		t.Fatalf("unexpected address: %+v", oc.ShippingAddress)
	}
	if err := oc.Validate(); err != nil {
		t.Fatalf("expected valid order context, got %v", err)
	}
}

func TestOrderContextRequest_WithoutAddress(t *testing.T) {
	oc := OrderContextRequest{Currency: "USD"}.ToOrderContext()
	if oc.ShippingAddress != nil {
		t.Fatalf("expected no address")
	}
}
