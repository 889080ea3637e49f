package entities

// Patch is a single JSON-Patch operation sent to PayPal's payment resource.
type Patch struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

const (
	shippingAddressPath = "/transactions/0/item_list/shipping_address"
	invoiceNumberPath   = "/transactions/0/invoice_number"
)

type patchShippingAddress struct {
	RecipientName string `json:"recipient_name"`
	Line1         string `json:"line1"`
	Line2         string `json:"line2,omitempty"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	CountryCode   string `json:"country_code"`
	State         string `json:"state,omitempty"`
}

// NewShippingAddressPatch replaces the shipping address of the first transaction.
func NewShippingAddressPatch(addr ShippingAddress) Patch {
	return Patch{
		Op:   "add",
		Path: shippingAddressPath,
		Value: patchShippingAddress{
			RecipientName: addr.RecipientName(),
			Line1:         addr.Street,
			Line2:         addr.Additional,
			City:          addr.City,
			PostalCode:    addr.Zipcode,
			CountryCode:   addr.CountryCode,
			State:         addr.State,
		},
	}
}

// NewOrderNumberPatch links the PayPal payment to the local order number.
func NewOrderNumberPatch(orderNumber string) Patch {
	return Patch{Op: "add", Path: invoiceNumberPath, Value: orderNumber}
}
