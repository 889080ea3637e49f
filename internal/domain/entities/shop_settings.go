package entities

// ShopSettings is the PayPal configuration of one storefront (tenant).
type ShopSettings struct {
	ShopID      string
	Credentials OAuthCredentials
	// SendOrderNumber pushes the local order number to PayPal before the
	// payment is executed. When false the order is saved after execution.
	SendOrderNumber bool
	WebhookID       string
	BrandName       string
	Locale          string
}
