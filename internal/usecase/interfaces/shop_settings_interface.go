package interfaces

import "paypal_unified/internal/domain/entities"

// IShopSettingsProvider resolves the PayPal configuration of a shop.
type IShopSettingsProvider interface {
	Get(shopID string) (entities.ShopSettings, error)
	DefaultShopID() string
}
