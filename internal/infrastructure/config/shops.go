package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrShopNotConfigured = errors.New("shop not configured for paypal")

// shopsFile is the layout of SHOPS_CONFIG_PATH:
//
//	default_shop: "1"
//	shops:
//	  "1":
//	    client_id: ${PAYPAL_CLIENT_ID}
//	    client_secret: ${PAYPAL_CLIENT_SECRET}
//	    sandbox: true
//	    send_order_number: true
//	    webhook_id: 4JH86294D6297924G
//	    brand_name: My Shop
//	    locale: de_DE
//
// ${VAR} references are expanded from the environment before parsing.
type shopsFile struct {
	DefaultShop string               `yaml:"default_shop"`
	Shops       map[string]shopEntry `yaml:"shops"`
}

type shopEntry struct {
	ClientID        string `yaml:"client_id"`
	ClientSecret    string `yaml:"client_secret"`
	Sandbox         *bool  `yaml:"sandbox"`
	SendOrderNumber bool   `yaml:"send_order_number"`
	WebhookID       string `yaml:"webhook_id"`
	BrandName       string `yaml:"brand_name"`
	Locale          string `yaml:"locale"`
}

// ShopSettings serves the per-shop PayPal configuration.
type ShopSettings struct {
	defaultShopID string
	shops         map[string]entities.ShopSettings
}

var _ interfaces.IShopSettingsProvider = (*ShopSettings)(nil)

// LoadShopSettings reads SHOPS_CONFIG_PATH when set and falls back to the
// single-shop PAYPAL_* environment variables.
func LoadShopSettings() (*ShopSettings, error) {
	if path := strings.TrimSpace(os.Getenv("SHOPS_CONFIG_PATH")); path != "" {
		return LoadShopSettingsFile(path)
	}
	return ShopSettingsFromEnv(), nil
}

func LoadShopSettingsFile(path string) (*ShopSettings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read shops config: %w", err)
	}
	return ParseShopSettings([]byte(os.ExpandEnv(string(raw))))
}

func ParseShopSettings(raw []byte) (*ShopSettings, error) {
	var f shopsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse shops config: %w", err)
	}
	if len(f.Shops) == 0 {
		return nil, errors.New("parse shops config: no shops defined")
	}

	s := &ShopSettings{defaultShopID: strings.TrimSpace(f.DefaultShop), shops: make(map[string]entities.ShopSettings, len(f.Shops))}
	for id, e := range f.Shops {
		id = strings.TrimSpace(id)
		sandbox := true
		if e.Sandbox != nil {
			sandbox = *e.Sandbox
		}
		s.shops[id] = entities.ShopSettings{
			ShopID:          id,
			Credentials:     entities.OAuthCredentials{ClientID: e.ClientID, ClientSecret: e.ClientSecret, Sandbox: sandbox},
			SendOrderNumber: e.SendOrderNumber,
			WebhookID:       e.WebhookID,
			BrandName:       e.BrandName,
			Locale:          e.Locale,
		}
		warnMissingCredentials(s.shops[id])
	}
	if s.defaultShopID == "" {
		s.defaultShopID = "1"
	}
	if _, ok := s.shops[s.defaultShopID]; !ok {
		return nil, fmt.Errorf("parse shops config: default shop %q is not defined", s.defaultShopID)
	}
	return s, nil
}

func ShopSettingsFromEnv() *ShopSettings {
	id := getenvDefault("DEFAULT_SHOP_ID", "1")
	shop := entities.ShopSettings{
		ShopID: id,
		Credentials: entities.OAuthCredentials{
			ClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
			ClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
			Sandbox:      getenvBool("PAYPAL_SANDBOX", true),
		},
		SendOrderNumber: getenvBool("PAYPAL_SEND_ORDER_NUMBER", false),
		WebhookID:       os.Getenv("PAYPAL_WEBHOOK_ID"),
		BrandName:       os.Getenv("PAYPAL_BRAND_NAME"),
		Locale:          os.Getenv("PAYPAL_LOCALE"),
	}
	warnMissingCredentials(shop)
	return &ShopSettings{defaultShopID: id, shops: map[string]entities.ShopSettings{id: shop}}
}

func (s *ShopSettings) Get(shopID string) (entities.ShopSettings, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		shopID = s.defaultShopID
	}
	shop, ok := s.shops[shopID]
	if !ok {
		return entities.ShopSettings{}, fmt.Errorf("%w: %s", ErrShopNotConfigured, shopID)
	}
	return shop, nil
}

func (s *ShopSettings) DefaultShopID() string {
	return s.defaultShopID
}

func warnMissingCredentials(shop entities.ShopSettings) {
	if shop.Credentials.ClientID == "" || shop.Credentials.ClientSecret == "" {
		log.Printf("[config][shops] missing paypal credentials shop_id=%s", shop.ShopID)
	}
}
