package config

import (
	"os"
	"strconv"
	"strings"
)

// App holds the process-level settings read from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - PUBLIC_BASE_URL (default: http://localhost:8080), used for PayPal return/cancel URLs
//   - STOREFRONT_URL (default: http://localhost:8000), finish and error redirects
//   - SESSION_COOKIE_NAME (default: session)
//   - TOKEN_CACHE (dynamodb|memory, default: dynamodb)
//   - TOKEN_KMS_KEY_ID (optional; encrypts cached tokens)
//   - WEBHOOK_ARCHIVE_BUCKET (optional; archives raw webhooks to S3)
//   - ORDER_NUMBER_START (default: 20000)
type App struct {
	Port                 int
	PublicBaseURL        string
	StorefrontURL        string
	SessionCookieName    string
	TokenCacheBackend    string
	TokenKMSKeyID        string
	WebhookArchiveBucket string
	OrderNumberStart     int64
}

func LoadApp() App {
	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 {
		port = 8080
	}
	start, err := strconv.ParseInt(getenvDefault("ORDER_NUMBER_START", "20000"), 10, 64)
	if err != nil || start < 0 {
		start = 20000
	}
	return App{
		Port:                 port,
		PublicBaseURL:        strings.TrimRight(getenvDefault("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		StorefrontURL:        strings.TrimRight(getenvDefault("STOREFRONT_URL", "http://localhost:8000"), "/"),
		SessionCookieName:    getenvDefault("SESSION_COOKIE_NAME", "session"),
		TokenCacheBackend:    strings.ToLower(getenvDefault("TOKEN_CACHE", "dynamodb")),
		TokenKMSKeyID:        os.Getenv("TOKEN_KMS_KEY_ID"),
		WebhookArchiveBucket: os.Getenv("WEBHOOK_ARCHIVE_BUCKET"),
		OrderNumberStart:     start,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}
