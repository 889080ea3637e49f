package interfaces

import (
	"context"
	"paypal_unified/internal/domain/entities"
)

// IWebhookVerifier checks the PayPal transmission signature of a webhook.
type IWebhookVerifier interface {
	Verify(ctx context.Context, shopID string, headers map[string]string, raw []byte) (bool, error)
}

// IWebhookEventRepository remembers which webhook events were already applied.
type IWebhookEventRepository interface {
	IsProcessed(ctx context.Context, eventID string) (bool, error)
	MarkProcessed(ctx context.Context, w entities.Webhook) error
}

// IWebhookArchive keeps the raw body of every accepted webhook.
type IWebhookArchive interface {
	Archive(ctx context.Context, w entities.Webhook, raw []byte) error
}
