package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"
	"sync"
)

var (
	ErrWebhookHandlerNotFound = errors.New("no webhook handler registered for event type")
	ErrWebhookSignature       = errors.New("webhook signature verification failed")
)

// IWebhookHandler applies one PayPal event type to the local orders.
//
// Invoke never panics or returns an error: failures are logged and reported
// as false so PayPal's delivery retries can pick the event up again.
type IWebhookHandler interface {
	EventType() string
	Invoke(ctx context.Context, webhook entities.Webhook) bool
}

// IWebhookUseCase receives PayPal webhooks and routes them to their handler.

type IWebhookUseCase interface {
	Register(handler IWebhookHandler)
	Dispatch(ctx context.Context, webhook entities.Webhook) (bool, error)
	Receive(ctx context.Context, shopID string, headers map[string]string, raw []byte) (bool, error)
}

type WebhookUseCase struct {
	verifier interfaces.IWebhookVerifier
	events   interfaces.IWebhookEventRepository
	archive  interfaces.IWebhookArchive

	mu       sync.RWMutex
	handlers map[string]IWebhookHandler
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(verifier interfaces.IWebhookVerifier, events interfaces.IWebhookEventRepository, archive interfaces.IWebhookArchive, handlers ...IWebhookHandler) *WebhookUseCase {
	u := &WebhookUseCase{
		verifier: verifier,
		events:   events,
		archive:  archive,
		handlers: make(map[string]IWebhookHandler, len(handlers)),
	}
	for _, h := range handlers {
		u.Register(h)
	}
	return u
}

// Register adds a handler, replacing any handler already bound to its event type.
func (u *WebhookUseCase) Register(handler IWebhookHandler) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.handlers[handler.EventType()] = handler
}

func (u *WebhookUseCase) Dispatch(ctx context.Context, webhook entities.Webhook) (bool, error) {
	u.mu.RLock()
	handler, ok := u.handlers[webhook.EventType]
	u.mu.RUnlock()
	if !ok {
		log.Printf("[paypal][webhook] no handler event_type=%s event_id=%s", webhook.EventType, webhook.ID)
		return false, fmt.Errorf("%w: %s", ErrWebhookHandlerNotFound, webhook.EventType)
	}
	return handler.Invoke(ctx, webhook), nil
}

// Receive is the full inbound path: parse, verify, skip duplicates, archive,
// dispatch. An event is marked processed only when its handler succeeded.
func (u *WebhookUseCase) Receive(ctx context.Context, shopID string, headers map[string]string, raw []byte) (bool, error) {
	webhook, err := entities.ParseWebhook(raw)
	if err != nil {
		log.Printf("[paypal][webhook] invalid payload err=%v", err)
		return false, err
	}
	log.Printf("[paypal][webhook] received event_id=%s event_type=%s shop_id=%s", webhook.ID, webhook.EventType, shopID)

	if u.verifier != nil {
		valid, err := u.verifier.Verify(ctx, shopID, headers, raw)
		if err != nil {
			return false, fmt.Errorf("verify webhook: %w", err)
		}
		if !valid {
			log.Printf("[paypal][webhook] signature rejected event_id=%s", webhook.ID)
			return false, ErrWebhookSignature
		}
	}

	if u.events != nil {
		processed, err := u.events.IsProcessed(ctx, webhook.ID)
		if err != nil {
			return false, fmt.Errorf("lookup webhook event: %w", err)
		}
		if processed {
			log.Printf("[paypal][webhook] duplicate delivery ignored event_id=%s", webhook.ID)
			return true, nil
		}
	}

	if u.archive != nil {
		if err := u.archive.Archive(ctx, webhook, raw); err != nil {
			log.Printf("[paypal][webhook] archive failed event_id=%s err=%v", webhook.ID, err)
		}
	}

	handled, err := u.Dispatch(ctx, webhook)
	if err != nil || !handled {
		return handled, err
	}

	if u.events != nil {
		if err := u.events.MarkProcessed(ctx, webhook); err != nil {
			log.Printf("[paypal][webhook] mark processed failed event_id=%s err=%v", webhook.ID, err)
		}
	}
	return true, nil
}
