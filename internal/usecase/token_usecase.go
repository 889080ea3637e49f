package usecase

import (
	"context"
	"fmt"
	"log"
	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"
	"strings"
	"time"
)

const tokenCacheKeyPrefix = "paypal_unified_auth_"

// ITokenUseCase hands out PayPal bearer tokens per shop.
//
// Refresh is lazy: a new token is only fetched when a caller asks for one and
// the cached token is missing or inside the safety margin. Concurrent callers
// for the same shop may both fetch; the last write wins and both tokens stay valid.

type ITokenUseCase interface {
	GetToken(ctx context.Context, shopID string) (entities.Token, error)
	Invalidate(ctx context.Context, shopID string) error
}

type TokenUseCase struct {
	cache    interfaces.ITokenCache
	resource interfaces.ITokenResource
	settings interfaces.IShopSettingsProvider
	now      func() time.Time
}

var _ ITokenUseCase = (*TokenUseCase)(nil)

func NewTokenUseCase(cache interfaces.ITokenCache, resource interfaces.ITokenResource, settings interfaces.IShopSettingsProvider) *TokenUseCase {
	return &TokenUseCase{cache: cache, resource: resource, settings: settings, now: time.Now}
}

func (u *TokenUseCase) GetToken(ctx context.Context, shopID string) (entities.Token, error) {
	shopID = u.resolveShopID(shopID)
	key := tokenCacheKey(shopID)

	cached, found, err := u.cache.Get(ctx, key)
	if err != nil {
		// An unreadable cache entry is treated as a miss.
		log.Printf("[paypal][token] cache read failed shop_id=%s err=%v", shopID, err)
		found = false
	}
	if found && cached.IsValid(u.now()) {
		return cached, nil
	}

	settings, err := u.settings.Get(shopID)
	if err != nil {
		return entities.Token{}, err
	}

	log.Printf("[paypal][token] requesting new token shop_id=%s sandbox=%t", shopID, settings.Credentials.Sandbox)
	token, err := u.resource.RequestToken(ctx, settings.Credentials)
	if err != nil {
		log.Printf("[paypal][token] token request failed shop_id=%s err=%v", shopID, err)
		return entities.Token{}, fmt.Errorf("request token: %w", err)
	}
	if token.ExpireDateTime.IsZero() {
		token.ExpireDateTime = u.now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	if err := u.cache.Set(ctx, key, token); err != nil {
		log.Printf("[paypal][token] cache write failed shop_id=%s err=%v", shopID, err)
	}
	log.Printf("[paypal][token] token refreshed shop_id=%s expires_at=%s", shopID, token.ExpireDateTime.UTC().Format(time.RFC3339))
	return token, nil
}

func (u *TokenUseCase) Invalidate(ctx context.Context, shopID string) error {
	shopID = u.resolveShopID(shopID)
	log.Printf("[paypal][token] invalidating token shop_id=%s", shopID)
	return u.cache.Invalidate(ctx, tokenCacheKey(shopID))
}

// resolveShopID maps an empty shop id to the default shop, so both share one cache entry.
func (u *TokenUseCase) resolveShopID(shopID string) string {
	if v := strings.TrimSpace(shopID); v != "" {
		return v
	}
	return u.settings.DefaultShopID()
}

func tokenCacheKey(shopID string) string {
	return tokenCacheKeyPrefix + shopID
}
