package memory

import (
	"context"
	"sync"

	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"
)

// TokenCache keeps tokens in process memory. Used when TOKEN_CACHE=memory and in tests.
type TokenCache struct {
	mu     sync.RWMutex
	tokens map[string]entities.Token
}

var _ interfaces.ITokenCache = (*TokenCache)(nil)

func NewTokenCache() *TokenCache {
	return &TokenCache{tokens: make(map[string]entities.Token)}
}

func (c *TokenCache) Get(_ context.Context, key string) (entities.Token, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tokens[key]
	return t, ok, nil
}

func (c *TokenCache) Set(_ context.Context, key string, token entities.Token) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens[key] = token
	return nil
}

func (c *TokenCache) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tokens, key)
	return nil
}
