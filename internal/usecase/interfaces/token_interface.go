package interfaces

import (
	"context"
	"paypal_unified/internal/domain/entities"
)

// ITokenCache stores bearer tokens by cache key. Get reports found=false on a miss.
//
// Implementations: in-memory (tests, single instance) and DynamoDB (shared).
type ITokenCache interface {
	Get(ctx context.Context, key string) (token entities.Token, found bool, err error)
	Set(ctx context.Context, key string, token entities.Token) error
	Invalidate(ctx context.Context, key string) error
}

// ITokenResource fetches a fresh token from PayPal's OAuth endpoint.
type ITokenResource interface {
	RequestToken(ctx context.Context, credentials entities.OAuthCredentials) (entities.Token, error)
}
