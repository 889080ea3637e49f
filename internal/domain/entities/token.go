package entities

import "time"

// TokenSafetyMargin is subtracted from a token's expiry so a request never
// leaves with a bearer that expires while in flight.
const TokenSafetyMargin = time.Hour

// Token is a PayPal OAuth bearer credential.
//
// A Token is never mutated: a refresh replaces the cached value wholesale.

type Token struct {
	AccessToken    string    `json:"access_token"`
	TokenType      string    `json:"token_type"`
	AppID          string    `json:"app_id,omitempty"`
	Nonce          string    `json:"nonce,omitempty"`
	ExpiresIn      int       `json:"expires_in"`
	ExpireDateTime time.Time `json:"expire_date_time"`
}

// IsValid reports whether the token can still be used at now.
func (t Token) IsValid(now time.Time) bool {
	if t.AccessToken == "" {
		return false
	}
	return now.Before(t.ExpireDateTime.Add(-TokenSafetyMargin))
}

// OAuthCredentials are the REST app credentials of a shop.
type OAuthCredentials struct {
	ClientID     string
	ClientSecret string
	Sandbox      bool
}
