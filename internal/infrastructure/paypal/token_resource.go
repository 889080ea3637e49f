package paypal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"
	"strings"
	"time"
)

const tokenPath = "/v1/oauth2/token"

// TokenResource requests OAuth tokens with the client-credentials grant.
type TokenResource struct {
	http    *http.Client
	baseURL string
	now     func() time.Time
}

var _ interfaces.ITokenResource = (*TokenResource)(nil)

func NewTokenResource(opts ...Option) *TokenResource {
	c := NewClient(nil, nil, opts...)
	return &TokenResource{http: c.http, baseURL: c.baseURL, now: time.Now}
}

type tokenResponse struct {
	Scope       string `json:"scope"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	AppID       string `json:"app_id"`
	ExpiresIn   int    `json:"expires_in"`
	Nonce       string `json:"nonce"`
}

func (r *TokenResource) RequestToken(ctx context.Context, credentials entities.OAuthCredentials) (entities.Token, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURLFor(r.baseURL, credentials)+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return entities.Token{}, err
	}
	req.SetBasicAuth(credentials.ClientID, credentials.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	status, body, err := send(r.http, req, tokenPath)
	if err != nil {
		return entities.Token{}, err
	}

	var tr tokenResponse
	parseErr := json.Unmarshal(body, &tr)
	if parseErr == nil && tr.AccessToken == "" {
		parseErr = errors.New("missing")
	}
	if parseErr != nil {
		return entities.Token{}, &entities.ProviderRequestError{Method: http.MethodPost, Path: tokenPath, StatusCode: status, Body: body, Err: &entities.ParseError{Field: "access_token", Err: parseErr}}
	}

	return entities.Token{
		AccessToken:    tr.AccessToken,
		TokenType:      tr.TokenType,
		AppID:          tr.AppID,
		Nonce:          tr.Nonce,
		ExpiresIn:      tr.ExpiresIn,
		ExpireDateTime: r.now().UTC().Add(time.Duration(tr.ExpiresIn) * time.Second),
	}, nil
}
