package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"
	"time"
)

const (
	LiveBaseURL    = "https://api.paypal.com"
	SandboxBaseURL = "https://api.sandbox.paypal.com"

	defaultTimeout = 30 * time.Second
)

var ErrTokenUnavailable = errors.New("paypal token unavailable")

// TokenSource supplies bearer tokens per shop. The token use case implements it.
type TokenSource interface {
	GetToken(ctx context.Context, shopID string) (entities.Token, error)
	Invalidate(ctx context.Context, shopID string) error
}

// Client performs authenticated JSON calls against the PayPal REST API.
//
// Every failure (transport, non-2xx, unreadable body) is returned as
// *entities.ProviderRequestError with the raw response body attached.
type Client struct {
	http     *http.Client
	tokens   TokenSource
	settings interfaces.IShopSettingsProvider
	baseURL  string
}

type Option func(*Client)

// WithBaseURL pins every shop to one API host (tests, proxies).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func NewClient(tokens TokenSource, settings interfaces.IShopSettingsProvider, opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{Timeout: defaultTimeout},
		tokens:   tokens,
		settings: settings,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func baseURLFor(override string, creds entities.OAuthCredentials) string {
	if override != "" {
		return override
	}
	if creds.Sandbox {
		return SandboxBaseURL
	}
	return LiveBaseURL
}

// do sends body as JSON and returns the status code and raw response body.
func (c *Client) do(ctx context.Context, shopID string, method string, path string, body any) (int, []byte, error) {
	settings, err := c.settings.Get(shopID)
	if err != nil {
		return 0, nil, err
	}

	token, err := c.tokens.GetToken(ctx, shopID)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrTokenUnavailable, err)
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURLFor(c.baseURL, settings.Credentials)+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return send(c.http, req, path)
}

func send(hc *http.Client, req *http.Request, path string) (int, []byte, error) {
	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		log.Printf("[paypal][client] %s %s transport error err=%v", req.Method, path, err)
		return 0, nil, &entities.ProviderRequestError{Method: req.Method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &entities.ProviderRequestError{Method: req.Method, Path: path, StatusCode: resp.StatusCode, Err: err}
	}
	log.Printf("[paypal][client] %s %s status=%d duration=%s", req.Method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, respBody, &entities.ProviderRequestError{
			Method:     req.Method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       respBody,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
	return resp.StatusCode, respBody, nil
}

// invalidateOnUnauthorized drops the cached token after a 401 so the next call refreshes it.
func (c *Client) invalidateOnUnauthorized(ctx context.Context, shopID string, err error) {
	var reqErr *entities.ProviderRequestError
	if errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusUnauthorized {
		if invErr := c.tokens.Invalidate(ctx, shopID); invErr != nil {
			log.Printf("[paypal][client] token invalidation failed shop_id=%s err=%v", shopID, invErr)
		}
	}
}
