package paypal

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"paypal_unified/internal/usecase/interfaces"
	"strings"
)

const verifyWebhookPath = "/v1/notifications/verify-webhook-signature"

// WebhookResource verifies webhook transmissions through PayPal's
// verify-webhook-signature endpoint.
type WebhookResource struct {
	client   *Client
	settings interfaces.IShopSettingsProvider
}

var _ interfaces.IWebhookVerifier = (*WebhookResource)(nil)

func NewWebhookResource(client *Client, settings interfaces.IShopSettingsProvider) *WebhookResource {
	return &WebhookResource{client: client, settings: settings}
}

type verifyWebhookRequest struct {
	AuthAlgo         string          `json:"auth_algo"`
	CertURL          string          `json:"cert_url"`
	TransmissionID   string          `json:"transmission_id"`
	TransmissionSig  string          `json:"transmission_sig"`
	TransmissionTime string          `json:"transmission_time"`
	WebhookID        string          `json:"webhook_id"`
	WebhookEvent     json.RawMessage `json:"webhook_event"`
}

type verifyWebhookResponse struct {
	VerificationStatus string `json:"verification_status"`
}

// Verify returns true without calling PayPal when the shop has no webhook id configured.
func (r *WebhookResource) Verify(ctx context.Context, shopID string, headers map[string]string, raw []byte) (bool, error) {
	settings, err := r.settings.Get(shopID)
	if err != nil {
		return false, err
	}
	if settings.WebhookID == "" {
		log.Printf("[paypal][webhook] signature check skipped, no webhook id shop_id=%s", shopID)
		return true, nil
	}

	req := verifyWebhookRequest{
		AuthAlgo:         header(headers, "PAYPAL-AUTH-ALGO"),
		CertURL:          header(headers, "PAYPAL-CERT-URL"),
		TransmissionID:   header(headers, "PAYPAL-TRANSMISSION-ID"),
		TransmissionSig:  header(headers, "PAYPAL-TRANSMISSION-SIG"),
		TransmissionTime: header(headers, "PAYPAL-TRANSMISSION-TIME"),
		WebhookID:        settings.WebhookID,
		WebhookEvent:     json.RawMessage(raw),
	}
	if req.TransmissionID == "" || req.TransmissionSig == "" {
		return false, nil
	}

	_, body, err := r.client.do(ctx, shopID, http.MethodPost, verifyWebhookPath, req)
	if err != nil {
		r.client.invalidateOnUnauthorized(ctx, shopID, err)
		return false, err
	}
	var resp verifyWebhookResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, err
	}
	return strings.EqualFold(resp.VerificationStatus, "SUCCESS"), nil
}

func header(headers map[string]string, key string) string {
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}
