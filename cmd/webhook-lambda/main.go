package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"paypal_unified/internal/adapter/http/handlers"
	"paypal_unified/internal/infrastructure/bootstrap"
	"paypal_unified/internal/usecase"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	_ "github.com/joho/godotenv/autoload"
)

// webhookFunction serves PayPal webhook deliveries behind API Gateway with the
// same verification and dispatch as POST /v1/paypal-unified/webhook.
type webhookFunction struct {
	webhooks usecase.IWebhookUseCase
}

func (f *webhookFunction) handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	raw := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			log.Printf("[paypal][lambda] invalid base64 body err=%v", err)
			return jsonResponse(http.StatusBadRequest, map[string]string{"code": "INVALID_REQUEST", "message": "Invalid request"}), nil
		}
		raw = decoded
	}

	handled, err := f.webhooks.Receive(ctx, shopID(req), req.Headers, raw)
	status, body := handlers.WebhookResult(handled, err)
	return jsonResponse(status, body), nil
}

func shopID(req events.APIGatewayProxyRequest) string {
	for k, v := range req.Headers {
		if strings.EqualFold(k, "X-Shop-Id") && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return strings.TrimSpace(req.QueryStringParameters["shopId"])
}

func jsonResponse(status int, body any) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(payload),
	}
}

func main() {
	services, err := bootstrap.Build()
	if err != nil {
		log.Fatalf("Failed to wire the webhook function: %v", err)
	}
	f := &webhookFunction{webhooks: services.Webhooks}
	lambda.Start(f.handle)
}
