package main

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"paypal_unified/internal/adapter/http/handlers/mocks"
	"paypal_unified/internal/usecase"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const webhookBody = `{"id":"WH-1","event_type":"PAYMENT.SALE.REFUNDED"}`

func TestWebhookFunction_Handle(t *testing.T) {
	t.Run("processed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		uc.EXPECT().Receive(gomock.Any(), "2", gomock.Any(), []byte(webhookBody)).Return(true, nil)

		f := &webhookFunction{webhooks: uc}
		resp, err := f.handle(context.Background(), events.APIGatewayProxyRequest{
			Body:    webhookBody,
			Headers: map[string]string{"x-shop-id": "2"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"status":"processed"}`, resp.Body)
	})

	t.Run("base64 body and query shop id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		uc.EXPECT().Receive(gomock.Any(), "3", gomock.Any(), []byte(webhookBody)).Return(false, nil)

		f := &webhookFunction{webhooks: uc}
		resp, err := f.handle(context.Background(), events.APIGatewayProxyRequest{
			Body:                  base64.StdEncoding.EncodeToString([]byte(webhookBody)),
			IsBase64Encoded:       true,
			QueryStringParameters: map[string]string{"shopId": "3"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("signature rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		uc.EXPECT().Receive(gomock.Any(), "", gomock.Any(), gomock.Any()).Return(false, usecase.ErrWebhookSignature)

		f := &webhookFunction{webhooks: uc}
		resp, err := f.handle(context.Background(), events.APIGatewayProxyRequest{Body: webhookBody})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid base64", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWebhookUseCase(ctrl)

		f := &webhookFunction{webhooks: uc}
		resp, err := f.handle(context.Background(), events.APIGatewayProxyRequest{Body: "%%%", IsBase64Encoded: true})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
