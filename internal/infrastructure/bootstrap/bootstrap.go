package bootstrap

import (
	"fmt"
	"log"
	"paypal_unified/internal/adapter/persistence/memory"
	"paypal_unified/internal/adapter/persistence/repository"
	"paypal_unified/internal/infrastructure/config"
	"paypal_unified/internal/infrastructure/database"
	"paypal_unified/internal/infrastructure/paypal"
	"paypal_unified/internal/infrastructure/storage"
	"paypal_unified/internal/usecase"
	"paypal_unified/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	TokenCacheMemory   = "memory"
	TokenCacheDynamoDB = "dynamodb"

	PathReturn = "/v1/paypal-unified/return"
	PathCancel = "/v1/paypal-unified/cancel"
	PathFinish = "/checkout/finish"
)

// Services is the wired application shared by the HTTP server and the webhook lambda.
type Services struct {
	App                config.App
	Checkout           usecase.ICheckoutUseCase
	Orders             usecase.IOrderDataUseCase
	PaymentInstruction usecase.IPaymentInstructionUseCase
	Webhooks           usecase.IWebhookUseCase
}

// Build connects the AWS clients and wires every use case from the environment.
func Build() (*Services, error) {
	app := config.LoadApp()
	shops, err := config.LoadShopSettings()
	if err != nil {
		return nil, fmt.Errorf("load shop settings: %w", err)
	}

	ddb := database.ConnectDynamoDB()

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	numbers := repository.NewOrderNumberDynamoRepository(ddb, app.OrderNumberStart)
	sessions := repository.NewCheckoutSessionDynamoRepository(ddb)
	instructionRepo := repository.NewPaymentInstructionDynamoRepository(ddb)
	events := repository.NewWebhookEventDynamoRepository(ddb)

	tokens := usecase.NewTokenUseCase(newTokenCache(app, ddb), paypal.NewTokenResource(), shops)
	client := paypal.NewClient(tokens, shops)

	var payments interfaces.IPaymentResource
	var verifier interfaces.IWebhookVerifier
	if paypal.IsMockEnabled() {
		payments = paypal.NewMockPaymentResource()
	} else {
		payments = paypal.NewPaymentResource(client, shops)
		verifier = paypal.NewWebhookResource(client, shops)
	}

	var archive interfaces.IWebhookArchive
	if app.WebhookArchiveBucket != "" {
		archive = storage.NewWebhookArchiveS3(database.ConnectS3(), app.WebhookArchiveBucket)
		log.Printf("[bootstrap] webhook archive enabled bucket=%s", app.WebhookArchiveBucket)
	}

	orders := usecase.NewOrderDataUseCase(orderRepo, numbers)
	checkout := usecase.NewCheckoutUseCase(sessions, payments, orders, instructionRepo, shops, CheckoutURLs(app))
	webhooks := usecase.NewWebhookUseCase(verifier, events, archive,
		usecase.NewSaleRefundedHandler(orders),
		usecase.NewSaleCompletedHandler(orders),
		usecase.NewSaleDeniedHandler(orders),
	)

	return &Services{
		App:                app,
		Checkout:           checkout,
		Orders:             orders,
		PaymentInstruction: usecase.NewPaymentInstructionUseCase(instructionRepo),
		Webhooks:           webhooks,
	}, nil
}

// CheckoutURLs derives the absolute redirect URLs from the public and storefront base URLs.
func CheckoutURLs(app config.App) usecase.CheckoutURLs {
	return usecase.CheckoutURLs{
		ReturnURL: app.PublicBaseURL + PathReturn,
		CancelURL: app.PublicBaseURL + PathCancel,
		FinishURL: app.StorefrontURL + PathFinish,
	}
}

func newTokenCache(app config.App, ddb *dynamodb.Client) interfaces.ITokenCache {
	if app.TokenCacheBackend == TokenCacheMemory {
		log.Printf("[bootstrap] token cache backend=memory")
		return memory.NewTokenCache()
	}

	var cipher repository.TokenCipher
	if app.TokenKMSKeyID != "" {
		cipher = repository.NewKMSTokenCipher(database.ConnectKMS(), app.TokenKMSKeyID)
	}
	log.Printf("[bootstrap] token cache backend=dynamodb encrypted=%t", cipher != nil)
	return repository.NewTokenCacheDynamoRepository(ddb, cipher)
}
