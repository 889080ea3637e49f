package repository

import (
	"context"
	"encoding/json"
	"time"

	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCheckoutSessionsTableName = "checkout_sessions"
	checkoutSessionTTL               = 24 * time.Hour
)

type checkoutSessionItem struct {
	SessionID    string `dynamodbav:"session_id"`
	OrderContext string `dynamodbav:"order_context"`
	UpdatedAt    string `dynamodbav:"updated_at"`
	ExpiresAt    int64  `dynamodbav:"expires_at"`
}

// CheckoutSessionDynamoRepository keeps the storefront order context per session.
//
// Table requirements:
//   - PK: session_id (string)
//   - TTL attribute: expires_at
//
// The order context is stored as a JSON string so decimal amounts keep their
// exact textual representation.

type CheckoutSessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICheckoutSessionRepository = (*CheckoutSessionDynamoRepository)(nil)

func NewCheckoutSessionDynamoRepository(ddb *dynamodb.Client) *CheckoutSessionDynamoRepository {
	return &CheckoutSessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKOUT_SESSIONS_TABLE", defaultCheckoutSessionsTableName),
	}
}

func (r *CheckoutSessionDynamoRepository) Get(ctx context.Context, sessionID string) (*entities.OrderContext, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it checkoutSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	// DynamoDB TTL deletion is lazy.
	if it.ExpiresAt > 0 && time.Now().Unix() >= it.ExpiresAt {
		return nil, nil
	}
	return decodeOrderContext(it.OrderContext)
}

func (r *CheckoutSessionDynamoRepository) Save(ctx context.Context, sessionID string, oc entities.OrderContext) error {
	it, err := toCheckoutSessionItem(sessionID, oc, time.Now())
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *CheckoutSessionDynamoRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
	})
	return err
}

func toCheckoutSessionItem(sessionID string, oc entities.OrderContext, now time.Time) (checkoutSessionItem, error) {
	b, err := json.Marshal(oc)
	if err != nil {
		return checkoutSessionItem{}, err
	}
	return checkoutSessionItem{
		SessionID:    sessionID,
		OrderContext: string(b),
		UpdatedAt:    formatTime(now),
		ExpiresAt:    now.Add(checkoutSessionTTL).Unix(),
	}, nil
}

func decodeOrderContext(raw string) (*entities.OrderContext, error) {
	if raw == "" {
		return nil, nil
	}
	var oc entities.OrderContext
	if err := json.Unmarshal([]byte(raw), &oc); err != nil {
		return nil, err
	}
	return &oc, nil
}
