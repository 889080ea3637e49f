package repository

import (
	"context"
	"errors"
	"time"

	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWebhookEventsTableName = "webhook_events"
	webhookEventRetention         = 30 * 24 * time.Hour
)

type webhookEventItem struct {
	ID           string `dynamodbav:"id"`
	EventType    string `dynamodbav:"event_type"`
	ResourceType string `dynamodbav:"resource_type"`
	CreationTime string `dynamodbav:"create_time"`
	ProcessedAt  string `dynamodbav:"processed_at"`
	ExpiresAt    int64  `dynamodbav:"expires_at"`
}

// WebhookEventDynamoRepository records processed webhook event ids.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (PayPal stops retrying long before it)

type WebhookEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWebhookEventRepository = (*WebhookEventDynamoRepository)(nil)

func NewWebhookEventDynamoRepository(ddb *dynamodb.Client) *WebhookEventDynamoRepository {
	return &WebhookEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WEBHOOK_EVENTS_TABLE", defaultWebhookEventsTableName),
	}
}

func (r *WebhookEventDynamoRepository) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: eventID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *WebhookEventDynamoRepository) MarkProcessed(ctx context.Context, w entities.Webhook) error {
	now := time.Now()
	av, err := attributevalue.MarshalMap(webhookEventItem{
		ID:           w.ID,
		EventType:    w.EventType,
		ResourceType: w.ResourceType,
		CreationTime: w.CreationTime,
		ProcessedAt:  formatTime(now),
		ExpiresAt:    now.Add(webhookEventRetention).Unix(),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}
