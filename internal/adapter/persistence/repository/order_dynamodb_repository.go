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
	defaultOrdersTableName = "orders"
	ordersTemporaryIDIndex = "temporary_id-index"
)

type orderItem struct {
	Number        string            `dynamodbav:"number"`
	ID            string            `dynamodbav:"id"`
	ShopID        string            `dynamodbav:"shop_id"`
	SessionID     string            `dynamodbav:"session_id,omitempty"`
	TemporaryID   string            `dynamodbav:"temporary_id"`
	TransactionID string            `dynamodbav:"transaction_id"`
	PaymentStatus string            `dynamodbav:"payment_status"`
	Currency      string            `dynamodbav:"currency"`
	Total         string            `dynamodbav:"total"`
	Attributes    map[string]string `dynamodbav:"attributes,omitempty"`
	CreatedAt     string            `dynamodbav:"created_at"`
	UpdatedAt     string            `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: number (string)
//   - GSI: temporary_id-index (PK: temporary_id)
//
// The order number is the PK because checkout reconciliation addresses orders
// by number; webhooks go through the temporary id index.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#number)"),
		ExpressionAttributeNames: map[string]string{
			"#number": "number",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"number": &types.AttributeValueMemberS{Value: number},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByTemporaryID(ctx context.Context, temporaryID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersTemporaryIDIndex),
		KeyConditionExpression: aws.String("temporary_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: temporaryID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) UpdatePaymentStatus(ctx context.Context, number string, status entities.PaymentStatus) (entities.Order, error) {
	return r.update(ctx, number, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_status": "payment_status",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdateTransactionID(ctx context.Context, number string, transactionID string) (entities.Order, error) {
	return r.update(ctx, number, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #transaction_id = :transaction_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":transaction_id": &types.AttributeValueMemberS{Value: transactionID},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#transaction_id": "transaction_id",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

// SetAttribute rewrites the whole attribute map: nested SET paths fail on
// orders stored without one.
func (r *OrderDynamoRepository) SetAttribute(ctx context.Context, number string, key string, value string) (entities.Order, error) {
	order, err := r.GetByNumber(ctx, number)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Number == "" {
		return entities.Order{}, nil
	}

	attrs := make(map[string]string, len(order.Attributes)+1)
	for k, v := range order.Attributes {
		attrs[k] = v
	}
	attrs[key] = value

	attrsAV, err := attributevalue.Marshal(attrs)
	if err != nil {
		return entities.Order{}, err
	}

	return r.update(ctx, number, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #attributes = :attributes, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":attributes": attrsAV,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#attributes": "attributes",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	number string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"number": &types.AttributeValueMemberS{Value: number},
		},
		ConditionExpression:       aws.String("attribute_exists(#number)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#number": "number"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		Number:        o.Number,
		ID:            o.ID,
		ShopID:        o.ShopID,
		SessionID:     o.SessionID,
		TemporaryID:   o.TemporaryID,
		TransactionID: o.TransactionID,
		PaymentStatus: string(o.PaymentStatus),
		Currency:      o.Currency,
		Total:         o.Total.String(),
		Attributes:    o.Attributes,
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:            it.ID,
		Number:        it.Number,
		ShopID:        it.ShopID,
		SessionID:     it.SessionID,
		TemporaryID:   it.TemporaryID,
		TransactionID: it.TransactionID,
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		Currency:      it.Currency,
		Total:         parseDecimal(it.Total),
		Attributes:    it.Attributes,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
