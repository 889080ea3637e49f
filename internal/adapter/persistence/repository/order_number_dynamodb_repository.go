package repository

import (
	"context"
	"errors"
	"strconv"

	"paypal_unified/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNumberRangesTableName = "number_ranges"
	orderNumberRange             = "invoice"
)

// OrderNumberDynamoRepository hands out order numbers from an atomic counter.
//
// Table requirements:
//   - PK: name (string)

type OrderNumberDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	start     int64
}

var _ interfaces.IOrderNumberGenerator = (*OrderNumberDynamoRepository)(nil)

func NewOrderNumberDynamoRepository(ddb *dynamodb.Client, start int64) *OrderNumberDynamoRepository {
	return &OrderNumberDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NUMBER_RANGES_TABLE", defaultNumberRangesTableName),
		start:     start,
	}
}

func (r *OrderNumberDynamoRepository) Next(ctx context.Context) (string, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: orderNumberRange},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return "", err
	}
	return orderNumberFromCounter(r.start, out.Attributes["value"])
}

func orderNumberFromCounter(start int64, av types.AttributeValue) (string, error) {
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return "", errors.New("number range counter missing")
	}
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(start+v, 10), nil
}
