package repository

import (
	"context"

	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentInstructionsTableName = "payment_instructions"

type paymentInstructionItem struct {
	OrderNumber       string `dynamodbav:"order_number"`
	ReferenceNumber   string `dynamodbav:"reference_number"`
	Type              string `dynamodbav:"type"`
	Amount            string `dynamodbav:"amount"`
	Currency          string `dynamodbav:"currency"`
	DueDate           string `dynamodbav:"due_date"`
	BankName          string `dynamodbav:"bank_name"`
	AccountHolderName string `dynamodbav:"account_holder_name"`
	IBAN              string `dynamodbav:"iban"`
	BIC               string `dynamodbav:"bic"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// PaymentInstructionDynamoRepository persists pay-upon-invoice instructions.
//
// Table requirements:
//   - PK: order_number (string)

type PaymentInstructionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentInstructionRepository = (*PaymentInstructionDynamoRepository)(nil)

func NewPaymentInstructionDynamoRepository(ddb *dynamodb.Client) *PaymentInstructionDynamoRepository {
	return &PaymentInstructionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_INSTRUCTIONS_TABLE", defaultPaymentInstructionsTableName),
	}
}

// Create overwrites any earlier instruction of the order; PayPal sends the
// same instruction again when the return page is reloaded.
func (r *PaymentInstructionDynamoRepository) Create(ctx context.Context, rec entities.PaymentInstructionRecord) error {
	av, err := attributevalue.MarshalMap(toPaymentInstructionItem(rec))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PaymentInstructionDynamoRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.PaymentInstructionRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_number": &types.AttributeValueMemberS{Value: orderNumber},
		},
	})
	if err != nil {
		return entities.PaymentInstructionRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentInstructionRecord{}, nil
	}
	var it paymentInstructionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentInstructionRecord{}, err
	}
	return fromPaymentInstructionItem(it), nil
}

func toPaymentInstructionItem(r entities.PaymentInstructionRecord) paymentInstructionItem {
	return paymentInstructionItem{
		OrderNumber:       r.OrderNumber,
		ReferenceNumber:   r.ReferenceNumber,
		Type:              r.Type,
		Amount:            r.Amount,
		Currency:          r.Currency,
		DueDate:           r.DueDate,
		BankName:          r.BankName,
		AccountHolderName: r.AccountHolderName,
		IBAN:              r.IBAN,
		BIC:               r.BIC,
		CreatedAt:         formatTime(r.CreatedAt),
	}
}

func fromPaymentInstructionItem(it paymentInstructionItem) entities.PaymentInstructionRecord {
	return entities.PaymentInstructionRecord{
		OrderNumber:       it.OrderNumber,
		ReferenceNumber:   it.ReferenceNumber,
		Type:              it.Type,
		Amount:            it.Amount,
		Currency:          it.Currency,
		DueDate:           it.DueDate,
		BankName:          it.BankName,
		AccountHolderName: it.AccountHolderName,
		IBAN:              it.IBAN,
		BIC:               it.BIC,
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
