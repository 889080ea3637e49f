package repository

import (
	"testing"
	"time"

	"paypal_unified/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItemConversion(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	o := entities.Order{
		ID:            "8a7c",
		Number:        "20001",
		ShopID:        "1",
		TemporaryID:   "PAY-1",
		TransactionID: "SALE-1",
		PaymentStatus: entities.PaymentStatusApproved,
		Currency:      "EUR",
		Total:         decimal.RequireFromString("119.90"),
		Attributes:    map[string]string{entities.OrderAttributePaymentType: entities.PaymentTypeClassic},
		CreatedAt:     created,
		UpdatedAt:     created,
	}

	it := toOrderItem(o)
	assert.True(t, parseDecimal(it.Total).Equal(o.Total))
	assert.Equal(t, "approved", it.PaymentStatus)

	back := fromOrderItem(it)
	assert.True(t, back.Total.Equal(o.Total))
	assert.Equal(t, o.Attributes, back.Attributes)
	assert.True(t, back.CreatedAt.Equal(created))
}

func TestCheckoutSessionItem(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	oc := entities.OrderContext{
		Currency: "EUR",
		Items:    []entities.OrderItem{{Name: "Shirt", Quantity: 2, Price: decimal.RequireFromString("10.00")}},
		Total:    decimal.RequireFromString("20.00"),
	}

	it, err := toCheckoutSessionItem("sess-1", oc, now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(checkoutSessionTTL).Unix(), it.ExpiresAt)

	got, err := decodeOrderContext(it.OrderContext)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Total.Equal(oc.Total))
	assert.Equal(t, "Shirt", got.Items[0].Name)

	empty, err := decodeOrderContext("")
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestOrderNumberFromCounter(t *testing.T) {
	t.Run("offsets counter by start", func(t *testing.T) {
		n, err := orderNumberFromCounter(20000, &types.AttributeValueMemberN{Value: "7"})
		require.NoError(t, err)
		assert.Equal(t, "20007", n)
	})

	t.Run("missing counter", func(t *testing.T) {
		_, err := orderNumberFromCounter(20000, nil)
		assert.Error(t, err)
	})
}

func TestMergeNames(t *testing.T) {
	got := mergeNames(map[string]string{"#a": "a"}, map[string]string{"#b": "b"})
	assert.Equal(t, map[string]string{"#a": "a", "#b": "b"}, got)
	assert.Equal(t, map[string]string{"#b": "b"}, mergeNames(nil, map[string]string{"#b": "b"}))
}
