package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTokenCacheTableName = "paypal_token_cache"

var errEncryptedTokenWithoutCipher = errors.New("cached token is encrypted but no cipher is configured")

type tokenCacheItem struct {
	CacheKey  string `dynamodbav:"cache_key"`
	Payload   string `dynamodbav:"payload"`
	Encrypted bool   `dynamodbav:"encrypted"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// TokenCacheDynamoRepository shares PayPal bearer tokens between instances.
//
// Table requirements:
//   - PK: cache_key (string)
//   - TTL attribute: expires_at
//
// With a cipher the payload is the KMS ciphertext; without one it is the
// plain token JSON.

type TokenCacheDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	cipher    TokenCipher
}

var _ interfaces.ITokenCache = (*TokenCacheDynamoRepository)(nil)

func NewTokenCacheDynamoRepository(ddb *dynamodb.Client, cipher TokenCipher) *TokenCacheDynamoRepository {
	return &TokenCacheDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TOKEN_CACHE_TABLE", defaultTokenCacheTableName),
		cipher:    cipher,
	}
}

func (r *TokenCacheDynamoRepository) Get(ctx context.Context, key string) (entities.Token, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cache_key": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return entities.Token{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Token{}, false, nil
	}

	var it tokenCacheItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Token{}, false, err
	}
	token, err := decodeToken(ctx, r.cipher, it)
	if err != nil {
		return entities.Token{}, false, err
	}
	return token, true, nil
}

func (r *TokenCacheDynamoRepository) Set(ctx context.Context, key string, token entities.Token) error {
	it, err := encodeToken(ctx, r.cipher, key, token)
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

func (r *TokenCacheDynamoRepository) Invalidate(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cache_key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}

func encodeToken(ctx context.Context, cipher TokenCipher, key string, token entities.Token) (tokenCacheItem, error) {
	raw, err := json.Marshal(token)
	if err != nil {
		return tokenCacheItem{}, err
	}
	it := tokenCacheItem{CacheKey: key, Payload: string(raw)}
	if !token.ExpireDateTime.IsZero() {
		it.ExpiresAt = token.ExpireDateTime.Unix()
	}
	if cipher == nil {
		return it, nil
	}

	sealed, err := cipher.Encrypt(ctx, key, raw)
	if err != nil {
		return tokenCacheItem{}, err
	}
	it.Payload = sealed
	it.Encrypted = true
	return it, nil
}

func decodeToken(ctx context.Context, cipher TokenCipher, it tokenCacheItem) (entities.Token, error) {
	raw := []byte(it.Payload)
	if it.Encrypted {
		if cipher == nil {
			return entities.Token{}, errEncryptedTokenWithoutCipher
		}
		var err error
		raw, err = cipher.Decrypt(ctx, it.CacheKey, it.Payload)
		if err != nil {
			return entities.Token{}, err
		}
	}

	var token entities.Token
	if err := json.Unmarshal(raw, &token); err != nil {
		return entities.Token{}, err
	}
	if token.ExpireDateTime.IsZero() && it.ExpiresAt > 0 {
		token.ExpireDateTime = time.Unix(it.ExpiresAt, 0)
	}
	return token, nil
}
