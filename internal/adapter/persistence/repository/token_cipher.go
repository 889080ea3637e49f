package repository

import (
	"context"
	"encoding/base64"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
)

const tokenEncryptionContextKey = "paypal_unified_token_cache"

// TokenCipher seals cached token payloads at rest.
type TokenCipher interface {
	Encrypt(ctx context.Context, cacheKey string, plaintext []byte) (string, error)
	Decrypt(ctx context.Context, cacheKey string, ciphertext string) ([]byte, error)
}

type kmsAPI interface {
	Encrypt(ctx context.Context, params *kms.EncryptInput, optFns ...func(*kms.Options)) (*kms.EncryptOutput, error)
	Decrypt(ctx context.Context, params *kms.DecryptInput, optFns ...func(*kms.Options)) (*kms.DecryptOutput, error)
}

// KMSTokenCipher encrypts with a symmetric KMS key. The cache key is bound as
// encryption context, so a payload copied to another shop's entry fails to decrypt.
type KMSTokenCipher struct {
	client kmsAPI
	keyID  string
}

var _ TokenCipher = (*KMSTokenCipher)(nil)

func NewKMSTokenCipher(client kmsAPI, keyID string) *KMSTokenCipher {
	return &KMSTokenCipher{client: client, keyID: keyID}
}

func (c *KMSTokenCipher) Encrypt(ctx context.Context, cacheKey string, plaintext []byte) (string, error) {
	out, err := c.client.Encrypt(ctx, &kms.EncryptInput{
		KeyId:             aws.String(c.keyID),
		Plaintext:         plaintext,
		EncryptionContext: map[string]string{tokenEncryptionContextKey: cacheKey},
	})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(out.CiphertextBlob), nil
}

func (c *KMSTokenCipher) Decrypt(ctx context.Context, cacheKey string, ciphertext string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, err
	}
	out, err := c.client.Decrypt(ctx, &kms.DecryptInput{
		KeyId:             aws.String(c.keyID),
		CiphertextBlob:    blob,
		EncryptionContext: map[string]string{tokenEncryptionContextKey: cacheKey},
	})
	if err != nil {
		return nil, err
	}
	return out.Plaintext, nil
}
