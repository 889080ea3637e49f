package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"paypal_unified/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reverseCipher struct {
	keys []string
}

func (c *reverseCipher) Encrypt(_ context.Context, cacheKey string, plaintext []byte) (string, error) {
	c.keys = append(c.keys, cacheKey)
	out := make([]byte, len(plaintext))
	for i, b := range plaintext {
		out[len(plaintext)-1-i] = b
	}
	return string(out), nil
}

func (c *reverseCipher) Decrypt(ctx context.Context, cacheKey string, ciphertext string) ([]byte, error) {
	s, err := c.Encrypt(ctx, cacheKey, []byte(ciphertext))
	return []byte(s), err
}

type fakeKMS struct {
	encryptIn *kms.EncryptInput
	decryptIn *kms.DecryptInput
	err       error
}

func (f *fakeKMS) Encrypt(_ context.Context, in *kms.EncryptInput, _ ...func(*kms.Options)) (*kms.EncryptOutput, error) {
	f.encryptIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &kms.EncryptOutput{CiphertextBlob: append([]byte("sealed:"), in.Plaintext...)}, nil
}

func (f *fakeKMS) Decrypt(_ context.Context, in *kms.DecryptInput, _ ...func(*kms.Options)) (*kms.DecryptOutput, error) {
	f.decryptIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &kms.DecryptOutput{Plaintext: in.CiphertextBlob[len("sealed:"):]}, nil
}

func TestTokenEncoding(t *testing.T) {
	ctx := context.Background()
	expiry := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	token := entities.Token{AccessToken: "A21AA", TokenType: "Bearer", ExpiresIn: 32400, ExpireDateTime: expiry}

	t.Run("plain payload without cipher", func(t *testing.T) {
		it, err := encodeToken(ctx, nil, "paypal_unified_auth_1", token)
		require.NoError(t, err)
		assert.False(t, it.Encrypted)
		assert.Contains(t, it.Payload, "A21AA")
		assert.Equal(t, expiry.Unix(), it.ExpiresAt)

		got, err := decodeToken(ctx, nil, it)
		require.NoError(t, err)
		assert.Equal(t, token.AccessToken, got.AccessToken)
		assert.True(t, got.ExpireDateTime.Equal(expiry))
	})

	t.Run("sealed payload with cipher", func(t *testing.T) {
		c := &reverseCipher{}
		it, err := encodeToken(ctx, c, "paypal_unified_auth_2", token)
		require.NoError(t, err)
		assert.True(t, it.Encrypted)
		assert.NotContains(t, it.Payload, "A21AA")

		got, err := decodeToken(ctx, c, it)
		require.NoError(t, err)
		assert.Equal(t, "A21AA", got.AccessToken)
		assert.Equal(t, []string{"paypal_unified_auth_2", "paypal_unified_auth_2"}, c.keys)
	})

	t.Run("sealed payload without cipher fails", func(t *testing.T) {
		_, err := decodeToken(ctx, nil, tokenCacheItem{CacheKey: "k", Payload: "x", Encrypted: true})
		assert.ErrorIs(t, err, errEncryptedTokenWithoutCipher)
	})

	t.Run("expiry falls back to ttl attribute", func(t *testing.T) {
		got, err := decodeToken(ctx, nil, tokenCacheItem{CacheKey: "k", Payload: `{"access_token":"x"}`, ExpiresAt: expiry.Unix()})
		require.NoError(t, err)
		assert.Equal(t, expiry.Unix(), got.ExpireDateTime.Unix())
	})
}

func TestKMSTokenCipher(t *testing.T) {
	ctx := context.Background()

	t.Run("binds cache key as encryption context", func(t *testing.T) {
		f := &fakeKMS{}
		c := NewKMSTokenCipher(f, "alias/paypal")

		sealed, err := c.Encrypt(ctx, "paypal_unified_auth_1", []byte("secret"))
		require.NoError(t, err)
		assert.Equal(t, "paypal_unified_auth_1", f.encryptIn.EncryptionContext[tokenEncryptionContextKey])
		assert.Equal(t, "alias/paypal", *f.encryptIn.KeyId)

		plain, err := c.Decrypt(ctx, "paypal_unified_auth_1", sealed)
		require.NoError(t, err)
		assert.Equal(t, "secret", string(plain))
		assert.Equal(t, "paypal_unified_auth_1", f.decryptIn.EncryptionContext[tokenEncryptionContextKey])
	})

	t.Run("propagates kms errors", func(t *testing.T) {
		boom := errors.New("kms down")
		c := NewKMSTokenCipher(&fakeKMS{err: boom}, "k")
		_, err := c.Encrypt(ctx, "key", []byte("x"))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("rejects non base64 ciphertext", func(t *testing.T) {
		c := NewKMSTokenCipher(&fakeKMS{}, "k")
		_, err := c.Decrypt(ctx, "key", "%%%")
		assert.Error(t, err)
	})
}
