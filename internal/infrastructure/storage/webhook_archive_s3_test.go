package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"paypal_unified/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	if in.Body != nil {
		f.body, _ = io.ReadAll(in.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestWebhookArchiveS3_Archive(t *testing.T) {
	w := entities.Webhook{ID: "WH-1", EventType: entities.WebhookEventSaleRefunded, ResourceType: "refund"}
	raw := []byte(`{"id":"WH-1"}`)

	t.Run("writes raw body under dated key", func(t *testing.T) {
		f := &fakeS3{}
		a := NewWebhookArchiveS3(f, "paypal-webhooks")
		a.now = func() time.Time { return time.Date(2026, 5, 9, 23, 0, 0, 0, time.UTC) }

		require.NoError(t, a.Archive(context.Background(), w, raw))
		assert.Equal(t, "paypal-webhooks", *f.in.Bucket)
		assert.Equal(t, "webhooks/2026/05/09/WH-1.json", *f.in.Key)
		assert.Equal(t, raw, f.body)
		assert.Equal(t, entities.WebhookEventSaleRefunded, f.in.Metadata["event-type"])
	})

	t.Run("wraps put errors", func(t *testing.T) {
		boom := errors.New("access denied")
		a := NewWebhookArchiveS3(&fakeS3{err: boom}, "b")
		err := a.Archive(context.Background(), w, raw)
		assert.ErrorIs(t, err, boom)
	})
}
