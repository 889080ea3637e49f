package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"paypal_unified/internal/domain/entities"
	"paypal_unified/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// WebhookArchiveS3 stores the raw body of every received webhook under
// webhooks/yyyy/mm/dd/<event id>.json.
type WebhookArchiveS3 struct {
	client s3API
	bucket string
	now    func() time.Time
}

var _ interfaces.IWebhookArchive = (*WebhookArchiveS3)(nil)

func NewWebhookArchiveS3(client s3API, bucket string) *WebhookArchiveS3 {
	return &WebhookArchiveS3{client: client, bucket: bucket, now: time.Now}
}

func (a *WebhookArchiveS3) Archive(ctx context.Context, w entities.Webhook, raw []byte) error {
	key := archiveKey(a.now(), w.ID)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(raw),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"event-type":    w.EventType,
			"resource-type": w.ResourceType,
		},
	})
	if err != nil {
		return fmt.Errorf("archive webhook %s: %w", w.ID, err)
	}
	return nil
}

func archiveKey(at time.Time, eventID string) string {
	return fmt.Sprintf("webhooks/%s/%s.json", at.UTC().Format("2006/01/02"), eventID)
}
