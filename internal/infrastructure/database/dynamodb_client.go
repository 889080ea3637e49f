package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - KMS_ENDPOINT, S3_ENDPOINT (optional; e.g. http://localstack:4566)
func ConnectDynamoDB() *dynamodb.Client {
	return dynamodb.NewFromConfig(mustLoadConfig())
}

// ConnectKMS creates the KMS client used to encrypt cached PayPal tokens.
func ConnectKMS() *kms.Client {
	return kms.NewFromConfig(mustLoadConfig())
}

// ConnectS3 creates the S3 client used by the webhook archive.
func ConnectS3() *s3.Client {
	return s3.NewFromConfig(mustLoadConfig(), func(o *s3.Options) {
		// Local S3 emulators only serve path-style URLs.
		o.UsePathStyle = os.Getenv("S3_ENDPOINT") != ""
	})
}

func mustLoadConfig() aws.Config {
	cfg, err := NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	return cfg
}

func NewAWSConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoints := map[string]string{
		dynamodb.ServiceID: os.Getenv("DYNAMODB_ENDPOINT"),
		kms.ServiceID:      os.Getenv("KMS_ENDPOINT"),
		s3.ServiceID:       os.Getenv("S3_ENDPOINT"),
	}

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		os.Getenv("AWS_SESSION_TOKEN"),
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}

	if hasAnyEndpoint(endpoints) {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if endpoint := endpoints[service]; endpoint != "" {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func hasAnyEndpoint(endpoints map[string]string) bool {
	for _, v := range endpoints {
		if v != "" {
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
