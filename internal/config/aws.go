package config

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// AWSConfig is shared by the S3 and SQS clients. A non-empty Endpoint targets an
// emulator such as LocalStack and switches to the static credentials.
type AWSConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

func defaultAWSConfig(endpointKey, endpointDefault string) AWSConfig {
	return AWSConfig{
		Region:          getEnvWithDefault("AWS_REGION", "us-east-1"),
		Endpoint:        getEnvWithDefault(endpointKey, getEnvWithDefault("AWS_ENDPOINT_URL", endpointDefault)),
		AccessKeyID:     getEnvWithDefault("AWS_ACCESS_KEY_ID", "dummy"),
		SecretAccessKey: getEnvWithDefault("AWS_SECRET_ACCESS_KEY", "dummy"),
	}
}

func (c AWSConfig) load(ctx context.Context) (aws.Config, error) {
	options := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(c.Region)}
	if c.Endpoint != "" {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return cfg, nil
}

type S3Config struct {
	AWSConfig
	BucketName    string
	PresignExpiry time.Duration
}

// DefaultS3Config reads S3_* variables. AWS_S3_ENDPOINT falls back to AWS_ENDPOINT_URL.
func DefaultS3Config() *S3Config {
	return &S3Config{
		AWSConfig:     defaultAWSConfig("AWS_S3_ENDPOINT", ""),
		BucketName:    getEnvWithDefault("S3_DOCUMENTS_BUCKET", "dealer-documents"),
		PresignExpiry: getEnvDurationWithDefault("S3_PRESIGN_EXPIRY", 15*time.Minute),
	}
}

func (c *S3Config) GetClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
			// emulators serve buckets by path, not by virtual host
			o.UsePathStyle = true
		}
	}), nil
}

type SQSConfig struct {
	AWSConfig
	FileCleanupQueueURL string
}

func DefaultSQSConfig() *SQSConfig {
	return &SQSConfig{
		AWSConfig:           defaultAWSConfig("AWS_SQS_ENDPOINT", "http://localhost:4566"),
		FileCleanupQueueURL: getEnvWithDefault("AWS_SQS_FILE_CLEANUP_QUEUE_URL", "http://localhost:4566/000000000000/dealer-file-cleanup-queue"),
	}
}

func (c *SQSConfig) GetClient(ctx context.Context) (*sqs.Client, error) {
	cfg, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	}), nil
}
