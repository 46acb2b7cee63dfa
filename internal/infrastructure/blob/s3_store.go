package blob

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"boq_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client used to store exports.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Presigner signs download links.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*PresignedRequest, error)
}

// PresignedRequest carries the signed URL.
type PresignedRequest struct {
	URL string
}

type s3Presigner struct {
	client *s3.PresignClient
}

func (p s3Presigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*PresignedRequest, error) {
	out, err := p.client.PresignGetObject(ctx, params, optFns...)
	if err != nil {
		return nil, err
	}
	return &PresignedRequest{URL: out.URL}, nil
}

// Config holds the S3 settings. Endpoint and PathStyle target S3-compatible servers
// such as MinIO or LocalStack.
type Config struct {
	Bucket    string
	Endpoint  string
	PathStyle bool
}

// Environment variables:
//
//	EXPORTS_S3_BUCKET=<bucket> (export storage is disabled when empty)
//	EXPORTS_S3_ENDPOINT=<url> (optional)
//	EXPORTS_S3_PATH_STYLE=true|false (default false)
func NewConfigFromEnv() Config {
	return Config{
		Bucket:    os.Getenv("EXPORTS_S3_BUCKET"),
		Endpoint:  os.Getenv("EXPORTS_S3_ENDPOINT"),
		PathStyle: strings.EqualFold(os.Getenv("EXPORTS_S3_PATH_STYLE"), "true"),
	}
}

// S3Store keeps rendered workbooks in a single bucket.
type S3Store struct {
	client    S3API
	presigner Presigner
	bucket    string
}

var _ interfaces.IBlobStore = (*S3Store)(nil)

// NewS3Store builds the store from a loaded AWS config.
func NewS3Store(awsCfg aws.Config, cfg Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return newS3Store(client, s3Presigner{client: s3.NewPresignClient(client)}, cfg.Bucket), nil
}

func newS3Store(client S3API, presigner Presigner, bucket string) *S3Store {
	return &S3Store{client: client, presigner: presigner, bucket: bucket}
}

func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}
	return nil
}

func (s *S3Store) PresignGetURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	out, err := s.presigner.PresignGetObject(ctx,
		&s3.GetObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(key)},
		func(po *s3.PresignOptions) { po.Expires = ttl },
	)
	if err != nil {
		return "", fmt.Errorf("presign s3://%s/%s: %w", s.bucket, key, err)
	}
	return out.URL, nil
}
