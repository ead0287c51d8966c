package s3store

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/facility-directory/internal/config"
)

// Store uploads facility photos to object storage and lists them back by
// facility prefix. Keys are namespaced as <facilityID>/<filename>.
type Store struct {
	svc      *s3.Client
	bucket   string
	region   string
	endpoint string
	logger   *zap.Logger
}

func New(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage configuration: %w", err)
	}

	svc := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			// Local object-store emulator (minio/localstack).
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Store{
		svc:      svc,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
		logger:   logger,
	}, nil
}

// Put uploads one object and returns its public URL.
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.svc.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Error("Failed to upload object", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("object upload failed: %w", err)
	}

	return s.PublicURL(key), nil
}

// List returns the public URLs of every object under prefix, in key order.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	var urls []string

	paginator := s3.NewListObjectsV2Paginator(s.svc, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			s.logger.Error("Failed to list objects", zap.String("prefix", prefix), zap.Error(err))
			return nil, fmt.Errorf("object list failed: %w", err)
		}
		for _, obj := range page.Contents {
			if obj.Key != nil {
				urls = append(urls, s.PublicURL(*obj.Key))
			}
		}
	}

	return urls, nil
}

// PublicURL maps a key to its publicly reachable URL.
func (s *Store) PublicURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
