package clients

import (
	"bytes"
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3Config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/emzola/sdmagic/config"
)

// ObjectStore stores exported files.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

// S3Store is an ObjectStore backed by an AWS S3 bucket.
type S3Store struct {
	uploader *manager.Uploader
	bucket   string
}

// NewS3Store configures a new AWS S3 object storage client for the configured bucket.
// A custom endpoint selects an S3-compatible store such as MinIO.
func NewS3Store(cfg config.Config) (*S3Store, error) {
	if cfg.S3.Bucket == "" {
		return nil, errors.New("s3 bucket is not configured")
	}
	opts := []func(*s3Config.LoadOptions) error{s3Config.WithRegion(cfg.S3.Region)}
	if cfg.S3.AccessKeyID != "" {
		creds := credentials.NewStaticCredentialsProvider(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, "")
		opts = append(opts, s3Config.WithCredentialsProvider(creds))
	}
	awsCfg, err := s3Config.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.EndpointResolver = s3.EndpointResolverFromURL(cfg.S3.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Store{
		uploader: manager.NewUploader(client),
		bucket:   cfg.S3.Bucket,
	}, nil
}

// Put uploads body under key.
func (s *S3Store) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: int64(len(body)),
		ContentType:   aws.String(contentType),
	})
	return err
}
