package publish

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the slice of the S3 client that S3Target needs. *s3.Client
// satisfies it; tests supply fakes.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Target publishes documents to an S3 bucket.
//
// Example:
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil {
//		return err
//	}
//	target := publish.NewS3Target(s3.NewFromConfig(cfg), "my-bucket", "site/")
//	pub := publish.New(target)
type S3Target struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Target creates an S3 target. prefix is prepended to every key.
func NewS3Target(client S3API, bucket, prefix string) *S3Target {
	return &S3Target{client: client, bucket: bucket, prefix: prefix}
}

// Put implements Target.
func (t *S3Target) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := t.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(t.bucket),
		Key:         aws.String(t.prefix + key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s failed: %w", t.prefix+key, err)
	}
	return nil
}
