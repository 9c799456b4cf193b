// Package storage provides an S3-compatible object storage client used to
// issue pre-signed upload URLs for media files. It wraps the AWS SDK v2 and
// is configured for path-style access (required by B2/CEPH-style endpoints).
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PresignTTL is how long a client has to use an issued upload URL.
const PresignTTL = 60 * time.Second

// Client wraps an S3 client and presigner for one public media bucket.
type Client struct {
	presigner *s3.PresignClient
	bucket    string
}

// New creates an S3 storage client with static credentials and path-style
// addressing against the given endpoint.
func New(endpoint, region, accessKey, secretKey, bucket string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("storage: endpoint and credentials are required")
	}

	// Strip trailing slash from endpoint for consistent URL building.
	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		presigner: s3.NewPresignClient(s3Client),
		bucket:    bucket,
	}, nil
}

// PresignUpload generates a pre-signed PUT URL for the given object key,
// valid for PresignTTL. The caller uploads directly to storage without ever
// holding the bucket credentials.
func (c *Client) PresignUpload(ctx context.Context, key string) (string, error) {
	req, err := c.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(PresignTTL))
	if err != nil {
		return "", fmt.Errorf("s3 presign %s/%s: %w", c.bucket, key, err)
	}
	return req.URL, nil
}
