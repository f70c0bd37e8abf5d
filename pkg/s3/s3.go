package s3

import (
	"fmt"
	"io"
	"strings"

	"igclone/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type Client struct {
	s3Client *s3.S3
	bucket   string
	baseURL  string
}

func NewClient(cfg *config.Config) (*Client, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}

	// Ensure bucket exists (for MinIO)
	_, err = client.s3Client.HeadBucket(&s3.HeadBucketInput{
		Bucket: aws.String(cfg.S3BucketName),
	})
	if err != nil {
		_, err = client.s3Client.CreateBucket(&s3.CreateBucketInput{
			Bucket: aws.String(cfg.S3BucketName),
		})
		if err != nil && !bucketAlreadyExists(err) {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.S3BucketName, err)
		}
	}

	return client, nil
}

func newClient(cfg *config.Config) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO for local development
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &Client{
		s3Client: s3.New(sess),
		bucket:   cfg.S3BucketName,
		baseURL:  publicBaseURL(cfg),
	}, nil
}

// publicBaseURL is the prefix that object keys are appended to when building
// public URLs: path-style for custom endpoints, virtual-host style for AWS.
func publicBaseURL(cfg *config.Config) string {
	endpoint := cfg.AWSEndpoint
	if endpoint != "" && !strings.Contains(endpoint, "amazonaws.com") {
		protocol := "https"
		if cfg.S3UseSSL == "false" {
			protocol = "http"
		}
		endpoint = strings.TrimPrefix(endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
		endpoint = strings.TrimSuffix(endpoint, "/")
		return fmt.Sprintf("%s://%s/%s/", protocol, endpoint, cfg.S3BucketName)
	}

	region := cfg.AWSRegion
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", cfg.S3BucketName, region)
}

// UploadFile stores body under key and returns its public URL.
func (c *Client) UploadFile(key string, body io.ReadSeeker, contentType string) (string, error) {
	_, err := c.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return c.URL(key), nil
}

func (c *Client) DeleteFile(key string) error {
	_, err := c.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

func (c *Client) URL(key string) string {
	return c.baseURL + key
}

// KeyFromURL reverses URL. ok is false for URLs that do not point into this bucket.
func (c *Client) KeyFromURL(url string) (key string, ok bool) {
	if !strings.HasPrefix(url, c.baseURL) {
		return "", false
	}
	key = strings.TrimPrefix(url, c.baseURL)
	return key, key != ""
}

func bucketAlreadyExists(err error) bool {
	aerr, ok := err.(awserr.Error)
	if !ok {
		return false
	}
	return aerr.Code() == s3.ErrCodeBucketAlreadyOwnedByYou || aerr.Code() == s3.ErrCodeBucketAlreadyExists
}
