// Package blobs hands out presigned S3 URLs for object bodies. Bytes never
// pass through the server: clients PUT and GET directly against the bucket.
package blobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/repovault/internal/common"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Locator produces time-limited URLs for an object body addressed by hash.
type Locator interface {
	UploadURL(ctx context.Context, hash string) (string, error)
	DownloadURL(ctx context.Context, hash string) (string, error)
}

// S3Settings is the subset of server configuration the locator needs.
type S3Settings struct {
	User     string
	Password string
	Bucket   string
	Region   string
	Endpoint string
	Expires  time.Duration
}

type S3Locator struct {
	settings S3Settings
}

func NewS3Locator(settings S3Settings) *S3Locator {
	if settings.Expires <= 0 {
		settings.Expires = 15 * time.Minute
	}
	return &S3Locator{settings: settings}
}

// Key is the bucket key for an object body.
func Key(hash string) (string, error) {
	h := strings.ToLower(strings.TrimSpace(hash))
	if h == "" || strings.ContainsAny(h, "/\\") {
		return "", fmt.Errorf("%w: invalid object hash %q", common.ErrInvalidArgument, hash)
	}
	return "objects/" + h, nil
}

func (l *S3Locator) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(l.settings.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			l.settings.User,
			l.settings.Password,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if l.settings.Endpoint != "" {
			o.BaseEndpoint = aws.String(l.settings.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3PresignClient(client), nil
}

func (l *S3Locator) UploadURL(ctx context.Context, hash string) (string, error) {
	key, err := Key(hash)
	if err != nil {
		return "", err
	}

	presignClient, err := l.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := l.settings.Bucket
	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(l.settings.Expires))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (l *S3Locator) DownloadURL(ctx context.Context, hash string) (string, error) {
	key, err := Key(hash)
	if err != nil {
		return "", err
	}

	presignClient, err := l.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := l.settings.Bucket
	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(l.settings.Expires))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
