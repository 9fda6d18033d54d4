package assets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"dormdesk/internal/shared/config"
	"dormdesk/internal/shared/logger"
)

// objectStore is the slice of the S3 API the uploader needs.
type objectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) error
}

type s3Store struct {
	client *s3.Client
	bucket string
}

func (s *s3Store) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        body,
	})
	return err
}

// S3Uploader downloads a submitted image over HTTP, validates it and stores
// it in the configured bucket. It works against AWS S3 and S3-compatible
// stores (MinIO) via a custom endpoint.
type S3Uploader struct {
	store         objectStore
	httpClient    *http.Client
	endpoint      string
	region        string
	bucket        string
	publicBaseURL string
	maxBytes      int64
	logger        logger.Interface
}

func NewS3Uploader(cfg *config.AssetStoreConfig, fetchTimeout time.Duration, log logger.Interface) (*S3Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	}
	if cfg.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               cfg.Endpoint,
				HostnameImmutable: true,
			}, nil
		})
		opts = append(opts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load asset store config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.Endpoint != ""
	})

	return &S3Uploader{
		store:         &s3Store{client: client, bucket: cfg.Bucket},
		httpClient:    &http.Client{Timeout: fetchTimeout},
		endpoint:      strings.TrimRight(cfg.Endpoint, "/"),
		region:        cfg.Region,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxBytes:      cfg.MaxImageBytes,
		logger:        log,
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, downloadURL string, issueID uint) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	contentType, err := imageMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	// Read one byte past the cap to distinguish "at the limit" from "over it".
	data, err := io.ReadAll(io.LimitReader(resp.Body, u.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image body: %w", err)
	}
	if int64(len(data)) > u.maxBytes {
		return "", fmt.Errorf("image exceeds the %d byte limit", u.maxBytes)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("image download returned an empty body")
	}

	key := fmt.Sprintf("issues/%d/original%s", issueID, extensionFor(contentType))
	if err := u.store.Put(ctx, key, contentType, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	u.logger.Debugw("stored issue image", "issue_id", issueID, "key", key, "bytes", len(data))
	return u.assetURL(key), nil
}

func (u *S3Uploader) assetURL(key string) string {
	if u.publicBaseURL != "" {
		return u.publicBaseURL + "/" + key
	}
	if u.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", u.endpoint, u.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}

func imageMediaType(header string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("image download returned no content type")
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return "", fmt.Errorf("failed to parse image content type %q: %w", header, err)
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return "", fmt.Errorf("unexpected content type %q for image download", mediaType)
	}
	return mediaType, nil
}

func extensionFor(mediaType string) string {
	switch mediaType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".img"
	}
}
