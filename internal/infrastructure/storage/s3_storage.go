// Package storage uploads catalog media (cover images, photos, logos) to
// S3-compatible object storage and returns the public URL forms store.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/UmairZakria/gbs-dashboard2/internal/domain/shared"
	infraconfig "github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/config"
)

// MaxUploadSize bounds a single media file.
const MaxUploadSize = 10 << 20

// Media describes an uploaded object.
type Media struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}

// S3ObjectStorage stores media using AWS S3 SDK v2.
// It is compatible with any S3-compatible storage (AWS S3, MinIO, etc.)
type S3ObjectStorage struct {
	client        *s3.Client
	bucket        string
	endpoint      string
	usePathStyle  bool
	publicBaseURL string
	keyPrefix     string
	logger        *zap.Logger
	now           func() time.Time
}

// S3ObjectStorageOption is a functional option for configuring S3ObjectStorage
type S3ObjectStorageOption func(*S3ObjectStorage)

// WithLogger sets a custom logger for S3ObjectStorage
func WithLogger(logger *zap.Logger) S3ObjectStorageOption {
	return func(s *S3ObjectStorage) {
		s.logger = logger
	}
}

// WithClock overrides the clock used to date object keys
func WithClock(now func() time.Time) S3ObjectStorageOption {
	return func(s *S3ObjectStorage) {
		s.now = now
	}
}

// NewS3ObjectStorage creates a new S3ObjectStorage from configuration.
func NewS3ObjectStorage(cfg *infraconfig.StorageConfig, opts ...S3ObjectStorageOption) (*S3ObjectStorage, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}

	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.AccessKey == "" {
		return nil, errors.New("storage access key is required")
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("storage secret key is required")
	}

	endpoint := cfg.Endpoint
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		if cfg.UseSSL {
			endpoint = "https://" + endpoint
		} else {
			endpoint = "http://" + endpoint
		}
	}
	if endpoint != "" {
		if _, err := url.Parse(endpoint); err != nil {
			return nil, fmt.Errorf("invalid storage endpoint: %w", err)
		}
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	storage := &S3ObjectStorage{
		client:        client,
		bucket:        cfg.Bucket,
		endpoint:      endpoint,
		usePathStyle:  cfg.UsePathStyle,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		keyPrefix:     strings.Trim(cfg.KeyPrefix, "/"),
		logger:        zap.NewNop(),
		now:           time.Now,
	}
	if storage.publicBaseURL == "" {
		storage.publicBaseURL = defaultPublicBase(endpoint, cfg.Bucket, region, cfg.UsePathStyle)
	}

	for _, opt := range opts {
		opt(storage)
	}

	return storage, nil
}

func defaultPublicBase(endpoint, bucket, region string, pathStyle bool) string {
	if endpoint == "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	endpoint = strings.TrimSuffix(endpoint, "/")
	if pathStyle {
		return endpoint + "/" + bucket
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint + "/" + bucket
	}
	u.Host = bucket + "." + u.Host
	return u.String()
}

// ObjectKey builds the storage key for a file attached to the given entity
// collection: <prefix>/<entity>/<yyyy>/<mm>/<uuid>-<slug>.<ext>
func (s *S3ObjectStorage) ObjectKey(entity, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := shared.Slugify(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if base == "" {
		base = "file"
	}
	if entity == "" {
		entity = "misc"
	}

	now := s.now().UTC()
	name := fmt.Sprintf("%s-%s%s", uuid.NewString()[:8], base, ext)
	return path.Join(s.keyPrefix, shared.Slugify(entity), now.Format("2006"), now.Format("01"), name)
}

// PublicURL returns the URL under which an object is served.
func (s *S3ObjectStorage) PublicURL(storageKey string) string {
	segments := strings.Split(storageKey, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.publicBaseURL + "/" + strings.Join(segments, "/")
}

// UploadFile reads a local file and stores it under a generated key.
func (s *S3ObjectStorage) UploadFile(ctx context.Context, entity, filePath string) (*Media, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading media file: %w", err)
	}
	if info.IsDir() {
		return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("%s is a directory", filePath))
	}
	if info.Size() > MaxUploadSize {
		return nil, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("%s is %d bytes, the limit is %d", filepath.Base(filePath), info.Size(), MaxUploadSize))
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading media file: %w", err)
	}

	key := s.ObjectKey(entity, filePath)
	contentType := DetectContentType(filePath, data)
	if err := s.Upload(ctx, key, data, contentType); err != nil {
		return nil, err
	}

	media := &Media{
		Key:         key,
		URL:         s.PublicURL(key),
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	s.logger.Info("Media uploaded",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.String("content_type", contentType),
		zap.Int64("size", media.Size),
	)
	return media, nil
}

// DetectContentType picks a MIME type from the extension, falling back to
// content sniffing.
func DetectContentType(filename string, data []byte) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}

// Upload uploads data directly to storage.
func (s *S3ObjectStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(storageKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}

	return nil
}

// DeleteObject deletes an object from storage.
func (s *S3ObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// ObjectExists checks if an object exists in storage.
func (s *S3ObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageKey),
	})
	if err != nil {
		var notFound *types.NotFound
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
			return false, nil
		}
		// Some S3-compatible services report a missing key differently
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "NoSuchKey") {
			return false, nil
		}
		return false, fmt.Errorf("failed to check object existence: %w", err)
	}

	return true, nil
}

// KeyFromURL maps a public URL produced by PublicURL back to its key.
func (s *S3ObjectStorage) KeyFromURL(publicURL string) (string, bool) {
	prefix := s.publicBaseURL + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	key, err := url.PathUnescape(strings.TrimPrefix(publicURL, prefix))
	if err != nil || key == "" {
		return "", false
	}
	return key, true
}

// GetBucket returns the bucket name
func (s *S3ObjectStorage) GetBucket() string {
	return s.bucket
}
