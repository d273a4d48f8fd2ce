// Package storage uploads portfolio images to an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/netx"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
)

const (
	// MaxImageSize is the largest accepted upload.
	MaxImageSize = 5 << 20

	// DefaultFolder is used when the caller does not name one.
	DefaultFolder = "general"

	presignTTL = 15 * time.Minute
	// S3 caps presigned URLs at seven days.
	publicGetTTL = 7 * 24 * time.Hour

	defaultRegion = "us-east-1"
)

var (
	ErrInvalidFolder   = &common.ValidationError{Field: "folder", Message: "Folder name is invalid"}
	ErrInvalidPublicID = &common.ValidationError{Field: "publicId", Message: "Public ID is required"}
	ErrTooLarge        = &common.ValidationError{Field: "image", Message: "Image must be 5MB or smaller"}
	ErrNotImage        = &common.ValidationError{Field: "image", Message: "Only image files are allowed"}
)

var folderPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

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
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in)
	}

	putPresigned = netx.PutPresigned
)

// Config locates the bucket. Empty AccessKey falls back to the default
// AWS credential chain.
type Config struct {
	Bucket        string
	Region        string
	BaseEndpoint  string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

// ImageStore puts images into the bucket under folder/yyyy/mm/<uuid><ext>.
type ImageStore struct {
	cfg     Config
	client  *s3.Client
	presign *s3.PresignClient
	http    *http.Client
	now     func() time.Time
	newID   func() string
}

func NewImageStore(ctx context.Context, c Config) (*ImageStore, error) {
	if c.Bucket == "" {
		return nil, common.ErrStorageDisabled
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(c.Region)}
	if c.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, "")))
	}
	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if c.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &ImageStore{
		cfg:     c,
		client:  client,
		presign: newS3PresignClient(client),
		http:    &http.Client{Timeout: time.Minute},
		now:     time.Now,
		newID:   uuid.NewString,
	}, nil
}

// Upload stores an image read from r. contentType must be image/*.
func (s *ImageStore) Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (*models.Image, error) {
	if folder == "" {
		folder = DefaultFolder
	}
	if !folderPattern.MatchString(folder) {
		return nil, ErrInvalidFolder
	}
	if !IsImage(contentType) {
		return nil, ErrNotImage
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, ErrTooLarge
	}

	key := s.objectKey(folder, filename)
	req, err := presignPutObject(s.presign, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}
	if err := putPresigned(ctx, s.http, req.URL, contentType, data); err != nil {
		return nil, err
	}

	link, err := s.URL(ctx, key)
	if err != nil {
		return nil, err
	}
	return &models.Image{URL: link, PublicID: key}, nil
}

// Delete removes the object. Deleting a missing key is not an error.
func (s *ImageStore) Delete(ctx context.Context, publicID string) error {
	if strings.TrimSpace(publicID) == "" {
		return ErrInvalidPublicID
	}
	_, err := deleteObject(s.client, ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// URL returns the permanent address of an object: PublicBaseURL/key when
// configured, otherwise the bucket URL on BaseEndpoint (path style) or the
// AWS virtual-hosted URL. Time-limited links come from PresignedGetURL.
func (s *ImageStore) URL(_ context.Context, publicID string) (string, error) {
	key := escapeKey(publicID)
	switch {
	case s.cfg.PublicBaseURL != "":
		return strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + key, nil
	case s.cfg.BaseEndpoint != "":
		return strings.TrimRight(s.cfg.BaseEndpoint, "/") + "/" + url.PathEscape(s.cfg.Bucket) + "/" + key, nil
	default:
		region := s.cfg.Region
		if region == "" {
			region = defaultRegion
		}
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, region, key), nil
	}
}

// PresignedGetURL returns a GET link for publicID that expires after
// seven days, the longest S3 allows.
func (s *ImageStore) PresignedGetURL(ctx context.Context, publicID string) (string, error) {
	req, err := presignGetObject(s.presign, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(publicID),
	}, s3.WithPresignExpires(publicGetTTL))
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}
	return req.URL, nil
}

func (s *ImageStore) objectKey(folder, filename string) string {
	d := s.now().UTC()
	ext := strings.ToLower(path.Ext(filename))
	if len(ext) > 10 {
		ext = ""
	}
	return fmt.Sprintf("%s/%04d/%02d/%s%s", folder, d.Year(), int(d.Month()), s.newID(), ext)
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// IsImage reports whether contentType is an image/* media type.
func IsImage(contentType string) bool {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mt)), "image/")
}

// IsDisabled reports whether err means no bucket is configured.
func IsDisabled(err error) bool {
	return errors.Is(err, common.ErrStorageDisabled)
}
