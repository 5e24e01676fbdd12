package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"faepa_workflow/internal/infrastructure/config"
	"faepa_workflow/internal/usecase/interfaces"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

var ErrAttachmentNotFound = errors.New("attachment not found")

const defaultURLExpiry = 7 * 24 * time.Hour

// objectStore is the part of *minio.Client used for receipts.
type objectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

// MinIOAttachmentStore keeps payment receipts in one bucket and hands out
// presigned download links for them.
type MinIOAttachmentStore struct {
	client objectStore
	bucket string
	expiry time.Duration
}

var _ interfaces.IAttachmentStore = (*MinIOAttachmentStore)(nil)

func NewMinIOAttachmentStore(client objectStore, bucket string, expiry time.Duration) *MinIOAttachmentStore {
	if expiry <= 0 || expiry > defaultURLExpiry {
		expiry = defaultURLExpiry
	}
	return &MinIOAttachmentStore{client: client, bucket: bucket, expiry: expiry}
}

// ConnectMinIO creates the client and the bucket when it does not exist yet.
func ConnectMinIO(ctx context.Context, cfg config.MinIOConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Printf("[attachments][minio] bucket created bucket=%s", cfg.Bucket)
	}
	return client, nil
}

func (s *MinIOAttachmentStore) Upload(ctx context.Context, ref string, body io.Reader, size int64, contentType string) error {
	key := objectKey(ref)
	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload attachment: %w", err)
	}
	log.Printf("[attachments][minio] uploaded bucket=%s key=%s size=%d", s.bucket, key, size)
	return nil
}

// ResolveURL accepts a bare object key or an s3://bucket/key reference.
func (s *MinIOAttachmentStore) ResolveURL(ctx context.Context, ref string) (string, error) {
	key := objectKey(ref)
	if key == "" {
		return "", ErrAttachmentNotFound
	}

	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return "", ErrAttachmentNotFound
		}
		return "", fmt.Errorf("failed to check attachment: %w", err)
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return u.String(), nil
}

func objectKey(ref string) string {
	ref = strings.TrimSpace(ref)
	if rest, ok := strings.CutPrefix(ref, "s3://"); ok {
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			return rest[i+1:]
		}
		return ""
	}
	return strings.TrimPrefix(ref, "/")
}
