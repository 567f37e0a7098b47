package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"gemtrade/internal/config"
)

// bucketSetupTimeout bounds the existence check and creation of the document
// bucket at startup.
const bucketSetupTimeout = 10 * time.Second

// minioStore holds verification documents and gemstone imagery in a single
// bucket on any S3-compatible backend. All methods stream; nothing touches
// local disk, so uploads never outlive a request on the app host.
type minioStore struct {
	client *minio.Client
	bucket string
}

// NewMinIO connects to the configured endpoint and makes sure the document
// bucket exists, creating it on first boot. Missing endpoint, credentials, or
// bucket name fail fast so a misconfigured server never accepts uploads it
// cannot store.
func NewMinIO(cfg config.MinIOConfig) (Storage, error) {
	switch {
	case cfg.Endpoint == "":
		return nil, fmt.Errorf("object storage endpoint is required")
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return nil, fmt.Errorf("object storage credentials are required")
	case cfg.Bucket == "":
		return nil, fmt.Errorf("object storage bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create object storage client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), bucketSetupTimeout)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", cfg.Bucket, err)
		}
	}

	return &minioStore{client: client, bucket: cfg.Bucket}, nil
}

// Put streams an uploaded document to the bucket under the given key. The
// caller (document intake) has already sized and typed the payload, so the
// declared size and content type are passed through as-is.
func (s *minioStore) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	uploaded, err := s.client.PutObject(ctx, s.bucket, key, r, opt.Size, minio.PutObjectOptions{
		ContentType:  opt.ContentType,
		UserMetadata: opt.Metadata,
	})
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{
		Key:         key,
		Size:        uploaded.Size,
		ETag:        uploaded.ETag,
		ContentType: opt.ContentType,
		// PutObject does not report LastModified; upload time is close enough
		// for response headers.
		LastModified: time.Now(),
		Metadata:     opt.Metadata,
	}, nil
}

// Get opens a stored document for streaming back to the client, e.g. when
// serving /uploads/:file. A Stat round-trip fills in size and content type
// without pulling the body into memory.
func (s *minioStore) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	st, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, ObjectInfo{}, err
	}
	return obj, ObjectInfo{
		Key:          key,
		Size:         st.Size,
		ETag:         st.ETag,
		ContentType:  st.ContentType,
		LastModified: st.LastModified,
		Metadata:     st.UserMetadata,
	}, nil
}

// Delete removes a stored document, e.g. when cleaning up an orphaned upload.
func (s *minioStore) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// PresignGet returns a time-limited download URL so documents can be shared
// without proxying bytes through the API.
func (s *minioStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
