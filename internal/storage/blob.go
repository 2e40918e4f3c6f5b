package storage

import (
	"bytes"
	"context"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"placecell/internal/common"
)

type BlobConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	URLTTL    time.Duration
}

// BlobStore keeps uploaded resumes in an S3-compatible bucket and hands out
// time-limited read URLs.
type BlobStore struct {
	client *minio.Client
	bucket string
	urlTTL time.Duration
}

func NewBlobStore(ctx context.Context, cfg BlobConfig) (*BlobStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create blob client", err)
	}
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to check blob bucket", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to create blob bucket", err)
		}
	}
	return &BlobStore{client: client, bucket: cfg.Bucket, urlTTL: cfg.URLTTL}, nil
}

func (s *BlobStore) Upload(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to upload blob", err)
	}
	return nil
}

func (s *BlobStore) PresignedURL(ctx context.Context, name string) (string, error) {
	signed, err := s.client.PresignedGetObject(ctx, s.bucket, name, s.urlTTL, url.Values{})
	if err != nil {
		return "", common.NewError(common.CodeInternal, "failed to sign blob url", err)
	}
	return signed.String(), nil
}

func (s *BlobStore) Remove(ctx context.Context, name string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return common.NewError(common.CodeInternal, "failed to remove blob", err)
	}
	return nil
}
