package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository/storage"
)

// Storage implements storage.Storage against an S3-compatible provider.
type Storage struct {
	client *Client
}

func NewStorage(client *Client) *Storage {
	return &Storage{client: client}
}

func (s *Storage) Put(ctx context.Context, key string, body io.Reader, size int64,
	contentType string, upsert bool,
) (entity.StoredObject, error) {
	mc, err := s.client.get()
	if err != nil {
		return entity.StoredObject{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	bucket := s.client.cfg.Bucket

	if !upsert {
		_, err := mc.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
		if err == nil {
			return entity.StoredObject{}, storage.ErrKeyExists
		}
		if !isNoSuchKey(err) {
			return entity.StoredObject{}, err
		}
	}

	_, err = mc.PutObject(ctx, bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return entity.StoredObject{}, err
	}

	return entity.StoredObject{
		Key:       key,
		PublicURL: s.publicURL(key),
	}, nil
}

// Remove is idempotent: removing an absent key reports success.
func (s *Storage) Remove(ctx context.Context, key string) error {
	mc, err := s.client.get()
	if err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err = mc.RemoveObject(ctx, s.client.cfg.Bucket, key, minio.RemoveObjectOptions{})
	if isNoSuchKey(err) {
		return nil
	}

	return err
}

func (s *Storage) Get(ctx context.Context, key string) (io.ReadCloser, int64, string, error) {
	mc, err := s.client.get()
	if err != nil {
		return nil, 0, "", err
	}

	obj, err := mc.GetObject(ctx, s.client.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, "", err
	}

	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if isNoSuchKey(err) {
			return nil, 0, "", storage.ErrNotFound
		}

		return nil, 0, "", err
	}

	return obj, info.Size, info.ContentType, nil
}

func (s *Storage) publicURL(key string) string {
	cfg := s.client.cfg
	if cfg.PublicURL != "" {
		return fmt.Sprintf("%s/%s/%s", cfg.PublicURL, cfg.Bucket, key)
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, cfg.Endpoint, cfg.Bucket, key)
}

func (s *Storage) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.client.cfg.Timeout
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, time.Duration(timeout)*time.Millisecond)
}

func isNoSuchKey(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey"
	}

	return false
}
