package minio

import (
	"errors"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"folio/pkg/logger"
)

// Client wraps the minio SDK client behind a once-guarded lazy constructor.
// Missing provider configuration is only an error when the backend is first
// used, not at process start.
type Client struct {
	cfg *Config

	once   sync.Once
	client *minio.Client
	err    error
}

func New(cfg *Config) *Client {
	return &Client{cfg: cfg}
}

func (c *Client) get() (*minio.Client, error) {
	c.once.Do(func() {
		if c.cfg.Endpoint == "" || c.cfg.AccessKey == "" || c.cfg.SecretKey == "" {
			c.err = errors.New("object storage is not configured")

			return
		}

		logger.Info("connecting to object storage", "endpoint", c.cfg.Endpoint)

		c.client, c.err = minio.New(c.cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(c.cfg.AccessKey, c.cfg.SecretKey, ""),
			Secure: c.cfg.UseSSL,
		})
	})

	return c.client, c.err
}
