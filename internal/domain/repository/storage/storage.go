package storage

import (
	"context"
	"errors"
	"io"

	"folio/internal/domain/entity"
)

// ErrNotFound is returned by Get for keys that do not exist. Remove treats a
// missing key as success so retried deletions stay simple.
var ErrNotFound = errors.New("object not found")

// ErrKeyExists is returned by Put when the key is taken and upsert is false.
var ErrKeyExists = errors.New("object already exists")

// Storage abstracts "put bytes under a key, return a retrievable URL" and
// "remove a key". Backends without directly public URLs return an empty
// PublicURL from Put and must support Get for inline serving.
type Storage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string, upsert bool) (entity.StoredObject, error)
	Remove(ctx context.Context, key string) error
	Get(ctx context.Context, key string) (io.ReadCloser, int64, string, error)
}
