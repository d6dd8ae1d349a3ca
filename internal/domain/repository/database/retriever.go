package database

import (
	"context"
	"errors"

	"folio/internal/domain/model"
)

// ErrNotFound is returned for lookups of identifiers that have no row. The
// infrastructure layer wraps the driver sentinel so callers stay decoupled.
var ErrNotFound = errors.New("media not found")

type Retriever interface {
	GetByID(ctx context.Context, id uint) (*model.Media, error)
	GetByIDs(ctx context.Context, ids []uint) ([]model.Media, error)
}
