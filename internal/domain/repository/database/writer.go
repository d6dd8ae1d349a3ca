package database

import (
	"context"

	"folio/internal/domain/model"
)

type Writer interface {
	Insert(ctx context.Context, media *model.Media) error
}
