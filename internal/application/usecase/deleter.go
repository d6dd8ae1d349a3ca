package usecase

import (
	"context"
	"errors"

	"folio/internal/domain/apperr"
	"folio/internal/domain/repository/database"
	"folio/internal/domain/repository/storage"
	"folio/pkg/logger"
)

type Deleter struct {
	retriever database.Retriever
	remover   database.Remover
	storage   storage.Storage
}

func NewDeleter(retriever database.Retriever, remover database.Remover,
	store storage.Storage,
) *Deleter {
	return &Deleter{
		retriever: retriever,
		remover:   remover,
		storage:   store,
	}
}

// Delete removes the metadata row, then removes the blob best-effort.
// Metadata deletion is the action of record: a failed blob removal is
// logged and the call still succeeds.
func (d *Deleter) Delete(ctx context.Context, id uint) error {
	media, err := d.retriever.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return apperr.New(apperr.NotFound, "Media not found")
		}

		return apperr.Wrap(apperr.Persistence, "Error deleting media", err)
	}

	rows, err := d.remover.RemoveByID(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.Persistence, "Error deleting media", err)
	}
	if rows == 0 {
		return apperr.New(apperr.NotFound, "Media not found")
	}

	if err := d.storage.Remove(ctx, media.StorageKey); err != nil {
		logger.Error("blob removal failed after metadata delete", "key", media.StorageKey, "err", err)
	}

	return nil
}

// DeleteMany applies the same row-first, blob-best-effort contract to a
// batch and returns how many rows were removed.
func (d *Deleter) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, apperr.New(apperr.Validation, "Media IDs array is required")
	}

	media, err := d.retriever.GetByIDs(ctx, ids)
	if err != nil {
		return 0, apperr.Wrap(apperr.Persistence, "Error deleting media items", err)
	}

	rows, err := d.remover.RemoveByIDs(ctx, ids)
	if err != nil {
		return 0, apperr.Wrap(apperr.Persistence, "Error deleting media items", err)
	}

	for i := range media {
		if err := d.storage.Remove(ctx, media[i].StorageKey); err != nil {
			logger.Error("blob removal failed during bulk delete", "key", media[i].StorageKey, "err", err)
		}
	}

	return rows, nil
}
