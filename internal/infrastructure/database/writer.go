package database

import (
	"context"
	"time"

	"folio/internal/domain/model"
)

type MediaWriter struct {
	db *Database
}

func NewMediaWriter(db *Database) *MediaWriter {
	return &MediaWriter{db: db}
}

func (w *MediaWriter) Insert(ctx context.Context, media *model.Media) error {
	ctx, cancel := w.db.withTimeout(ctx)
	defer cancel()

	if media.UploadDate.IsZero() {
		media.UploadDate = time.Now().UTC()
	}

	return w.db.DB.WithContext(ctx).Create(media).Error
}
