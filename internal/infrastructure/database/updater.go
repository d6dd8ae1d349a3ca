package database

import (
	"context"
	"time"

	"folio/internal/domain/model"
)

type MediaUpdater struct {
	db *Database
}

func NewMediaUpdater(db *Database) *MediaUpdater {
	return &MediaUpdater{db: db}
}

func (u *MediaUpdater) UpdateInfo(ctx context.Context, id uint, title, description string) (int64, error) {
	ctx, cancel := u.db.withTimeout(ctx)
	defer cancel()

	result := u.db.DB.WithContext(ctx).Model(&model.Media{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":       title,
			"description": description,
			"updated_at":  time.Now().UTC(),
		})

	return result.RowsAffected, result.Error
}
