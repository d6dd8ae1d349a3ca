package database

import (
	"context"

	"folio/internal/domain/model"
)

type MediaRemover struct {
	db *Database
}

func NewMediaRemover(db *Database) *MediaRemover {
	return &MediaRemover{db: db}
}

func (r *MediaRemover) RemoveByID(ctx context.Context, id uint) (int64, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	result := r.db.DB.WithContext(ctx).Delete(&model.Media{}, id)

	return result.RowsAffected, result.Error
}

func (r *MediaRemover) RemoveByIDs(ctx context.Context, ids []uint) (int64, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	result := r.db.DB.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Media{})

	return result.RowsAffected, result.Error
}
