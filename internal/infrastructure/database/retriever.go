package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"folio/internal/domain/model"
	mediaRepository "folio/internal/domain/repository/database"
)

type MediaRetriever struct {
	db *Database
}

func NewMediaRetriever(db *Database) *MediaRetriever {
	return &MediaRetriever{db: db}
}

func (r *MediaRetriever) GetByID(ctx context.Context, id uint) (*model.Media, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var media model.Media
	err := r.db.DB.WithContext(ctx).First(&media, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mediaRepository.ErrNotFound
		}

		return nil, err
	}

	return &media, nil
}

func (r *MediaRetriever) GetByIDs(ctx context.Context, ids []uint) ([]model.Media, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var media []model.Media
	err := r.db.DB.WithContext(ctx).Where("id IN ?", ids).Find(&media).Error

	return media, err
}
