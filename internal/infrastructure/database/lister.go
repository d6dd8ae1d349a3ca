package database

import (
	"context"

	"gorm.io/gorm"

	"folio/internal/domain/model"
	mediaRepository "folio/internal/domain/repository/database"
)

type MediaLister struct {
	db *Database
}

func NewMediaLister(db *Database) *MediaLister {
	return &MediaLister{db: db}
}

func (l *MediaLister) List(ctx context.Context, filter mediaRepository.ListFilter) ([]model.Media, error) {
	ctx, cancel := l.db.withTimeout(ctx)
	defer cancel()

	query := applyFilter(l.db.DB.WithContext(ctx).Model(&model.Media{}), filter).
		Order("upload_date DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var media []model.Media
	err := query.Find(&media).Error

	return media, err
}

func (l *MediaLister) Count(ctx context.Context, filter mediaRepository.ListFilter) (int64, error) {
	ctx, cancel := l.db.withTimeout(ctx)
	defer cancel()

	var total int64
	err := applyFilter(l.db.DB.WithContext(ctx).Model(&model.Media{}), filter).
		Count(&total).Error

	return total, err
}

func applyFilter(query *gorm.DB, filter mediaRepository.ListFilter) *gorm.DB {
	if filter.Section != "" {
		query = query.Where("section = ?", filter.Section)
	}
	if filter.MediaType != "" {
		query = query.Where("media_type = ?", filter.MediaType)
	}

	return query
}
