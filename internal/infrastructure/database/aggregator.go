package database

import (
	"context"
	"time"

	"folio/internal/domain/dto"
	"folio/internal/domain/model"
)

type MediaAggregator struct {
	db *Database
}

func NewMediaAggregator(db *Database) *MediaAggregator {
	return &MediaAggregator{db: db}
}

func (a *MediaAggregator) Stats(ctx context.Context) (*dto.MediaStats, error) {
	ctx, cancel := a.db.withTimeout(ctx)
	defer cancel()

	stats := &dto.MediaStats{}

	if err := a.db.DB.WithContext(ctx).Model(&model.Media{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	err := a.db.DB.WithContext(ctx).Model(&model.Media{}).
		Select("section, COUNT(*) AS count, COALESCE(SUM(file_size), 0) AS total_size").
		Group("section").
		Order("count DESC").
		Scan(&stats.Sections).Error
	if err != nil {
		return nil, err
	}

	err = a.db.DB.WithContext(ctx).Model(&model.Media{}).
		Select("media_type, COUNT(*) AS count").
		Group("media_type").
		Scan(&stats.Types).Error
	if err != nil {
		return nil, err
	}

	err = a.db.DB.WithContext(ctx).Model(&model.Media{}).
		Select("COALESCE(SUM(file_size), 0)").
		Scan(&stats.TotalSize).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (a *MediaAggregator) CountByType(ctx context.Context, mediaType string) (int64, error) {
	ctx, cancel := a.db.withTimeout(ctx)
	defer cancel()

	var count int64
	err := a.db.DB.WithContext(ctx).Model(&model.Media{}).
		Where("media_type = ?", mediaType).
		Count(&count).Error

	return count, err
}

// DailyCounts groups uploads per calendar day over the trailing window.
func (a *MediaAggregator) DailyCounts(ctx context.Context, days int) ([]dto.DailyCount, error) {
	ctx, cancel := a.db.withTimeout(ctx)
	defer cancel()

	since := time.Now().UTC().AddDate(0, 0, -days)

	var counts []dto.DailyCount
	err := a.db.DB.WithContext(ctx).Model(&model.Media{}).
		Select("DATE(upload_date) AS date, COUNT(*) AS count").
		Where("upload_date >= ?", since).
		Group("DATE(upload_date)").
		Order("date DESC").
		Scan(&counts).Error

	return counts, err
}
