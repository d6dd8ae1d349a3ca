package database

import (
	"context"

	"folio/internal/domain/dto"
)

// Aggregator answers the dashboard queries. All of them are derivable from
// a scan/group over the media table; there is no separate audit log.
type Aggregator interface {
	Stats(ctx context.Context) (*dto.MediaStats, error)
	CountByType(ctx context.Context, mediaType string) (int64, error)
	DailyCounts(ctx context.Context, days int) ([]dto.DailyCount, error)
}
