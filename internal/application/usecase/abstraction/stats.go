package abstraction

import (
	"context"

	"folio/internal/domain/dto"
)

type StatsProvider interface {
	Stats(ctx context.Context) (*dto.MediaStats, error)
	Dashboard(ctx context.Context) (*dto.Dashboard, error)
}
