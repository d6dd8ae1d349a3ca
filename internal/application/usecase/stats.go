package usecase

import (
	"context"

	"folio/internal/domain/apperr"
	"folio/internal/domain/dto"
	"folio/internal/domain/model"
	"folio/internal/domain/repository/database"
)

type StatsProvider struct {
	aggregator database.Aggregator
	lister     database.Lister
	resolver   *Resolver
}

func NewStatsProvider(aggregator database.Aggregator, lister database.Lister,
	resolver *Resolver,
) *StatsProvider {
	return &StatsProvider{
		aggregator: aggregator,
		lister:     lister,
		resolver:   resolver,
	}
}

func (s *StatsProvider) Stats(ctx context.Context) (*dto.MediaStats, error) {
	stats, err := s.aggregator.Stats(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "Error fetching statistics", err)
	}

	return stats, nil
}

// Dashboard assembles the admin landing data: summary counters, the ten
// most recent uploads, per-section stats and the last-7-days histogram.
func (s *StatsProvider) Dashboard(ctx context.Context) (*dto.Dashboard, error) {
	stats, err := s.aggregator.Stats(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "Error fetching dashboard data", err)
	}

	images, err := s.aggregator.CountByType(ctx, model.MediaTypeImage)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "Error fetching dashboard data", err)
	}

	videos, err := s.aggregator.CountByType(ctx, model.MediaTypeVideo)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "Error fetching dashboard data", err)
	}

	recent, err := s.lister.List(ctx, database.ListFilter{Limit: 10})
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "Error fetching dashboard data", err)
	}

	daily, err := s.aggregator.DailyCounts(ctx, 7)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "Error fetching dashboard data", err)
	}

	return &dto.Dashboard{
		Summary: dto.DashboardSummary{
			TotalMedia:   stats.Total,
			TotalImages:  images,
			TotalVideos:  videos,
			TotalStorage: stats.TotalSize,
		},
		RecentUploads: s.resolver.Items(recent),
		SectionStats:  stats.Sections,
		RecentStats:   daily,
	}, nil
}
