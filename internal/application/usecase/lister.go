package usecase

import (
	"context"

	"folio/internal/domain/apperr"
	"folio/internal/domain/dto"
	"folio/internal/domain/repository/database"
)

type Lister struct {
	lister   database.Lister
	resolver *Resolver
}

func NewLister(lister database.Lister, resolver *Resolver) *Lister {
	return &Lister{
		lister:   lister,
		resolver: resolver,
	}
}

// List returns all media newest first, optionally narrowed to one section.
func (l *Lister) List(ctx context.Context, section string) ([]dto.MediaItem, error) {
	media, err := l.lister.List(ctx, database.ListFilter{Section: section})
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "Error fetching media", err)
	}

	return l.resolver.Items(media), nil
}

// ListPage is the admin listing: section/type filters plus pagination.
func (l *Lister) ListPage(ctx context.Context, section, mediaType string, page, limit int) (*dto.MediaPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	filter := database.ListFilter{
		Section:   section,
		MediaType: mediaType,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}

	media, err := l.lister.List(ctx, filter)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "Error fetching media", err)
	}

	total, err := l.lister.Count(ctx, filter)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "Error fetching media", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.MediaPage{
		Media: l.resolver.Items(media),
		Pagination: dto.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}, nil
}
