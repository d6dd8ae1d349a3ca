package usecase

import (
	"context"

	"folio/internal/domain/apperr"
	"folio/internal/domain/dto"
	"folio/internal/domain/repository/database"
)

type Updater struct {
	updater   database.Updater
	retriever database.Retriever
	resolver  *Resolver
}

func NewUpdater(updater database.Updater, retriever database.Retriever,
	resolver *Resolver,
) *Updater {
	return &Updater{
		updater:   updater,
		retriever: retriever,
		resolver:  resolver,
	}
}

// Update rewrites title and description. Both fields are required; there is
// no partial update of one without the other.
func (u *Updater) Update(ctx context.Context, id uint, title, description string) (*dto.MediaItem, error) {
	if title == "" || description == "" {
		return nil, apperr.New(apperr.Validation, "Title and description are required")
	}

	rows, err := u.updater.UpdateInfo(ctx, id, title, description)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "Error updating media", err)
	}
	if rows == 0 {
		return nil, apperr.New(apperr.NotFound, "Media not found")
	}

	media, err := u.retriever.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "Error updating media", err)
	}

	item := u.resolver.Item(media)

	return &item, nil
}
