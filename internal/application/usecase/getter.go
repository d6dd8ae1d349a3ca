package usecase

import (
	"context"
	"errors"

	"folio/internal/domain/apperr"
	"folio/internal/domain/entity"
	"folio/internal/domain/repository/database"
	"folio/internal/domain/repository/storage"
)

type Getter struct {
	retriever database.Retriever
	storage   storage.Storage
}

func NewGetter(retriever database.Retriever, store storage.Storage) *Getter {
	return &Getter{
		retriever: retriever,
		storage:   store,
	}
}

// Serve decides how one media item reaches the client: items with a stored
// provider URL redirect there; everything else streams through the backend.
func (g *Getter) Serve(ctx context.Context, id uint) (*entity.ServeResult, error) {
	media, err := g.retriever.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "Media not found")
		}

		return nil, apperr.Wrap(apperr.Persistence, "Error serving media", err)
	}

	if media.ProviderURL != "" {
		return &entity.ServeResult{RedirectURL: media.ProviderURL}, nil
	}

	body, size, contentType, err := g.storage.Get(ctx, media.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "File not available")
		}

		return nil, apperr.Wrap(apperr.Storage, "Error serving media", err)
	}

	if contentType == "" || contentType == "application/octet-stream" {
		contentType = media.MimeType
	}

	return &entity.ServeResult{
		Body:        body,
		Size:        size,
		ContentType: contentType,
	}, nil
}
