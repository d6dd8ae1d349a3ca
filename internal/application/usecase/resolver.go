package usecase

import (
	"folio/internal/domain/dto"
	"folio/internal/domain/model"
)

// Resolver is the single place the resolved URL is chosen: a stored
// provider URL always wins; otherwise the URL is derived from the storage
// key under the local uploads base.
type Resolver struct {
	LocalBase string
}

func NewResolver(localBase string) *Resolver {
	if localBase == "" {
		localBase = "/uploads"
	}

	return &Resolver{LocalBase: localBase}
}

func (r *Resolver) Resolve(media *model.Media) string {
	if media.ProviderURL != "" {
		return media.ProviderURL
	}

	return r.LocalBase + "/" + media.StorageKey
}

func (r *Resolver) Item(media *model.Media) dto.MediaItem {
	return dto.MediaItem{Media: *media, URL: r.Resolve(media)}
}

func (r *Resolver) Items(media []model.Media) []dto.MediaItem {
	items := make([]dto.MediaItem, 0, len(media))
	for i := range media {
		items = append(items, r.Item(&media[i]))
	}

	return items
}
