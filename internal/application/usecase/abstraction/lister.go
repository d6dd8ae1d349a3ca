package abstraction

import (
	"context"

	"folio/internal/domain/dto"
)

type Lister interface {
	List(ctx context.Context, section string) ([]dto.MediaItem, error)
	ListPage(ctx context.Context, section, mediaType string, page, limit int) (*dto.MediaPage, error)
}
