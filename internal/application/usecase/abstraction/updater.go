package abstraction

import (
	"context"

	"folio/internal/domain/dto"
)

type Updater interface {
	Update(ctx context.Context, id uint, title, description string) (*dto.MediaItem, error)
}
