package abstraction

import (
	"context"

	"folio/internal/application/usecase"
	"folio/internal/domain/dto"
)

type Uploader interface {
	Upload(ctx context.Context, in usecase.UploadInput) (*dto.MediaItem, error)
}
