package abstraction

import (
	"context"

	"folio/internal/domain/entity"
)

type Getter interface {
	Serve(ctx context.Context, id uint) (*entity.ServeResult, error)
}
