package database

import (
	"context"

	"folio/internal/domain/model"
)

// ListFilter narrows a listing. Zero values mean "no filter"; Limit 0 means
// no pagination. Results are always newest first by upload date.
type ListFilter struct {
	Section   string
	MediaType string
	Limit     int
	Offset    int
}

type Lister interface {
	List(ctx context.Context, filter ListFilter) ([]model.Media, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
}
