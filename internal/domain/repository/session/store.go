package session

import (
	"context"

	"folio/internal/domain/dto"
)

// Store holds login sessions. Get returns (nil, nil) for unknown or expired
// ids; Destroy of an unknown id is a no-op.
type Store interface {
	Create(ctx context.Context, user dto.User) (string, error)
	Get(ctx context.Context, id string) (*dto.User, error)
	Destroy(ctx context.Context, id string) error
}
