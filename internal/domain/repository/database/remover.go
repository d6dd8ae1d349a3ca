package database

import "context"

type Remover interface {
	// RemoveByID deletes one row and returns the number of rows deleted.
	RemoveByID(ctx context.Context, id uint) (int64, error)
	RemoveByIDs(ctx context.Context, ids []uint) (int64, error)
}
