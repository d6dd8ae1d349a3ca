package database

import "context"

type Updater interface {
	// UpdateInfo rewrites title and description, refreshing updated_at.
	// It returns the number of rows changed; 0 signals a missing id.
	UpdateInfo(ctx context.Context, id uint, title, description string) (int64, error)
}
