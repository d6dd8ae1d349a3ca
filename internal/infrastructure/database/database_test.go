package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"folio/internal/domain/model"
)

func setupDB(t *testing.T) *Database {
	t.Helper()

	db, err := Connect(&Config{
		Path:         t.TempDir() + "/test.db",
		QueryTimeout: 30000,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Stop()
	})

	return db
}

func seedMedia(t *testing.T, db *Database, n int, section, mediaType string) []model.Media {
	t.Helper()

	writer := NewMediaWriter(db)
	out := make([]model.Media, 0, n)

	base := time.Now().UTC().Add(-time.Duration(n) * time.Hour)
	for i := 0; i < n; i++ {
		media := model.Media{
			Filename:     fmt.Sprintf("%s-%d.jpg", section, i),
			OriginalName: fmt.Sprintf("original-%d.jpg", i),
			Title:        fmt.Sprintf("title %d", i),
			Description:  fmt.Sprintf("description %d", i),
			Section:      section,
			MediaType:    mediaType,
			StorageKey:   fmt.Sprintf("%s/%s-%d.jpg", section, section, i),
			FileSize:     int64(1000 * (i + 1)),
			MimeType:     "image/jpeg",
			UploadDate:   base.Add(time.Duration(i) * time.Hour),
		}

		require.NoError(t, writer.Insert(context.Background(), &media))
		out = append(out, media)
	}

	return out
}
