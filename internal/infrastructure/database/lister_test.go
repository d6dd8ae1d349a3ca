package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	repo "folio/internal/domain/repository/database"
)

func TestListNewestFirst(t *testing.T) {
	t.Parallel()
	db := setupDB(t)

	seedMedia(t, db, 5, "news", "image")
	lister := NewMediaLister(db)

	got, err := lister.List(context.Background(), repo.ListFilter{})
	require.NoError(t, err)
	require.Len(t, got, 5)

	for i := 1; i < len(got); i++ {
		require.False(t, got[i].UploadDate.After(got[i-1].UploadDate),
			"rows must be ordered newest first")
	}
}

func TestListBySectionAndType(t *testing.T) {
	t.Parallel()
	db := setupDB(t)

	seedMedia(t, db, 3, "news", "image")
	seedMedia(t, db, 2, "sports", "video")
	lister := NewMediaLister(db)

	news, err := lister.List(context.Background(), repo.ListFilter{Section: "news"})
	require.NoError(t, err)
	require.Len(t, news, 3)

	videos, err := lister.List(context.Background(), repo.ListFilter{MediaType: "video"})
	require.NoError(t, err)
	require.Len(t, videos, 2)

	both, err := lister.List(context.Background(), repo.ListFilter{Section: "sports", MediaType: "video"})
	require.NoError(t, err)
	require.Len(t, both, 2)

	none, err := lister.List(context.Background(), repo.ListFilter{Section: "sports", MediaType: "image"})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestListPagination(t *testing.T) {
	t.Parallel()
	db := setupDB(t)

	seedMedia(t, db, 7, "gem", "image")
	lister := NewMediaLister(db)

	first, err := lister.List(context.Background(), repo.ListFilter{Limit: 3})
	require.NoError(t, err)
	require.Len(t, first, 3)

	second, err := lister.List(context.Background(), repo.ListFilter{Limit: 3, Offset: 3})
	require.NoError(t, err)
	require.Len(t, second, 3)
	require.NotEqual(t, first[0].ID, second[0].ID)

	last, err := lister.List(context.Background(), repo.ListFilter{Limit: 3, Offset: 6})
	require.NoError(t, err)
	require.Len(t, last, 1)
}

func TestCount(t *testing.T) {
	t.Parallel()
	db := setupDB(t)

	seedMedia(t, db, 4, "news", "image")
	seedMedia(t, db, 2, "news", "video")
	lister := NewMediaLister(db)

	total, err := lister.Count(context.Background(), repo.ListFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 6, total)

	images, err := lister.Count(context.Background(), repo.ListFilter{MediaType: "image"})
	require.NoError(t, err)
	require.EqualValues(t, 4, images)
}
