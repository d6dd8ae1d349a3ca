package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedListRepo(t *testing.T, repo *fakeRepo, store *fakeStorage) {
	t.Helper()

	seedRepo(t, repo, store, "a.png", "b.png", "c.png")
}

func TestListResolvesURLs(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	seedListRepo(t, repo, newFakeStorage())

	lister := NewLister(repo, NewResolver("/uploads"))

	items, err := lister.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "/uploads/news/a.png", items[0].URL)

	none, err := lister.List(context.Background(), "sports")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestListPageDefaults(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	seedListRepo(t, repo, newFakeStorage())

	lister := NewLister(repo, NewResolver("/uploads"))

	page, err := lister.ListPage(context.Background(), "", "", 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, page.Pagination.Page)
	require.Equal(t, 20, page.Pagination.Limit)
	require.EqualValues(t, 3, page.Pagination.Total)
	require.Equal(t, 1, page.Pagination.TotalPages)
	require.Len(t, page.Media, 3)
}

func TestListPagePagination(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	seedListRepo(t, repo, newFakeStorage())

	lister := NewLister(repo, NewResolver("/uploads"))

	page, err := lister.ListPage(context.Background(), "", "", 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Media, 1)
	require.Equal(t, 2, page.Pagination.Page)
	require.Equal(t, 2, page.Pagination.TotalPages)
	require.EqualValues(t, 3, page.Pagination.Total)
}
