package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"folio/internal/domain/apperr"
	"folio/internal/domain/dto"
	"folio/internal/domain/entity"
	"folio/internal/domain/model"
	"folio/internal/domain/repository/database"
	"folio/internal/domain/repository/storage"
)

// fakeStorage keeps blobs in a map and can be told to fail.
type fakeStorage struct {
	objects   map[string][]byte
	publicURL string
	putErr    error
	removeErr error
	removed   []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (s *fakeStorage) Put(_ context.Context, key string, body io.Reader, _ int64,
	_ string, upsert bool,
) (entity.StoredObject, error) {
	if s.putErr != nil {
		return entity.StoredObject{}, s.putErr
	}

	if _, ok := s.objects[key]; ok && !upsert {
		return entity.StoredObject{}, storage.ErrKeyExists
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return entity.StoredObject{}, err
	}
	s.objects[key] = data

	url := ""
	if s.publicURL != "" {
		url = s.publicURL + "/" + key
	}

	return entity.StoredObject{Key: key, PublicURL: url}, nil
}

func (s *fakeStorage) Remove(_ context.Context, key string) error {
	s.removed = append(s.removed, key)
	if s.removeErr != nil {
		return s.removeErr
	}
	delete(s.objects, key)

	return nil
}

func (s *fakeStorage) Get(_ context.Context, key string) (io.ReadCloser, int64, string, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, 0, "", storage.ErrNotFound
	}

	return io.NopCloser(bytes.NewReader(data)), int64(len(data)), "application/octet-stream", nil
}

// fakeRepo implements the media repository interfaces over a slice.
type fakeRepo struct {
	rows      []model.Media
	nextID    uint
	insertErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func (r *fakeRepo) Insert(_ context.Context, media *model.Media) error {
	if r.insertErr != nil {
		return r.insertErr
	}

	media.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, *media)

	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uint) (*model.Media, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			row := r.rows[i]

			return &row, nil
		}
	}

	return nil, database.ErrNotFound
}

func (r *fakeRepo) GetByIDs(_ context.Context, ids []uint) ([]model.Media, error) {
	var out []model.Media
	for i := range r.rows {
		for _, id := range ids {
			if r.rows[i].ID == id {
				out = append(out, r.rows[i])
			}
		}
	}

	return out, nil
}

func (r *fakeRepo) RemoveByID(_ context.Context, id uint) (int64, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)

			return 1, nil
		}
	}

	return 0, nil
}

func (r *fakeRepo) UpdateInfo(_ context.Context, id uint, title, description string) (int64, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Title = title
			r.rows[i].Description = description

			return 1, nil
		}
	}

	return 0, nil
}

func (r *fakeRepo) matches(m *model.Media, filter database.ListFilter) bool {
	if filter.Section != "" && m.Section != filter.Section {
		return false
	}
	if filter.MediaType != "" && m.MediaType != filter.MediaType {
		return false
	}

	return true
}

func (r *fakeRepo) List(_ context.Context, filter database.ListFilter) ([]model.Media, error) {
	var all []model.Media
	for i := range r.rows {
		if r.matches(&r.rows[i], filter) {
			all = append(all, r.rows[i])
		}
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(all) {
			return nil, nil
		}
		all = all[filter.Offset:]
	}
	if filter.Limit > 0 && len(all) > filter.Limit {
		all = all[:filter.Limit]
	}

	return all, nil
}

func (r *fakeRepo) Count(_ context.Context, filter database.ListFilter) (int64, error) {
	var n int64
	for i := range r.rows {
		if r.matches(&r.rows[i], filter) {
			n++
		}
	}

	return n, nil
}

func (r *fakeRepo) RemoveByIDs(ctx context.Context, ids []uint) (int64, error) {
	var removed int64
	for _, id := range ids {
		n, _ := r.RemoveByID(ctx, id)
		removed += n
	}

	return removed, nil
}

// fakeSessions is an in-memory session store.
type fakeSessions struct {
	users  map[string]dto.User
	nextID int
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{users: map[string]dto.User{}}
}

func (s *fakeSessions) Create(_ context.Context, user dto.User) (string, error) {
	s.nextID++
	id := string(rune('a' + s.nextID))
	s.users[id] = user

	return id, nil
}

func (s *fakeSessions) Get(_ context.Context, id string) (*dto.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}

	return &user, nil
}

func (s *fakeSessions) Destroy(_ context.Context, id string) error {
	delete(s.users, id)

	return nil
}

func requireKind(t *testing.T, err error, kind apperr.Kind) *apperr.Error {
	t.Helper()

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr), "expected an apperr.Error, got %v", err)
	require.Equal(t, kind, appErr.Kind)

	return appErr
}
