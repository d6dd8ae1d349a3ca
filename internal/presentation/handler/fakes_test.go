package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"folio/internal/application/usecase"
	"folio/internal/domain/apperr"
	"folio/internal/domain/dto"
	"folio/internal/domain/entity"
)

type fakeAuth struct {
	loginResult *LoginOutcome
	loginErr    error
	sessionUser *dto.User
	verifyUser  *dto.User
	verifyErr   error
	destroyed   []string
}

// LoginOutcome mirrors what a successful login hands the handler.
type LoginOutcome = usecase.LoginResult

func (f *fakeAuth) Login(_ context.Context, _, _ string) (*usecase.LoginResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuth) Logout(_ context.Context, sessionID string) error {
	f.destroyed = append(f.destroyed, sessionID)

	return nil
}

func (f *fakeAuth) SessionUser(context.Context, string) (*dto.User, error) {
	return f.sessionUser, nil
}

func (f *fakeAuth) Authenticate(context.Context, string, string) (*dto.User, error) {
	return f.sessionUser, nil
}

func (f *fakeAuth) VerifyToken(string) (*dto.User, error) {
	return f.verifyUser, f.verifyErr
}

type fakeUploader struct {
	item *dto.MediaItem
	err  error
	got  *usecase.UploadInput
}

func (f *fakeUploader) Upload(_ context.Context, in usecase.UploadInput) (*dto.MediaItem, error) {
	f.got = &in

	return f.item, f.err
}

type fakeLister struct {
	items []dto.MediaItem
	page  *dto.MediaPage
	err   error
}

func (f *fakeLister) List(_ context.Context, _ string) ([]dto.MediaItem, error) {
	return f.items, f.err
}

func (f *fakeLister) ListPage(_ context.Context, _, _ string, _, _ int) (*dto.MediaPage, error) {
	return f.page, f.err
}

type fakeDeleter struct {
	err     error
	removed int64
	gotIDs  []uint
}

func (f *fakeDeleter) Delete(_ context.Context, id uint) error {
	f.gotIDs = append(f.gotIDs, id)

	return f.err
}

func (f *fakeDeleter) DeleteMany(_ context.Context, ids []uint) (int64, error) {
	f.gotIDs = append(f.gotIDs, ids...)

	return f.removed, f.err
}

type fakeGetter struct {
	result *entity.ServeResult
	err    error
}

func (f *fakeGetter) Serve(context.Context, uint) (*entity.ServeResult, error) {
	return f.result, f.err
}

func usecaseValidationErr() error {
	return apperr.New(apperr.Validation, "Image file too large. Maximum size is 3.0MB.")
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) dto.Response {
	t.Helper()

	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}
