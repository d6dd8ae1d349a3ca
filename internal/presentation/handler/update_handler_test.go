package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"folio/internal/domain/apperr"
	"folio/internal/domain/dto"
	"folio/internal/domain/model"
	"folio/internal/presentation"
)

type fakeUpdater struct {
	item *dto.MediaItem
	err  error
}

func (f *fakeUpdater) Update(context.Context, uint, string, string) (*dto.MediaItem, error) {
	return f.item, f.err
}

func updateContext(e *echo.Echo, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(presentation.IDParam)
	c.SetParamValues(id)

	return c, rec
}

func TestHandleUpdate(t *testing.T) {
	t.Parallel()

	updater := &fakeUpdater{item: &dto.MediaItem{
		Media: model.Media{ID: 3, Title: "new title", Description: "new description"},
		URL:   "/uploads/news/a.png",
	}}
	h := NewUpdateHandler(updater, false)

	c, rec := updateContext(echo.New(), "3", `{"title":"new title","description":"new description"}`)
	require.NoError(t, h.HandleUpdate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	require.Equal(t, "Media updated successfully", resp.Message)
}

func TestHandleUpdateMissingFields(t *testing.T) {
	t.Parallel()

	updater := &fakeUpdater{err: apperr.New(apperr.Validation, "Title and description are required")}
	h := NewUpdateHandler(updater, false)

	c, rec := updateContext(echo.New(), "3", `{"title":"only title"}`)
	require.NoError(t, h.HandleUpdate(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Title and description are required", decodeResponse(t, rec).Message)
}
