package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"folio/internal/domain/apperr"
	"folio/internal/presentation"
)

func deleteContext(e *echo.Echo, id string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetParamNames(presentation.IDParam)
	c.SetParamValues(id)

	return c, rec
}

func TestHandleDelete(t *testing.T) {
	t.Parallel()

	deleter := &fakeDeleter{}
	h := NewDeleteHandler(deleter, false)

	c, rec := deleteContext(echo.New(), "7")
	require.NoError(t, h.HandleDelete(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Media deleted successfully", decodeResponse(t, rec).Message)
	require.Equal(t, []uint{7}, deleter.gotIDs)
}

func TestHandleDeleteMissing(t *testing.T) {
	t.Parallel()

	deleter := &fakeDeleter{err: apperr.New(apperr.NotFound, "Media not found")}
	h := NewDeleteHandler(deleter, false)

	c, rec := deleteContext(echo.New(), "7")
	require.NoError(t, h.HandleDelete(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Media not found", decodeResponse(t, rec).Message)
}

func TestHandleDeleteBadID(t *testing.T) {
	t.Parallel()

	deleter := &fakeDeleter{}
	h := NewDeleteHandler(deleter, false)

	c, rec := deleteContext(echo.New(), "abc")
	require.NoError(t, h.HandleDelete(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, deleter.gotIDs)
}
