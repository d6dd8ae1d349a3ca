package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"folio/internal/application/usecase/abstraction"
)

// cacheControl marks blobs immutable for a year; keys are never reused.
const cacheControl = "public, max-age=31536000"

type ServeHandler struct {
	getter abstraction.Getter
	dev    bool
}

func NewServeHandler(getter abstraction.Getter, dev bool) *ServeHandler {
	return &ServeHandler{
		getter: getter,
		dev:    dev,
	}
}

// HandleServe handles GET /api/media/serve/:id requests. Blobs that live
// behind a provider URL are redirected; local blobs are streamed.
func (h *ServeHandler) HandleServe(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err, h.dev)
	}

	result, err := h.getter.Serve(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, h.dev)
	}

	if result.RedirectURL != "" {
		return c.Redirect(http.StatusFound, result.RedirectURL)
	}

	defer result.Body.Close()

	c.Response().Header().Set(echo.HeaderCacheControl, cacheControl)
	if result.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(result.Size, 10))
	}

	return c.Stream(http.StatusOK, result.ContentType, result.Body)
}
