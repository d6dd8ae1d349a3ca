package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"folio/internal/application/usecase/abstraction"
	"folio/internal/domain/dto"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
	dev     bool
}

func NewDeleteHandler(deleter abstraction.Deleter, dev bool) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
		dev:     dev,
	}
}

// HandleDelete handles DELETE /api/media/:id requests.
func (h *DeleteHandler) HandleDelete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err, h.dev)
	}

	if err := h.deleter.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, dto.OKMessage("Media deleted successfully", nil))
}
