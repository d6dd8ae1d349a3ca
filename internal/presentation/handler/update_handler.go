package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"folio/internal/application/usecase/abstraction"
	"folio/internal/domain/dto"
)

type UpdateHandler struct {
	updater abstraction.Updater
	dev     bool
}

func NewUpdateHandler(updater abstraction.Updater, dev bool) *UpdateHandler {
	return &UpdateHandler{
		updater: updater,
		dev:     dev,
	}
}

type updateRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

// HandleUpdate handles PUT /api/media/:id requests.
func (h *UpdateHandler) HandleUpdate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err, h.dev)
	}

	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Fail("Title and description are required"))
	}

	item, err := h.updater.Update(c.Request().Context(), id, req.Title, req.Description)
	if err != nil {
		return fail(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, dto.OKMessage("Media updated successfully", item))
}
