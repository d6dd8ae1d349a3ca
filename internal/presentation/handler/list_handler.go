package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"folio/internal/application/usecase/abstraction"
	"folio/internal/domain/dto"
	"folio/internal/presentation"
)

type ListHandler struct {
	lister abstraction.Lister
	dev    bool
}

func NewListHandler(lister abstraction.Lister, dev bool) *ListHandler {
	return &ListHandler{
		lister: lister,
		dev:    dev,
	}
}

// HandleList handles GET /api/media requests. An optional ?section=
// query narrows the result; ordering is always newest first.
func (h *ListHandler) HandleList(c echo.Context) error {
	items, err := h.lister.List(c.Request().Context(), c.QueryParam("section"))
	if err != nil {
		return fail(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, dto.OK(items))
}

// HandleListSection handles GET /api/media/section/:section requests.
func (h *ListHandler) HandleListSection(c echo.Context) error {
	items, err := h.lister.List(c.Request().Context(), c.Param(presentation.SectionParam))
	if err != nil {
		return fail(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, dto.OK(items))
}
