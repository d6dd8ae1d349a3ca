package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"folio/internal/application/usecase/abstraction"
	"folio/internal/domain/dto"
)

type AdminHandler struct {
	lister  abstraction.Lister
	deleter abstraction.Deleter
	stats   abstraction.StatsProvider
	dev     bool
}

func NewAdminHandler(lister abstraction.Lister, deleter abstraction.Deleter,
	stats abstraction.StatsProvider, dev bool,
) *AdminHandler {
	return &AdminHandler{
		lister:  lister,
		deleter: deleter,
		stats:   stats,
		dev:     dev,
	}
}

// HandleDashboard handles GET /api/admin/dashboard requests.
func (h *AdminHandler) HandleDashboard(c echo.Context) error {
	dashboard, err := h.stats.Dashboard(c.Request().Context())
	if err != nil {
		return fail(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, dto.OK(dashboard))
}

// HandleMedia handles GET /api/admin/media requests: the paginated
// management listing with optional ?section= and ?type= filters.
func (h *AdminHandler) HandleMedia(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.lister.ListPage(c.Request().Context(),
		c.QueryParam("section"), c.QueryParam("type"), page, limit)
	if err != nil {
		return fail(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, dto.OK(result))
}

type bulkDeleteRequest struct {
	IDs []uint `json:"ids"`
}

// HandleBulkDelete handles DELETE /api/admin/media/bulk requests.
func (h *AdminHandler) HandleBulkDelete(c echo.Context) error {
	var req bulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Fail("Media IDs array is required"))
	}

	removed, err := h.deleter.DeleteMany(c.Request().Context(), req.IDs)
	if err != nil {
		return fail(c, err, h.dev)
	}

	return c.JSON(http.StatusOK,
		dto.OKMessage(fmt.Sprintf("Successfully deleted %d media items", removed), nil))
}
