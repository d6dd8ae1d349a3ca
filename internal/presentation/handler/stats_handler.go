package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"folio/internal/application/usecase/abstraction"
	"folio/internal/domain/dto"
)

type StatsHandler struct {
	stats abstraction.StatsProvider
	dev   bool
}

func NewStatsHandler(stats abstraction.StatsProvider, dev bool) *StatsHandler {
	return &StatsHandler{
		stats: stats,
		dev:   dev,
	}
}

// HandleStats handles GET /api/media/stats requests.
func (h *StatsHandler) HandleStats(c echo.Context) error {
	stats, err := h.stats.Stats(c.Request().Context())
	if err != nil {
		return fail(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, dto.OK(stats))
}
