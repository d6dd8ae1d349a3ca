package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"folio/internal/domain/apperr"
	"folio/internal/domain/dto"
	"folio/internal/presentation"
)

// fail translates a usecase error into the JSON envelope. dev controls
// whether internal error detail leaks into the message.
func fail(c echo.Context, err error, dev bool) error {
	status, message := apperr.Client(err, dev)

	return c.JSON(status, dto.Fail(message))
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint, error) {
	raw := c.Param(presentation.IDParam)

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.New(apperr.Validation, "Invalid media ID")
	}

	return uint(id), nil
}
