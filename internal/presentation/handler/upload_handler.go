package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"folio/internal/application/usecase"
	"folio/internal/application/usecase/abstraction"
	"folio/internal/domain/dto"
	"folio/pkg/logger"
)

const fileField = "file"

type UploadHandler struct {
	uploader  abstraction.Uploader
	validator *usecase.Validator
	dev       bool
}

func NewUploadHandler(uploader abstraction.Uploader, validator *usecase.Validator, dev bool) *UploadHandler {
	return &UploadHandler{
		uploader:  uploader,
		validator: validator,
		dev:       dev,
	}
}

// HandleUpload handles POST /api/media/upload requests. Exactly one file
// under the "file" field is accepted; any other field carrying a file is
// rejected the same way a second file would be.
func (h *UploadHandler) HandleUpload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Fail("No file uploaded"))
	}

	total := 0
	for name, headers := range form.File {
		total += len(headers)
		if name != fileField && len(headers) > 0 {
			return c.JSON(http.StatusBadRequest, dto.Fail("Too many files or invalid field name."))
		}
	}

	if err := h.validator.ValidateCount(total); err != nil {
		return fail(c, err, h.dev)
	}

	header := form.File[fileField][0]

	src, err := header.Open()
	if err != nil {
		logger.Error("multipart open failed", "filename", header.Filename, "error", err)

		return c.JSON(http.StatusInternalServerError, dto.Fail("Error uploading media"))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		logger.Error("multipart read failed", "filename", header.Filename, "error", err)

		return c.JSON(http.StatusInternalServerError, dto.Fail("Error uploading media"))
	}

	item, err := h.uploader.Upload(c.Request().Context(), usecase.UploadInput{
		Data:         data,
		OriginalName: header.Filename,
		Section:      c.FormValue("section"),
		MediaType:    c.FormValue("mediaType"),
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
	})
	if err != nil {
		return fail(c, err, h.dev)
	}

	return c.JSON(http.StatusCreated, dto.OKMessage("Media uploaded successfully", item))
}
