package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"msgboard/internal/application/usecase/abstraction"
	"msgboard/internal/domain/model"
	"msgboard/internal/presentation"
)

// ImageHandler serves message images scaled to the requested size. Fit
// handlers crop to fill the size exactly.
type ImageHandler struct {
	thumbnailer abstraction.Thumbnailer
	fit         bool
}

func NewImageHandler(thumbnailer abstraction.Thumbnailer, fit bool) *ImageHandler {
	return &ImageHandler{
		thumbnailer: thumbnailer,
		fit:         fit,
	}
}

// HandleImage handles GET /image/:id/:size and GET /nfimage/:id/:size. The
// size is parsed by middleware.SizeMiddleware.
func (h *ImageHandler) HandleImage(c echo.Context) error {
	size, ok := c.Get(presentation.SizeKey).(model.Size)
	if !ok {
		c.Response().Header().Set(presentation.ReasonTag, "missing size")

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := h.thumbnailer.Thumbnail(c.Request().Context(), c.Param(presentation.IDParam), size, h.fit)
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, presentation.JPEGType, data)
}
