package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"msgboard/internal/domain/model"
	"msgboard/internal/presentation"
	"msgboard/pkg/logger"
)

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

// writeError maps usecase errors to responses, mirroring the reason in the
// X-Reason header.
func writeError(c echo.Context, err error) error {
	c.Response().Header().Set(presentation.ReasonTag, err.Error())

	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := verr.Fields
		if fields == nil {
			fields = []string{}
		}

		return c.JSON(http.StatusBadRequest, errorResponse{Error: verr.Reason, Fields: fields})

	case errors.Is(err, model.ErrMessageNotFound), errors.Is(err, model.ErrNoImage),
		errors.Is(err, model.ErrThumbNotFound):
		return c.NoContent(http.StatusNotFound)

	case errors.Is(err, model.ErrNotAnImage):
		return c.NoContent(http.StatusUnsupportedMediaType)

	default:
		logger.Error("request failed", "path", c.Path(), "err", err)

		return c.NoContent(http.StatusInternalServerError)
	}
}
