package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"msgboard/internal/application/usecase/abstraction"
	"msgboard/internal/domain/dto"
	"msgboard/internal/presentation"
)

type SubmitHandler struct {
	submitter abstraction.Submitter
}

func NewSubmitHandler(submitter abstraction.Submitter) *SubmitHandler {
	return &SubmitHandler{
		submitter: submitter,
	}
}

// HandleSubmit handles POST /messages. The form carries the message fields
// and an optional image file.
func (h *SubmitHandler) HandleSubmit(c echo.Context) error {
	var submission dto.Submission
	if err := c.Bind(&submission); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "malformed form")

		return c.NoContent(http.StatusBadRequest)
	}

	image, err := readImage(c)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusBadRequest)
	}
	submission.Image = image

	descriptor, err := h.submitter.Submit(c.Request().Context(), submission)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, descriptor)
}

func readImage(c echo.Context) ([]byte, error) {
	header, err := c.FormFile(presentation.ImageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, fmt.Errorf("invalid image upload: %w", err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("invalid image upload: %w", err)
	}
	defer file.Close()

	return io.ReadAll(file)
}
