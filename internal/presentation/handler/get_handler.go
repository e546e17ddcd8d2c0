package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"msgboard/internal/application/usecase/abstraction"
	"msgboard/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// HandleGet handles GET /messages/:id requests.
func (h *GetHandler) HandleGet(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing message id")

		return c.NoContent(http.StatusBadRequest)
	}

	descriptor, err := h.getter.GetMessage(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, descriptor)
}
