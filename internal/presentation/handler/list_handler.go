package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"msgboard/internal/application/usecase/abstraction"
	"msgboard/internal/presentation"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleLatest handles GET /messages.json?max=N requests.
func (h *ListHandler) HandleLatest(c echo.Context) error {
	limit, err := parseMaxQueryParam(c)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusBadRequest)
	}

	messages, err := h.lister.Latest(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, messages)
}

// HandleSlideshow handles GET /slideshow.json requests.
func (h *ListHandler) HandleSlideshow(c echo.Context) error {
	messages, err := h.lister.Slideshow(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, messages)
}

// HandleGeolocations handles GET /geolocations.json requests.
func (h *ListHandler) HandleGeolocations(c echo.Context) error {
	messages, err := h.lister.Geolocations(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, messages)
}

// parseMaxQueryParam reads the optional max query parameter. Absent means
// no limit.
func parseMaxQueryParam(c echo.Context) (int64, error) {
	s := c.QueryParam(presentation.MaxParam)
	if s == "" {
		return 0, nil
	}

	limit, err := strconv.ParseInt(s, 10, 64)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("invalid '%s' parameter", presentation.MaxParam)
	}

	return limit, nil
}
