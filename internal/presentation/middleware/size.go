package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"msgboard/internal/domain/model"
	"msgboard/internal/presentation"
)

// SizeMiddleware parses the size path parameter and rejects sizes outside
// allowed. An empty allowed list accepts any well formed size.
func SizeMiddleware(allowed []string) echo.MiddlewareFunc {
	permitted := make(map[string]struct{}, len(allowed))
	for _, key := range allowed {
		permitted[key] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			size, err := model.ParseSize(ctx.Param(presentation.SizeParam))
			if err != nil {
				ctx.Response().Header().Set(presentation.ReasonTag, err.Error())

				return ctx.NoContent(http.StatusBadRequest)
			}

			if _, ok := permitted[size.Key()]; len(permitted) > 0 && !ok {
				ctx.Response().Header().Set(presentation.ReasonTag, fmt.Sprintf("size %s is not served", size.Key()))

				return ctx.NoContent(http.StatusNotFound)
			}

			ctx.Set(presentation.SizeKey, size)

			return next(ctx)
		}
	}
}
