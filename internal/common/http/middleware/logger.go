package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ledgerlink/go-consent-report/internal/common/log"
)

func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			ctx := c.Request().Context()
			statusCode := c.Response().Status

			logger := log.From(ctx)
			ev := logger.Info()
			if err != nil || statusCode >= 500 {
				ev = logger.Error().Err(err)
			} else if statusCode >= 400 {
				ev = logger.Warn()
			}

			ev.Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", statusCode).
				Str("latency", latency.String()).
				Msg("[HTTP.REQUEST]")

			return nil
		}
	}
}
