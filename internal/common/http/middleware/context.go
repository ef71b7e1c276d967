package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/ledgerlink/go-consent-report/internal/common/log"
)

const correlationIDHeader = "X-Correlation-Id"

// Context puts a correlation id on the request context. An id supplied by the
// caller wins, otherwise a fresh one is generated, and either way the id is
// echoed back on the response.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			correlationID := req.Header.Get(correlationIDHeader)
			if correlationID == "" {
				correlationID = m.idgen.Generate()
			}

			ctx := log.WithCorrelationID(req.Context(), correlationID)
			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set(correlationIDHeader, correlationID)

			return next(c)
		}
	}
}
