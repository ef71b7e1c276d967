package health

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/ledgerlink/go-consent-report/internal/common/http"
)

type healthHandler struct{}

// New health handler will initialize the health/ resources endpoint
func New(app *echo.Group) {
	hh := healthHandler{}
	health := app.Group("/health")
	health.GET("", hh.healthCheck)
}

type DoHealthCheckLivenessResponse struct {
	Kind   string `json:"kind" example:"health"`
	Status string `json:"status" example:"server is up and running"`
}

func (hh healthHandler) healthCheck(c echo.Context) error {
	return http.RestSuccessResponse(c, nethttp.StatusOK, DoHealthCheckLivenessResponse{
		Kind:   "health",
		Status: "server is up and running",
	})
}
