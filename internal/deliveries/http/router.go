package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/ledgerlink/go-consent-report/internal/common/graceful"
	commonhttp "github.com/ledgerlink/go-consent-report/internal/common/http"
	"github.com/ledgerlink/go-consent-report/internal/common/http/middleware"
	"github.com/ledgerlink/go-consent-report/internal/common/idgenerator"
	"github.com/ledgerlink/go-consent-report/internal/common/log"
	"github.com/ledgerlink/go-consent-report/internal/config"
	"github.com/ledgerlink/go-consent-report/internal/deliveries/http/health"
	"github.com/ledgerlink/go-consent-report/internal/services"

	v1consent "github.com/ledgerlink/go-consent-report/internal/deliveries/http/v1/consent"
	v1report "github.com/ledgerlink/go-consent-report/internal/deliveries/http/v1/report"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		logger := log.From(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("[SHUTDOWN] HTTP server error")
		} else {
			logger.Info().Msg("[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	idgen idgenerator.Generator,
	consentService services.ConsentService,
	reportService services.ReportService,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, idgen)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", log.GetCorrelationID(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group register api
	v1Group := apiGroup.Group("/v1")
	v1consent.New(v1Group, consentService)
	v1report.New(v1Group, reportService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
