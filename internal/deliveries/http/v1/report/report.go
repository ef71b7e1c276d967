package report

import (
	"errors"
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ledgerlink/go-consent-report/internal/common"
	"github.com/ledgerlink/go-consent-report/internal/common/http"
	"github.com/ledgerlink/go-consent-report/internal/services"
)

type reportHandler struct {
	reportSvc services.ReportService
}

// New report handler will initialize the accounting report endpoints under a
// consent.
func New(app *echo.Group, reportSvc services.ReportService) {
	handler := reportHandler{
		reportSvc: reportSvc,
	}
	api := app.Group("/consents/:consentId")
	api.GET("/companyinformation", handler.getCompanyInformation)
	api.GET("/accountingperiods", handler.getAccountingPeriods)
	api.GET("/reportperiod", handler.getReportPeriod)
	api.GET("/incomestatement", handler.getIncomeStatement)
	api.GET("/incomestatement/rows", handler.getIncomeStatementRows)
}

func (h *reportHandler) getCompanyInformation(c echo.Context) error {
	raw, err := h.reportSvc.GetCompanyInformation(c.Request().Context(), c.Param("consentId"))
	if err != nil {
		return http.RestUpstreamErrorResponse(c, err)
	}

	return http.RestRawResponse(c, nethttp.StatusOK, raw)
}

func (h *reportHandler) getAccountingPeriods(c echo.Context) error {
	raw, err := h.reportSvc.GetAccountingPeriods(c.Request().Context(), c.Param("consentId"))
	if err != nil {
		return http.RestUpstreamErrorResponse(c, err)
	}

	return http.RestRawResponse(c, nethttp.StatusOK, raw)
}

// getReportPeriod returns the accounting period a fresh report should open
// on: the one containing today, or the most recent, with the end date capped
// at today.
func (h *reportHandler) getReportPeriod(c echo.Context) error {
	period, err := h.reportSvc.ResolveReportPeriod(c.Request().Context(), c.Param("consentId"), time.Now())
	if err != nil {
		if errors.Is(err, common.ErrNoAccountingPeriods) {
			return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
		}
		return http.RestUpstreamErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, period)
}

// getIncomeStatement proxies the upstream income statement untouched. Missing
// query parameters fall back to the configured defaults.
func (h *reportHandler) getIncomeStatement(c echo.Context) error {
	startDate, endDate, level, err := reportQueryParams(c)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	raw, err := h.reportSvc.GetIncomeStatement(c.Request().Context(), c.Param("consentId"), startDate, endDate, level)
	if err != nil {
		if errors.Is(err, common.ErrInvalidLevel) {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
		return http.RestUpstreamErrorResponse(c, err)
	}

	return http.RestRawResponse(c, nethttp.StatusOK, raw)
}

// getIncomeStatementRows returns the income statement flattened into
// render-ready rows.
func (h *reportHandler) getIncomeStatementRows(c echo.Context) error {
	startDate, endDate, level, err := reportQueryParams(c)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	rows, err := h.reportSvc.GetIncomeStatementRows(c.Request().Context(), c.Param("consentId"), startDate, endDate, level)
	if err != nil {
		if errors.Is(err, common.ErrInvalidLevel) {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
		return http.RestUpstreamErrorResponse(c, err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, rows, len(rows))
}

func reportQueryParams(c echo.Context) (startDate, endDate string, level int, err error) {
	startDate = queryParam(c, "startDate", "StartDate")
	endDate = queryParam(c, "endDate", "EndDate")

	if rawLevel := queryParam(c, "level", "Level"); rawLevel != "" {
		level, err = strconv.Atoi(rawLevel)
		if err != nil {
			return "", "", 0, common.ErrInvalidLevel
		}
	}

	return startDate, endDate, level, nil
}

// queryParam reads the first non-empty value among the accepted names of one
// parameter. The documented names are lowercase, but the upstream casing is
// accepted too.
func queryParam(c echo.Context, names ...string) string {
	for _, name := range names {
		if v := c.QueryParam(name); v != "" {
			return v
		}
	}
	return ""
}
