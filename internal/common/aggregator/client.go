// Package aggregator is the outbound client for the third-party financial-data
// aggregator. Every call carries the static API key and a freshly generated
// correlation id; failures are surfaced as-is with the upstream status and
// body, with no retry and no caching.
package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ledgerlink/go-consent-report/internal/common"
	"github.com/ledgerlink/go-consent-report/internal/common/idgenerator"
	"github.com/ledgerlink/go-consent-report/internal/common/log"
	"github.com/ledgerlink/go-consent-report/internal/common/metrics"
	"github.com/ledgerlink/go-consent-report/internal/config"
	"github.com/ledgerlink/go-consent-report/internal/models"
	"github.com/ledgerlink/go-consent-report/internal/monitoring"
)

const SERVICE_NAME = "aggregator"

var logMessage = "[AGGREGATOR-CLIENT]"

type Client interface {
	// CreateConsent creates an upstream consent and returns the new consent id
	// extracted from the response's location reference.
	CreateConsent(ctx context.Context, name string) (consentID string, err error)
	GetConsent(ctx context.Context, consentID string) (*models.AggregatorConsent, []byte, error)
	GenerateOTC(ctx context.Context, consentID string) (code string, err error)
	GetCompanyInformation(ctx context.Context, consentID string) ([]byte, error)
	GetAccountingPeriods(ctx context.Context, consentID string) ([]models.AccountingPeriod, []byte, error)
	GetIncomeStatement(ctx context.Context, consentID, startDate, endDate string, level int) (*models.IncomeStatement, []byte, error)
}

// StatusError carries a non-success upstream response back to the caller so
// proxy endpoints can pass the upstream status through.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Body)
}

type client struct {
	consentBaseURL    string
	accountingBaseURL string
	apiKey            string
	httpClient        *resty.Client
	idgen             idgenerator.Generator
	metrics           metrics.Metrics
}

func New(configuration config.AggregatorConfig, idgen idgenerator.Generator, metrics metrics.Metrics) Client {
	restyClient := resty.New().
		SetTransport(monitoring.NewMiddlewareRoundTripper(nil)).
		SetTimeout(configuration.Timeout)

	return &client{
		consentBaseURL:    strings.TrimRight(configuration.ConsentBaseURL, "/"),
		accountingBaseURL: strings.TrimRight(configuration.AccountingBaseURL, "/"),
		apiKey:            configuration.APIKey,
		httpClient:        restyClient,
		idgen:             idgen,
		metrics:           metrics,
	}
}

// doRequest sends one upstream call with the shared headers, logs it, records
// client latency under groupURL (the path with ids collapsed, to keep metric
// cardinality bounded), and converts non-2xx responses into a StatusError.
func (c *client) doRequest(ctx context.Context, method, url, groupURL string, query map[string]string, body interface{}) (*resty.Response, error) {
	startTime := time.Now()

	correlationID := c.idgen.Generate()

	logger := log.From(ctx)
	logger.Info().
		Str("url", url).
		Str("method", method).
		Str("upstreamCorrelationId", correlationID).
		Msg(logMessage)

	req := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json; charset=utf-8").
		SetHeader("x-api-key", c.apiKey).
		SetHeader("x-correlation-id", correlationID)
	if query != nil {
		req = req.SetQueryParams(query)
	}
	if body != nil {
		req = req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	var httpRes *resty.Response
	var err error

	switch method {
	case http.MethodGet:
		httpRes, err = req.Get(url)
	case http.MethodPost:
		httpRes, err = req.Post(url)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	if err != nil {
		logger.Warn().Str("url", url).Err(err).Msg(logMessage)
		return nil, fmt.Errorf("failed send request: %w", err)
	}

	if c.metrics != nil {
		c.metrics.GetHTTPClientPrometheus().Record(
			time.Since(startTime),
			SERVICE_NAME,
			method,
			groupURL,
			httpRes.StatusCode(),
		)
	}

	if httpRes.StatusCode() < 200 || httpRes.StatusCode() >= 300 {
		logger.Warn().
			Str("url", url).
			Str("httpStatusCode", httpRes.Status()).
			Bytes("httpResponse", httpRes.Body()).
			Msg(logMessage)

		return httpRes, &StatusError{
			StatusCode: httpRes.StatusCode(),
			Body:       string(httpRes.Body()),
		}
	}

	logger.Info().
		Str("url", url).
		Str("httpStatusCode", httpRes.Status()).
		Msg(logMessage)

	return httpRes, nil
}

func (c *client) CreateConsent(ctx context.Context, name string) (consentID string, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	url := fmt.Sprintf("%s/api/v1/consents", c.consentBaseURL)
	httpRes, err := c.doRequest(ctx, http.MethodPost, url, url, nil, map[string]string{"name": name})
	if err != nil {
		return "", err
	}

	location := httpRes.Header().Get("Location")
	segments := strings.Split(location, "/")
	consentID = segments[len(segments)-1]
	if consentID == "" {
		return "", common.ErrMissingLocation
	}

	return consentID, nil
}

func (c *client) GetConsent(ctx context.Context, consentID string) (consent *models.AggregatorConsent, raw []byte, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	url := fmt.Sprintf("%s/api/v1/consents/%s", c.consentBaseURL, consentID)
	groupURL := fmt.Sprintf("%s/api/v1/consents/:consent-id", c.consentBaseURL)

	httpRes, err := c.doRequest(ctx, http.MethodGet, url, groupURL, nil, nil)
	if err != nil {
		return nil, nil, err
	}

	var res models.AggregatorConsent
	if err = json.Unmarshal(httpRes.Body(), &res); err != nil {
		return nil, nil, fmt.Errorf("error unmarshal response: %w", err)
	}

	return &res, httpRes.Body(), nil
}

func (c *client) GenerateOTC(ctx context.Context, consentID string) (code string, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	url := fmt.Sprintf("%s/api/v1/consents/%s/otc", c.consentBaseURL, consentID)
	groupURL := fmt.Sprintf("%s/api/v1/consents/:consent-id/otc", c.consentBaseURL)

	httpRes, err := c.doRequest(ctx, http.MethodPost, url, groupURL, nil, nil)
	if err != nil {
		return "", err
	}

	var res struct {
		Code string `json:"code"`
	}
	if err = json.Unmarshal(httpRes.Body(), &res); err != nil {
		return "", fmt.Errorf("error unmarshal response: %w", err)
	}

	if res.Code == "" {
		return "", common.ErrMissingOTCCode
	}

	return res.Code, nil
}

func (c *client) GetCompanyInformation(ctx context.Context, consentID string) (raw []byte, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	url := fmt.Sprintf("%s/api/v1/consents/%s/companyinformation", c.accountingBaseURL, consentID)
	groupURL := fmt.Sprintf("%s/api/v1/consents/:consent-id/companyinformation", c.accountingBaseURL)

	httpRes, err := c.doRequest(ctx, http.MethodGet, url, groupURL, nil, nil)
	if err != nil {
		return nil, err
	}

	return httpRes.Body(), nil
}

func (c *client) GetAccountingPeriods(ctx context.Context, consentID string) (periods []models.AccountingPeriod, raw []byte, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	url := fmt.Sprintf("%s/api/v1/consents/%s/accountingperiods", c.accountingBaseURL, consentID)
	groupURL := fmt.Sprintf("%s/api/v1/consents/:consent-id/accountingperiods", c.accountingBaseURL)

	httpRes, err := c.doRequest(ctx, http.MethodGet, url, groupURL, nil, nil)
	if err != nil {
		return nil, nil, err
	}

	periods, err = decodeAccountingPeriods(httpRes.Body())
	if err != nil {
		return nil, nil, err
	}

	return periods, httpRes.Body(), nil
}

// decodeAccountingPeriods accepts either a bare array or an array wrapped in
// one of the envelope keys upstream has been observed to use.
func decodeAccountingPeriods(body []byte) ([]models.AccountingPeriod, error) {
	var periods []models.AccountingPeriod
	if err := json.Unmarshal(body, &periods); err == nil {
		return periods, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("error unmarshal response: %w", err)
	}

	for _, key := range []string{"data", "periods", "items"} {
		inner, ok := wrapped[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(inner, &periods); err == nil {
			return periods, nil
		}
	}

	return nil, nil
}

func (c *client) GetIncomeStatement(ctx context.Context, consentID, startDate, endDate string, level int) (statement *models.IncomeStatement, raw []byte, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	url := fmt.Sprintf("%s/api/v1/consents/%s/incomestatement", c.accountingBaseURL, consentID)
	groupURL := fmt.Sprintf("%s/api/v1/consents/:consent-id/incomestatement", c.accountingBaseURL)
	query := map[string]string{
		"StartDate": startDate,
		"EndDate":   endDate,
		"Level":     strconv.Itoa(level),
	}

	httpRes, err := c.doRequest(ctx, http.MethodGet, url, groupURL, query, nil)
	if err != nil {
		return nil, nil, err
	}

	var res models.IncomeStatement
	if err = json.Unmarshal(httpRes.Body(), &res); err != nil {
		return nil, nil, fmt.Errorf("error unmarshal response: %w", err)
	}

	return &res, httpRes.Body(), nil
}
