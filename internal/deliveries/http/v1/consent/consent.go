package consent

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/ledgerlink/go-consent-report/internal/common/http"
	"github.com/ledgerlink/go-consent-report/internal/common/validation"
	"github.com/ledgerlink/go-consent-report/internal/models"
	"github.com/ledgerlink/go-consent-report/internal/services"
)

type consentHandler struct {
	consentSvc services.ConsentService
}

// New consent handler will initialize the consents/ resources endpoint
func New(app *echo.Group, consentSvc services.ConsentService) {
	handler := consentHandler{
		consentSvc: consentSvc,
	}
	api := app.Group("/consents")
	api.POST("", handler.onboardConsent)
	api.GET("", handler.listConsents)
	api.GET("/:consentId", handler.getConsent)
}

// onboardConsent creates the consent upstream, stores the local record and
// returns the onboarding redirect URL. Any failed step fails the whole call,
// the client retries by onboarding again.
func (h *consentHandler) onboardConsent(c echo.Context) error {
	req := new(models.OnboardConsentRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.consentSvc.Onboard(c.Request().Context(), models.OnboardConsentIn(*req))
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res)
}

func (h *consentHandler) listConsents(c echo.Context) error {
	res, err := h.consentSvc.List(c.Request().Context())
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	data := []models.EnrichedConsentOut{}
	for _, v := range *res {
		data = append(data, *v.ConvertToEnrichedConsentOut())
	}

	return http.RestSuccessResponseListWithTotalRows(c, data, len(data))
}

// getConsent proxies the upstream consent document untouched, status code
// included.
func (h *consentHandler) getConsent(c echo.Context) error {
	raw, err := h.consentSvc.Get(c.Request().Context(), c.Param("consentId"))
	if err != nil {
		return http.RestUpstreamErrorResponse(c, err)
	}

	return http.RestRawResponse(c, nethttp.StatusOK, raw)
}
