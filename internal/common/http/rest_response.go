package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"

	"github.com/ledgerlink/go-consent-report/internal/common"
	"github.com/ledgerlink/go-consent-report/internal/common/aggregator"
)

type (
	RestErrorResponseModel struct {
		Error   string      `json:"error" example:"failed to create consent"`
		Details interface{} `json:"details,omitempty"`
	}

	RestTotalRowResponseModel struct {
		Kind      string      `json:"kind" example:"collection"`
		Contents  interface{} `json:"contents"`
		TotalRows int         `json:"total_rows" example:"100"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestSuccessResponseListWithTotalRows(c echo.Context, data interface{}, totalRows int) error {
	return c.JSON(http.StatusOK, RestTotalRowResponseModel{
		Kind:      "collection",
		Contents:  data,
		TotalRows: totalRows,
	})
}

// RestRawResponse forwards an upstream JSON body untouched.
func RestRawResponse(c echo.Context, code int, body []byte) error {
	return c.JSONBlob(code, body)
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	return c.JSON(statusCode, RestErrorResponseModel{
		Error: err.Error(),
	})
}

func RestErrorResponseWithDetails(c echo.Context, statusCode int, err error, details interface{}) error {
	return c.JSON(statusCode, RestErrorResponseModel{
		Error:   err.Error(),
		Details: details,
	})
}

// RestUpstreamErrorResponse maps an outbound gateway failure onto the
// response: an upstream rejection keeps its original status code with the
// upstream body as details, anything else is a plain 500.
func RestUpstreamErrorResponse(c echo.Context, err error) error {
	var statusErr *aggregator.StatusError
	if errors.As(err, &statusErr) {
		var details interface{} = statusErr.Body
		if json.Valid([]byte(statusErr.Body)) {
			details = json.RawMessage(statusErr.Body)
		}
		return RestErrorResponseWithDetails(c, statusErr.StatusCode, common.ErrUpstreamRejected, details)
	}

	return RestErrorResponse(c, http.StatusInternalServerError, err)
}

func RestErrorValidationResponse(c echo.Context, errs interface{}) error {
	res := RestErrorResponseModel{
		Error: "validation failed",
	}
	if data, ok := errs.(*multierror.Error); ok {
		res.Details = data.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}
