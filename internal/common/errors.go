package common

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnableToCreate      = errors.New("unable to create data")

	// ErrMissingLocation means the upstream consent creation succeeded but the
	// response carried no usable location reference to extract the new id from.
	ErrMissingLocation = errors.New("missing consent id in upstream location reference")

	ErrMissingOTCCode      = errors.New("missing code in upstream otc response")
	ErrInvalidLevel        = errors.New("level must be between 1 and 3")
	ErrNoAccountingPeriods = errors.New("no accounting periods available")
	ErrUpstreamRejected    = errors.New("upstream request rejected")
)
