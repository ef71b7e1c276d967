package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

var validate = validator.New()

type ErrorValidateResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ErrorValidateResponse) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateStruct(toValidate interface{}) error {
	// report field names as they appear on the wire
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	var errs *multierror.Error
	if err := validate.Struct(toValidate); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Message: err.Error(),
			})
			return errs.ErrorOrNil()
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				errs = multierror.Append(errs, ErrorValidateResponse{
					Field:   valErr.Field(),
					Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
				})
			}
		}
	}

	return errs.ErrorOrNil()
}
