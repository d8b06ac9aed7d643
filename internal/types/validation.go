package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mwondhaf/pesapal-go/internal/apierr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// check runs struct validation and maps failures to the validation error
// kind so callers can branch on it before any network activity happens.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apierr.Invalid(err.Error())
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s is %s", fe.Field(), describe(fe)))
	}
	return apierr.Invalid(strings.Join(parts, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "gt":
		return fmt.Sprintf("not greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("not one of [%s]", fe.Param())
	default:
		return "invalid"
	}
}
