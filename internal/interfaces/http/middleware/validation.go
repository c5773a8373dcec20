package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator configures the binding validator with JSON tag names
// and custom rules
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Use JSON tag names for field names in errors
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", notBlank)
	}
}

// notBlank rejects strings that are empty after trimming whitespace
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidationMessage renders the first field error of a binding failure
// in a client-friendly form
func ValidationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Request validation failed"
	}

	e := errs[0]
	switch e.Tag() {
	case "required", "notblank":
		return "Field '" + e.Field() + "' is required"
	case "gt":
		return "Field '" + e.Field() + "' must be greater than " + e.Param()
	case "oneof":
		return "Field '" + e.Field() + "' must be one of: " + e.Param()
	default:
		return "Field '" + e.Field() + "' is invalid"
	}
}
