// internal/utils/validator.go
package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var uidPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("uid", validateUID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// uid keys travel in URLs and query parameter names, so they stay within
// a safe character set.
func validateUID(fl validator.FieldLevel) bool {
	uid := fl.Field().String()

	if len(uid) < 1 || len(uid) > 64 {
		return false
	}

	return uidPattern.MatchString(uid)
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// GetValidationErrors unwraps err looking for validator failures; the
// result is empty when err carries none.
func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "uid":
		return e.Field() + " must be 1-64 characters of letters, numbers, underscores, and dashes"
	default:
		return e.Field() + " is invalid"
	}
}
