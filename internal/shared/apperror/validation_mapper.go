package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a gin binding error into an AppError carrying the
// first offending field. Non-validator errors collapse to a generic 400.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return New(CodeInvalidInput, field+" is required", http.StatusBadRequest)
		case "min", "gte":
			return New(CodeInvalidInput, field+" is below the allowed minimum", http.StatusBadRequest)
		case "email":
			return New(CodeInvalidInput, field+" must be a valid email address", http.StatusBadRequest)
		default:
			return New(CodeInvalidInput, field+" is invalid", http.StatusBadRequest)
		}
	}

	return ErrInvalidInput
}
