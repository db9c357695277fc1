package menuerrors

import (
	"net/http"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/apperror"
)

var (
	ErrMenuNotFound = apperror.New(
		apperror.CodeNotFound,
		"No available menu for this product and date",
		http.StatusNotFound,
	)

	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
