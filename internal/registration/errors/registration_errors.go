package registrationerrors

import (
	"net/http"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/apperror"
)

var (
	ErrCompanyCodeNotFound = apperror.New(
		apperror.CodeNotFound,
		"No company with this code",
		http.StatusNotFound,
	)

	ErrCompanyNotAccepting = apperror.New(
		apperror.CodeForbidden,
		"This company is not accepting new members",
		http.StatusForbidden,
	)

	// Raised when user-code derivation keeps colliding after retries.
	ErrUserCodeConflict = apperror.New(
		apperror.CodeInternalError,
		"Could not assign a user code, please try again",
		http.StatusInternalServerError,
	)
)
