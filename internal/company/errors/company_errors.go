package companyerrors

import (
	"net/http"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrCompanyInactive = apperror.New(
		apperror.CodeForbidden,
		"Company is deactivated",
		http.StatusForbidden,
	)

	ErrInvalidDeadlineTime = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid deadline time, expected HH:MM:SS",
		http.StatusBadRequest,
	)

	ErrInvalidSubsidyRate = apperror.New(
		apperror.CodeInvalidInput,
		"Subsidy rate must be between 0 and 1",
		http.StatusBadRequest,
	)

	// Raised when a company row has no usable deadline time. This is an
	// operator problem, not a caller problem.
	ErrDeadlineNotConfigured = apperror.New(
		apperror.CodeConfigurationError,
		"Ordering deadline is not configured for this company",
		http.StatusInternalServerError,
	)
)
