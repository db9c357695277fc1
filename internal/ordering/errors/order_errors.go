package orderingerrors

import (
	"net/http"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/apperror"
)

var (
	// Also returned when the order exists but belongs to someone else, so a
	// caller cannot probe for other users' order IDs.
	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)

	ErrDeadlinePassed = apperror.New(
		apperror.CodeDeadlinePassed,
		"The ordering deadline for this delivery date has passed",
		http.StatusBadRequest,
	)

	ErrOrderAlreadyCancelled = apperror.New(
		apperror.CodeInvalidState,
		"Order is already cancelled",
		http.StatusBadRequest,
	)

	ErrOrderNotEditable = apperror.New(
		apperror.CodeInvalidState,
		"Order can no longer be changed",
		http.StatusBadRequest,
	)

	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be at least 1",
		http.StatusBadRequest,
	)

	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrDateOutsideWindow = apperror.New(
		apperror.CodeInvalidInput,
		"Delivery date is outside the ordering window",
		http.StatusBadRequest,
	)

	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Status filter must be confirmed or cancelled",
		http.StatusBadRequest,
	)

	ErrInvalidDaysParam = apperror.New(
		apperror.CodeInvalidInput,
		"Days must be a positive integer",
		http.StatusBadRequest,
	)

	ErrInvalidOrderID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid order ID",
		http.StatusBadRequest,
	)
)
