package approvalerrors

import (
	"net/http"

	"leavebot/internal/shared/apperror"
)

var (
	ErrLedgerUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"leave balance ledger is unavailable",
		http.StatusServiceUnavailable,
	)
	ErrPromptDeliveryFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"could not deliver the approval prompt",
		http.StatusServiceUnavailable,
	)
	ErrModalOpenFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"could not open the leave request form",
		http.StatusServiceUnavailable,
	)
	ErrMissingPayload = apperror.New(
		apperror.CodeInvalidInput,
		"interaction payload is missing",
		http.StatusBadRequest,
	)
)
