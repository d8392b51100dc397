package ledgererrors

import (
	"net/http"

	"leavebot/internal/shared/apperror"
)

var (
	ErrHandleNotFound = apperror.New(
		apperror.CodeNotFound,
		"no ledger row found for handle",
		http.StatusNotFound,
	)
	ErrDuplicateHandle = apperror.New(
		apperror.CodeConflict,
		"multiple ledger rows found for handle",
		http.StatusConflict,
	)
	ErrInvalidBalance = apperror.New(
		apperror.CodeInvalidState,
		"ledger balance is not numeric",
		http.StatusConflict,
	)
)
