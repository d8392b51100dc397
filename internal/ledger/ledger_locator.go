package ledger

import (
	ledgererrors "leavebot/internal/ledger/errors"

	"leavebot/internal/shared/apperror"
)

// Locate finds the single balance row belonging to handle and returns the
// cell to write together with the new remaining balance. The length must
// be recomputed by the caller from the approval record's own dates and
// category; Locate never trusts a value cached at validation time.
//
// Zero or multiple matching rows are ledger inconsistencies and are
// reported as errors rather than resolved by picking a row.
func Locate(rows []Row, handle string, length float64) (Coordinate, float64, error) {
	matchRow := -1
	for i, row := range rows {
		if row.Handle() != handle {
			continue
		}
		if matchRow >= 0 {
			return Coordinate{}, 0, ledgererrors.ErrDuplicateHandle
		}
		matchRow = i
	}
	if matchRow < 0 {
		return Coordinate{}, 0, ledgererrors.ErrHandleNotFound
	}

	balance, err := rows[matchRow].Balance()
	if err != nil {
		return Coordinate{}, 0, apperror.Wrap(err,
			ledgererrors.ErrInvalidBalance.Code,
			ledgererrors.ErrInvalidBalance.Message,
			ledgererrors.ErrInvalidBalance.HTTPStatus,
		)
	}

	coord := Coordinate{Column: balanceColumn, Row: matchRow + 1}
	return coord, balance - length, nil
}

// BalanceFor reads the remaining balance for handle, for the validation
// stage. Same matching rules as Locate.
func BalanceFor(rows []Row, handle string) (float64, error) {
	_, balance, err := Locate(rows, handle, 0)
	return balance, err
}
