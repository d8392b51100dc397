package ledger

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"
)

// SheetRef names one sheet inside one spreadsheet.
type SheetRef struct {
	SpreadsheetID string
	Sheet         string
}

//go:generate mockgen -source=ledger_repo.go -destination=mock/ledger_repo_mock.go -package=mock
type Repository interface {
	// Rows reads the full balance ledger.
	Rows(ctx context.Context) ([]Row, error)
	// UpdateBalance writes a new remaining balance at the given cell.
	UpdateBalance(ctx context.Context, coord Coordinate, balance float64) error
	// AppendResult appends one decided request to the result ledger, in
	// the result sheet's declared column order.
	AppendResult(ctx context.Context, values []string) error
}

type sheetsRepository struct {
	svc    *sheets.Service
	source SheetRef
	result SheetRef
	logger *zap.Logger
}

func NewSheetsRepository(svc *sheets.Service, source, result SheetRef, logger ...*zap.Logger) Repository {
	l := zap.L().Named("ledger.repo")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.repo")
	}
	return &sheetsRepository{svc: svc, source: source, result: result, logger: l}
}

func (r *sheetsRepository) Rows(ctx context.Context) ([]Row, error) {
	resp, err := r.svc.Spreadsheets.Values.
		Get(r.source.SpreadsheetID, r.source.Sheet).
		Context(ctx).
		Do()
	if err != nil {
		r.logger.Error("read ledger rows failed", zap.Error(err))
		return nil, err
	}

	rows := make([]Row, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make(Row, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *sheetsRepository) UpdateBalance(ctx context.Context, coord Coordinate, balance float64) error {
	value := strconv.FormatFloat(balance, 'f', -1, 64)
	vr := &sheets.ValueRange{Values: [][]any{{value}}}

	_, err := r.svc.Spreadsheets.Values.
		Update(r.source.SpreadsheetID, r.source.Sheet+"!"+coord.Ref(), vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		r.logger.Error("update ledger balance failed",
			zap.String("cell", coord.Ref()),
			zap.Error(err),
		)
		return err
	}

	r.logger.Info("ledger balance updated",
		zap.String("cell", coord.Ref()),
		zap.String("balance", value),
	)
	return nil
}

func (r *sheetsRepository) AppendResult(ctx context.Context, values []string) error {
	raw := make([]any, len(values))
	for i, v := range values {
		raw[i] = v
	}
	vr := &sheets.ValueRange{Values: [][]any{raw}}

	_, err := r.svc.Spreadsheets.Values.
		Append(r.result.SpreadsheetID, r.result.Sheet, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		r.logger.Error("append result row failed", zap.Error(err))
		return err
	}

	r.logger.Info("result row appended", zap.Int("columns", len(values)))
	return nil
}
