package ledger

import (
	"fmt"
	"strconv"
)

// Row is one ledger row as read from the backing sheet: handle first,
// remaining balance second, anything after that ignored.
type Row []string

func (r Row) Handle() string {
	if len(r) < 1 {
		return ""
	}
	return r[0]
}

func (r Row) Balance() (float64, error) {
	if len(r) < 2 {
		return 0, fmt.Errorf("row for %q has no balance column", r.Handle())
	}
	return strconv.ParseFloat(r[1], 64)
}

// balanceColumn is fixed by the source sheet layout: handles in A,
// remaining balances in B.
const balanceColumn = "B"

// Coordinate addresses a single balance cell, 1-based.
type Coordinate struct {
	Column string
	Row    int
}

func (c Coordinate) Ref() string {
	return c.Column + strconv.Itoa(c.Row)
}
