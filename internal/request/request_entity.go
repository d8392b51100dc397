package request

import "time"

// Category is the closed set of leave categories. Dispatch is always on the
// enum value, never on substring matching against the label.
type Category string

const (
	CategoryFullDay          Category = "full-day"
	CategoryHalfDayMorning   Category = "half-day-morning"
	CategoryHalfDayAfternoon Category = "half-day-afternoon"
	CategorySick             Category = "sick"
	CategoryBereavement      Category = "bereavement"
	CategoryOther            Category = "other"
)

// Categories lists every valid category in form-display order.
var Categories = []Category{
	CategoryFullDay,
	CategoryHalfDayMorning,
	CategoryHalfDayAfternoon,
	CategorySick,
	CategoryBereavement,
	CategoryOther,
}

func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return Category(s), false
}

func (c Category) IsHalfDay() bool {
	return c == CategoryHalfDayMorning || c == CategoryHalfDayAfternoon
}

const (
	// DateFormat is the wire format for every date in the workflow.
	DateFormat = "2006-01-02"

	// Sentinel replaces any form answer that could not be extracted. Absent
	// answers are business-valid (e.g. the optional reason), so extraction
	// never fails.
	Sentinel = "-"
)

// Form field identifiers. The modal inputs, the parser, the validation
// error map and the approval prompt all share this set; adding a field
// means touching this list, nothing else.
const (
	FieldCategory = "leave_category"
	FieldStart    = "leave_start"
	FieldEnd      = "leave_end"
	FieldReason   = "leave_reason"
)

// LeaveRequest is a normalized form submission. Dates are UTC midnight; a
// zero time is the invalid-date sentinel and is caught by Validate, not by
// the parser. StartDate <= EndDate is deliberately not guaranteed here.
type LeaveRequest struct {
	RequesterHandle string
	Category        Category
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
}

// ParseDate coerces a wire date. Malformed input yields the zero time.
func ParseDate(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// LeaveLength is the single authoritative length computation: 0.5 for
// half-day categories, else the inclusive day count. An inverted range
// yields zero or less; zero when EndDate is exactly one day before
// StartDate, so inversion is checked on the dates, not on this value.
func LeaveLength(category Category, start, end time.Time) float64 {
	if category.IsHalfDay() {
		return 0.5
	}
	return end.Sub(start).Hours()/24 + 1
}
