package request

import "time"

// ValidationResult is the full set of business-rule checks for one
// request. Length is computed unconditionally so approval messages can
// display it even for rejected requests.
type ValidationResult struct {
	StartInPast         bool
	InsufficientBalance bool
	NegativeLength      bool
	MissingOtherReason  bool
	Length              float64
}

// Validate runs every business rule against the request. The reference
// time is an explicit parameter so callers control the clock; the function
// is pure and never errors.
//
// A request with a malformed (zero) date always trips at least one flag:
// a zero start date is in the past, and a zero end date with a valid start
// is an inverted range.
func Validate(req LeaveRequest, availableBalance float64, now time.Time) ValidationResult {
	length := LeaveLength(req.Category, req.StartDate, req.EndDate)

	// Inversion is detected on the dates, not on the computed length: an
	// end date exactly one day before the start yields a length of zero,
	// which a sign check alone would let through.
	inverted := !req.Category.IsHalfDay() && req.EndDate.Before(req.StartDate)

	return ValidationResult{
		StartInPast:         req.StartDate.Before(today(now)),
		InsufficientBalance: availableBalance-length < 0,
		NegativeLength:      inverted,
		MissingOtherReason:  req.Category == CategoryOther && req.Reason == Sentinel,
		Length:              length,
	}
}

func (r ValidationResult) Valid() bool {
	return !r.StartInPast && !r.InsufficientBalance && !r.NegativeLength && !r.MissingOtherReason
}

// FieldErrors maps each failed check to its form field. Every field key is
// present; an empty string means no error on that field.
func (r ValidationResult) FieldErrors() map[string]string {
	errs := map[string]string{
		FieldStart:    "",
		FieldCategory: "",
		FieldEnd:      "",
		FieldReason:   "",
	}
	if r.StartInPast {
		errs[FieldStart] = "start date must not be in the past"
	}
	if r.InsufficientBalance {
		errs[FieldCategory] = "not enough leave balance remaining"
	}
	if r.NegativeLength {
		errs[FieldEnd] = "end date must not be before start date"
	}
	if r.MissingOtherReason {
		errs[FieldReason] = "a reason is required for the other category"
	}
	return errs
}

// today truncates the reference time to a UTC calendar date so requests
// starting today are never flagged as in the past.
func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
