package request

// ParseSubmission normalizes a raw form submission into a LeaveRequest.
// It is total: missing or mistyped fields become the sentinel, malformed
// dates become the zero time, and half-day categories collapse the end
// date onto the start date. All rejection happens later in Validate.
func ParseSubmission(requesterHandle string, state FormState) LeaveRequest {
	category, _ := ParseCategory(field(state, FieldCategory))

	req := LeaveRequest{
		RequesterHandle: requesterHandle,
		Category:        category,
		StartDate:       ParseDate(field(state, FieldStart)),
		EndDate:         ParseDate(field(state, FieldEnd)),
		Reason:          field(state, FieldReason),
	}

	// Half-day collapsing: a half-day request has no multi-day meaning.
	if req.Category.IsHalfDay() {
		req.EndDate = req.StartDate
	}

	return req
}

func field(state FormState, key string) string {
	answer, ok := state[key]
	if !ok {
		return Sentinel
	}
	return answer.Extract()
}
