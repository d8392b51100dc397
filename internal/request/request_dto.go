package request

// FormAnswer is one raw form answer. Exactly one of the fields is set
// depending on the input element kind; Extract collapses them to a scalar.
type FormAnswer struct {
	Value               string
	SelectedDate        string
	SelectedOptionValue string
}

// Extract resolves the answer to its scalar value, or the sentinel when
// nothing was provided.
func (a FormAnswer) Extract() string {
	switch {
	case a.SelectedOptionValue != "":
		return a.SelectedOptionValue
	case a.SelectedDate != "":
		return a.SelectedDate
	case a.Value != "":
		return a.Value
	default:
		return Sentinel
	}
}

// FormState maps field identifiers to raw answers. Fields may be absent.
type FormState map[string]FormAnswer
