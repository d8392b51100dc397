package translate

import "leavebot/internal/request"

var labels = map[string]string{
	string(request.CategoryFullDay):          "Annual leave",
	string(request.CategoryHalfDayMorning):   "Morning half-day",
	string(request.CategoryHalfDayAfternoon): "Afternoon half-day",
	string(request.CategorySick):             "Sick leave",
	string(request.CategoryBereavement):      "Bereavement leave",
	string(request.CategoryOther):            "Other",
}

// Translate maps a category code to its display label. Unknown values pass
// through unchanged, so a label that is already human-readable survives a
// second translation.
func Translate(value string) string {
	if label, ok := labels[value]; ok {
		return label
	}
	return value
}
