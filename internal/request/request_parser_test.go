package request_test

import (
	"testing"
	"time"

	"leavebot/internal/request"

	"github.com/stretchr/testify/assert"
)

func formState(category, start, end, reason string) request.FormState {
	state := request.FormState{}
	if category != "" {
		state[request.FieldCategory] = request.FormAnswer{SelectedOptionValue: category}
	}
	if start != "" {
		state[request.FieldStart] = request.FormAnswer{SelectedDate: start}
	}
	if end != "" {
		state[request.FieldEnd] = request.FormAnswer{SelectedDate: end}
	}
	if reason != "" {
		state[request.FieldReason] = request.FormAnswer{Value: reason}
	}
	return state
}

func TestParseSubmission(t *testing.T) {
	t.Run("full-day request keeps both dates", func(t *testing.T) {
		req := request.ParseSubmission("jdoe", formState("full-day", "2024-01-10", "2024-01-12", ""))

		assert.Equal(t, "jdoe", req.RequesterHandle)
		assert.Equal(t, request.CategoryFullDay, req.Category)
		assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), req.StartDate)
		assert.Equal(t, time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), req.EndDate)
		assert.Equal(t, request.Sentinel, req.Reason)
	})

	t.Run("half-day categories collapse the end date", func(t *testing.T) {
		for _, category := range []string{"half-day-morning", "half-day-afternoon"} {
			req := request.ParseSubmission("jdoe", formState(category, "2024-01-10", "2024-01-15", ""))

			assert.Equal(t, req.StartDate, req.EndDate, "category %s", category)
			assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), req.EndDate)
		}
	})

	t.Run("absent fields become the sentinel", func(t *testing.T) {
		req := request.ParseSubmission("jdoe", request.FormState{})

		assert.Equal(t, request.Category(request.Sentinel), req.Category)
		assert.Equal(t, request.Sentinel, req.Reason)
		assert.True(t, req.StartDate.IsZero())
		assert.True(t, req.EndDate.IsZero())
	})

	t.Run("malformed dates become the zero time, not an error", func(t *testing.T) {
		req := request.ParseSubmission("jdoe", formState("full-day", "not-a-date", "2024-01-12", ""))

		assert.True(t, req.StartDate.IsZero())
		assert.False(t, req.EndDate.IsZero())
	})

	t.Run("empty answers become the sentinel", func(t *testing.T) {
		state := request.FormState{
			request.FieldReason: {},
		}
		req := request.ParseSubmission("jdoe", state)

		assert.Equal(t, request.Sentinel, req.Reason)
	})
}

func TestParseCategory(t *testing.T) {
	t.Run("known codes round trip", func(t *testing.T) {
		for _, c := range request.Categories {
			parsed, ok := request.ParseCategory(string(c))
			assert.True(t, ok)
			assert.Equal(t, c, parsed)
		}
	})

	t.Run("unknown codes are preserved but flagged", func(t *testing.T) {
		parsed, ok := request.ParseCategory("sabbatical")
		assert.False(t, ok)
		assert.Equal(t, request.Category("sabbatical"), parsed)
	})
}

func TestIsHalfDay(t *testing.T) {
	assert.True(t, request.CategoryHalfDayMorning.IsHalfDay())
	assert.True(t, request.CategoryHalfDayAfternoon.IsHalfDay())
	assert.False(t, request.CategoryFullDay.IsHalfDay())
	assert.False(t, request.CategorySick.IsHalfDay())
	assert.False(t, request.CategoryBereavement.IsHalfDay())
	assert.False(t, request.CategoryOther.IsHalfDay())
}
