package request_test

import (
	"testing"
	"time"

	"leavebot/internal/request"

	"github.com/stretchr/testify/assert"
)

var clock = time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)

func leaveRequest(category request.Category, start, end, reason string) request.LeaveRequest {
	return request.LeaveRequest{
		RequesterHandle: "jdoe",
		Category:        category,
		StartDate:       request.ParseDate(start),
		EndDate:         request.ParseDate(end),
		Reason:          reason,
	}
}

func TestValidate(t *testing.T) {
	t.Run("three-day request within balance has no flags", func(t *testing.T) {
		req := leaveRequest(request.CategoryFullDay, "2024-01-10", "2024-01-12", "-")

		res := request.Validate(req, 5, clock)

		assert.True(t, res.Valid())
		assert.Equal(t, 3.0, res.Length)
	})

	t.Run("half-day length is 0.5", func(t *testing.T) {
		req := leaveRequest(request.CategoryHalfDayMorning, "2024-01-10", "2024-01-10", "-")

		res := request.Validate(req, 5, clock)

		assert.True(t, res.Valid())
		assert.Equal(t, 0.5, res.Length)
	})

	t.Run("inverted range yields negative length", func(t *testing.T) {
		req := leaveRequest(request.CategoryFullDay, "2024-01-01", "2023-12-30", "-")

		res := request.Validate(req, 5, clock)

		assert.True(t, res.NegativeLength)
		assert.Equal(t, -1.0, res.Length)
	})

	t.Run("negative length iff end before start", func(t *testing.T) {
		forward := leaveRequest(request.CategoryFullDay, "2024-02-01", "2024-02-01", "-")
		backward := leaveRequest(request.CategoryFullDay, "2024-02-02", "2024-02-01", "-")

		assert.False(t, request.Validate(forward, 10, clock).NegativeLength)
		assert.True(t, request.Validate(backward, 10, clock).NegativeLength)
	})

	t.Run("end one day before start is inverted despite a zero length", func(t *testing.T) {
		req := leaveRequest(request.CategoryFullDay, "2024-02-02", "2024-02-01", "-")

		res := request.Validate(req, 10, clock)

		assert.Equal(t, 0.0, res.Length)
		assert.True(t, res.NegativeLength)
		assert.False(t, res.Valid())
	})

	t.Run("other category requires a reason", func(t *testing.T) {
		req := leaveRequest(request.CategoryOther, "2024-01-10", "2024-01-10", request.Sentinel)

		res := request.Validate(req, 5, clock)

		assert.True(t, res.MissingOtherReason)

		req.Reason = "moving apartments"
		assert.False(t, request.Validate(req, 5, clock).MissingOtherReason)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		req := leaveRequest(request.CategoryFullDay, "2024-01-10", "2024-01-12", "-")

		res := request.Validate(req, 1, clock)

		assert.True(t, res.InsufficientBalance)
		assert.Equal(t, 3.0, res.Length)
	})

	t.Run("balance exactly equal to length is sufficient", func(t *testing.T) {
		req := leaveRequest(request.CategoryFullDay, "2024-01-10", "2024-01-12", "-")

		res := request.Validate(req, 3, clock)

		assert.False(t, res.InsufficientBalance)
	})

	t.Run("start in the past", func(t *testing.T) {
		req := leaveRequest(request.CategoryFullDay, "2024-01-04", "2024-01-10", "-")

		res := request.Validate(req, 30, clock)

		assert.True(t, res.StartInPast)
	})

	t.Run("start today is not in the past", func(t *testing.T) {
		req := leaveRequest(request.CategoryFullDay, "2024-01-05", "2024-01-05", "-")

		res := request.Validate(req, 30, clock)

		assert.False(t, res.StartInPast)
	})

	t.Run("length is computed even when flags are raised", func(t *testing.T) {
		req := leaveRequest(request.CategoryOther, "2024-01-02", "2024-01-03", request.Sentinel)

		res := request.Validate(req, 0, clock)

		assert.False(t, res.Valid())
		assert.Equal(t, 2.0, res.Length)
	})

	t.Run("malformed dates always trip a flag", func(t *testing.T) {
		zeroStart := leaveRequest(request.CategoryFullDay, "bad", "2024-01-10", "-")
		zeroEnd := leaveRequest(request.CategoryFullDay, "2024-01-10", "bad", "-")
		bothZero := leaveRequest(request.CategoryFullDay, "bad", "bad", "-")

		assert.False(t, request.Validate(zeroStart, 1000, clock).Valid())
		assert.False(t, request.Validate(zeroEnd, 1000, clock).Valid())
		assert.False(t, request.Validate(bothZero, 1000, clock).Valid())
	})

	t.Run("pure: identical inputs yield identical results", func(t *testing.T) {
		req := leaveRequest(request.CategoryFullDay, "2024-01-10", "2024-01-12", "-")

		first := request.Validate(req, 5, clock)
		second := request.Validate(req, 5, clock)

		assert.Equal(t, first, second)
	})
}

func TestFieldErrors(t *testing.T) {
	t.Run("every field key present, failures mapped", func(t *testing.T) {
		res := request.ValidationResult{
			StartInPast:         true,
			InsufficientBalance: true,
			NegativeLength:      false,
			MissingOtherReason:  false,
		}

		errs := res.FieldErrors()

		assert.Len(t, errs, 4)
		assert.NotEmpty(t, errs[request.FieldStart])
		assert.NotEmpty(t, errs[request.FieldCategory])
		assert.Empty(t, errs[request.FieldEnd])
		assert.Empty(t, errs[request.FieldReason])
	})
}
