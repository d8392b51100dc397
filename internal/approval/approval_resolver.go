package approval

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"leavebot/internal/request"
)

// ResolveDecision rebuilds the original request from the prompt payload
// and stamps the decision onto it. It is total: a missing or unparseable
// payload degrades field by field to the sentinel rather than failing,
// so a human decision is never lost to a malformed echo.
func ResolveDecision(action DecisionAction) ApprovalRecord {
	payload := map[string]string{}
	_ = json.Unmarshal([]byte(action.Value), &payload)

	get := func(key string) string {
		if v, ok := payload[key]; ok && v != "" {
			return v
		}
		return request.Sentinel
	}

	decision := DecisionDenied
	if action.ActionID == ActionApprove {
		decision = DecisionApproved
	}

	category, _ := request.ParseCategory(get(request.FieldCategory))

	return ApprovalRecord{
		ApproverIdentity: action.Approver.Display(),
		Decision:         decision,
		DecidedAt:        decisionDate(action.ActionTS),

		RequesterID:      get(FieldRequesterID),
		RequesterHandle:  get(FieldRequesterHandle),
		RequesterDisplay: get(FieldRequester),
		Category:         category,
		StartDate:        request.ParseDate(get(request.FieldStart)),
		EndDate:          request.ParseDate(get(request.FieldEnd)),
		Reason:           get(request.FieldReason),
	}
}

// decisionDate converts an action timestamp ("1700000000.123456", epoch
// seconds) to a UTC calendar date. Unparseable input yields the zero time.
func decisionDate(actionTS string) time.Time {
	secs, _, _ := strings.Cut(actionTS, ".")
	epoch, err := strconv.ParseInt(secs, 10, 64)
	if err != nil {
		return time.Time{}
	}
	t := time.Unix(epoch, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
