package approval

import (
	"fmt"
	"time"

	"leavebot/internal/request"
)

// Identity is the chat-platform identity of a requester or approver.
type Identity struct {
	ID     string
	Name   string
	Handle string
}

// Display renders the identity the way ledger rows and prompts show it.
func (i Identity) Display() string {
	return fmt.Sprintf("%s (%s)", i.Name, i.Handle)
}

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionDenied   Decision = "denied"
)

func (d Decision) Label() string {
	if d == DecisionApproved {
		return "Approved"
	}
	return "Denied"
}

// Prompt payload keys beyond the request form fields. The requester's id
// and handle ride along inside the prompt payload, hidden from the
// approver, so the decision stage needs no server-side request store.
const (
	FieldRequester       = "requester"
	FieldRequesterID     = "requester_id"
	FieldRequesterHandle = "requester_handle"
)

// Button action ids on the approval prompt.
const (
	ActionApprove = "approve-leave"
	ActionDeny    = "deny-leave"
)

// ApprovalRecord is a decided leave request, rebuilt entirely from the
// prompt payload the chat platform echoes back. Fields missing from the
// payload hold the sentinel; dates that fail to parse are zero.
type ApprovalRecord struct {
	ApproverIdentity string
	Decision         Decision
	DecidedAt        time.Time

	RequesterID      string
	RequesterHandle  string
	RequesterDisplay string
	Category         request.Category
	StartDate        time.Time
	EndDate          time.Time
	Reason           string
}

// DecisionAction is the inbound approve/deny button press.
type DecisionAction struct {
	ActionID  string
	Value     string
	ActionTS  string
	MessageTS string
	Approver  Identity
}

// Submission is an inbound leave-request form submission.
type Submission struct {
	Requester Identity
	State     request.FormState
}
