package approval

import (
	"encoding/json"

	"leavebot/internal/request"
	"leavebot/internal/shared/translate"
	"leavebot/internal/slack"
)

// promptFields is the shared schema between BuildPrompt and
// ResolveDecision: the builder writes exactly these keys into the prompt
// payload and the resolver reads exactly these keys back.
var promptFields = []string{
	FieldRequester,
	request.FieldCategory,
	request.FieldStart,
	request.FieldEnd,
	request.FieldReason,
}

var fieldLabels = map[string]string{
	FieldRequester:        "Requester",
	request.FieldCategory: "Leave type",
	request.FieldStart:    "Start date",
	request.FieldEnd:      "End date",
	request.FieldReason:   "Reason",
}

// Prompt is the approval message: display sections for the approver plus
// the key-value payload that carries the request state through the chat
// platform and back.
type Prompt struct {
	Text   string
	Blocks []slack.Block
}

// BuildPrompt renders a validated request into the approval prompt. The
// sections are display-only; the approve/deny buttons carry the raw field
// values (and the requester's hidden id) as a JSON key-value payload, so
// the decision stage parses by field identifier instead of splitting
// rendered text.
func BuildPrompt(req request.LeaveRequest, requester Identity) Prompt {
	payload := map[string]string{
		FieldRequester:        requester.Display(),
		FieldRequesterID:      requester.ID,
		FieldRequesterHandle:  requester.Handle,
		request.FieldCategory: string(req.Category),
		request.FieldStart:    req.StartDate.Format(request.DateFormat),
		request.FieldEnd:      req.EndDate.Format(request.DateFormat),
		request.FieldReason:   req.Reason,
	}
	value, _ := json.Marshal(payload)

	display := map[string]string{
		FieldRequester:        requester.Display(),
		request.FieldCategory: translate.Translate(string(req.Category)),
		request.FieldStart:    req.StartDate.Format(request.DateFormat),
		request.FieldEnd:      req.EndDate.Format(request.DateFormat),
		request.FieldReason:   req.Reason,
	}

	blocks := make([]slack.Block, 0, len(promptFields)+2)
	blocks = append(blocks, slack.SectionBlock("leave_prompt_header", "*New leave request*"))
	for _, field := range promptFields {
		blocks = append(blocks, slack.SectionBlock(field, fieldLabels[field]+": "+display[field]))
	}
	blocks = append(blocks, slack.ActionsBlock("leave_decision",
		slack.Button(ActionApprove, "Approve", string(value), "primary"),
		slack.Button(ActionDeny, "Deny", string(value), "danger"),
	))

	return Prompt{
		Text:   "New leave request from " + requester.Display(),
		Blocks: blocks,
	}
}
