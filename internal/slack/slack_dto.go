package slack

import "leavebot/internal/request"

// User identifies the acting Slack user on any inbound payload.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// SlashCommand is the form-encoded body Slack posts for a slash command.
type SlashCommand struct {
	Command   string `form:"command" binding:"required"`
	TriggerID string `form:"trigger_id" binding:"required"`
	UserID    string `form:"user_id"`
	UserName  string `form:"user_name"`
}

// BlockValue is one entry of a view submission state. Which field carries
// the answer depends on the input element kind.
type BlockValue struct {
	Type           string `json:"type"`
	Value          string `json:"value"`
	SelectedDate   string `json:"selected_date"`
	SelectedOption *struct {
		Value string `json:"value"`
	} `json:"selected_option"`
}

// ViewState is the nested answer map of a view submission, keyed by block
// id and action id.
type ViewState struct {
	Values map[string]map[string]BlockValue `json:"values"`
}

// FormState flattens the state into the parser's neutral shape, taking
// the first answer under each block.
func (s ViewState) FormState() request.FormState {
	state := make(request.FormState, len(s.Values))
	for blockID, answers := range s.Values {
		for _, v := range answers {
			answer := request.FormAnswer{
				Value:        v.Value,
				SelectedDate: v.SelectedDate,
			}
			if v.SelectedOption != nil {
				answer.SelectedOptionValue = v.SelectedOption.Value
			}
			state[blockID] = answer
			break
		}
	}
	return state
}

type View struct {
	CallbackID string    `json:"callback_id"`
	State      ViewState `json:"state"`
}

type Action struct {
	ActionID string `json:"action_id"`
	Value    string `json:"value"`
	ActionTS string `json:"action_ts"`
}

type Message struct {
	TS     string  `json:"ts"`
	Blocks []Block `json:"blocks"`
}

// InteractionPayload is the envelope of the interactivity endpoint; Type
// selects which of the optional parts is populated.
type InteractionPayload struct {
	Type      string   `json:"type"`
	User      User     `json:"user"`
	TriggerID string   `json:"trigger_id"`
	View      *View    `json:"view"`
	Actions   []Action `json:"actions"`
	Message   *Message `json:"message"`
}

const (
	InteractionViewSubmission = "view_submission"
	InteractionBlockActions   = "block_actions"
)

// ViewErrorsResponse is the ack body that surfaces per-field errors on an
// open modal. Fields with empty messages must be omitted or Slack rejects
// the whole response.
type ViewErrorsResponse struct {
	ResponseAction string            `json:"response_action"`
	Errors         map[string]string `json:"errors"`
}

func NewViewErrorsResponse(fieldErrors map[string]string) ViewErrorsResponse {
	errs := make(map[string]string)
	for field, msg := range fieldErrors {
		if msg != "" {
			errs[field] = msg
		}
	}
	return ViewErrorsResponse{ResponseAction: "errors", Errors: errs}
}
