package slack

import (
	"time"

	"leavebot/internal/request"
	"leavebot/internal/shared/translate"
)

// RequestModalCallbackID routes view submissions back to the leave flow.
const RequestModalCallbackID = "leave-request-modal"

// ModalView is the views.open payload.
type ModalView struct {
	Type       string      `json:"type"`
	CallbackID string      `json:"callback_id"`
	Title      *TextObject `json:"title"`
	Submit     *TextObject `json:"submit"`
	Close      *TextObject `json:"close"`
	Blocks     []Block     `json:"blocks"`
}

// RequestModal builds the leave-request form. Both datepickers are seeded
// with the reference date so the default request is a single day of leave
// starting today.
func RequestModal(today time.Time) ModalView {
	date := today.Format(request.DateFormat)

	options := make([]Option, 0, len(request.Categories))
	for _, c := range request.Categories {
		options = append(options, Option{
			Text:  PlainText(translate.Translate(string(c))),
			Value: string(c),
		})
	}

	return ModalView{
		Type:       "modal",
		CallbackID: RequestModalCallbackID,
		Title:      PlainText("Leave request"),
		Submit:     PlainText("Submit"),
		Close:      PlainText("Cancel"),
		Blocks: []Block{
			{
				Type:    "input",
				BlockID: request.FieldCategory,
				Label:   PlainText("Leave type"),
				Element: &Element{
					Type:        "static_select",
					ActionID:    request.FieldCategory,
					Placeholder: PlainText("Select a leave type"),
					Options:     options,
				},
			},
			{
				Type:    "input",
				BlockID: request.FieldStart,
				Label:   PlainText("Start date"),
				Element: &Element{
					Type:        "datepicker",
					ActionID:    request.FieldStart,
					InitialDate: date,
				},
			},
			{
				Type:    "input",
				BlockID: request.FieldEnd,
				Label:   PlainText("End date"),
				Element: &Element{
					Type:        "datepicker",
					ActionID:    request.FieldEnd,
					InitialDate: date,
				},
			},
			{
				Type:     "input",
				BlockID:  request.FieldReason,
				Label:    PlainText("Reason"),
				Optional: true,
				Element: &Element{
					Type:      "plain_text_input",
					ActionID:  request.FieldReason,
					Multiline: true,
				},
			},
		},
	}
}
