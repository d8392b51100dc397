package slack

// Minimal Block Kit surface: just the block and element kinds the
// request modal and the approval prompt use.

type TextObject struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

func PlainText(text string) *TextObject {
	return &TextObject{Type: "plain_text", Text: text, Emoji: true}
}

func Markdown(text string) *TextObject {
	return &TextObject{Type: "mrkdwn", Text: text}
}

type Option struct {
	Text  *TextObject `json:"text"`
	Value string      `json:"value"`
}

type Element struct {
	Type        string      `json:"type"`
	ActionID    string      `json:"action_id,omitempty"`
	Text        *TextObject `json:"text,omitempty"`
	Value       string      `json:"value,omitempty"`
	Style       string      `json:"style,omitempty"`
	InitialDate string      `json:"initial_date,omitempty"`
	Placeholder *TextObject `json:"placeholder,omitempty"`
	Options     []Option    `json:"options,omitempty"`
	Multiline   bool        `json:"multiline,omitempty"`
}

type Block struct {
	Type     string      `json:"type"`
	BlockID  string      `json:"block_id,omitempty"`
	Text     *TextObject `json:"text,omitempty"`
	Label    *TextObject `json:"label,omitempty"`
	Element  *Element    `json:"element,omitempty"`
	Elements []Element   `json:"elements,omitempty"`
	Optional bool        `json:"optional,omitempty"`
}

func SectionBlock(blockID, text string) Block {
	return Block{
		Type:    "section",
		BlockID: blockID,
		Text:    Markdown(text),
	}
}

func ActionsBlock(blockID string, elements ...Element) Block {
	return Block{
		Type:     "actions",
		BlockID:  blockID,
		Elements: elements,
	}
}

func Button(actionID, label, value, style string) Element {
	return Element{
		Type:     "button",
		ActionID: actionID,
		Text:     PlainText(label),
		Value:    value,
		Style:    style,
	}
}
