package model

import (
	"github.com/go-faster/errors"
	"github.com/goccy/go-json"
)

type InlineKeyboardButton struct {
	Text                         string `json:"text"`
	URL                          string `json:"url,omitempty"`
	CallbackData                 string `json:"callback_data,omitempty"`
	SwitchInlineQuery            string `json:"switch_inline_query,omitempty"`
	SwitchInlineQueryCurrentChat string `json:"switch_inline_query_current_chat,omitempty"`
}

type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

func (k *InlineKeyboardMarkup) Clone() *InlineKeyboardMarkup {
	rows := make([][]InlineKeyboardButton, len(k.InlineKeyboard))
	for i, row := range k.InlineKeyboard {
		rows[i] = append([]InlineKeyboardButton(nil), row...)
	}
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}

// NewInlineKeyboard builds a keyboard from rows of buttons.
func NewInlineKeyboard(rows ...[]InlineKeyboardButton) *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}

func CallbackButton(text, data string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, CallbackData: data}
}

type KeyboardButton struct {
	Text            string `json:"text"`
	RequestContact  bool   `json:"request_contact,omitempty"`
	RequestLocation bool   `json:"request_location,omitempty"`
}

type ReplyKeyboardMarkup struct {
	Keyboard              [][]KeyboardButton `json:"keyboard"`
	IsPersistent          bool               `json:"is_persistent,omitempty"`
	ResizeKeyboard        bool               `json:"resize_keyboard,omitempty"`
	OneTimeKeyboard       bool               `json:"one_time_keyboard,omitempty"`
	InputFieldPlaceholder string             `json:"input_field_placeholder,omitempty"`
	Selective             bool               `json:"selective,omitempty"`
}

type ReplyKeyboardRemove struct {
	RemoveKeyboard bool `json:"remove_keyboard"`
	Selective      bool `json:"selective,omitempty"`
}

type ForceReply struct {
	ForceReply            bool   `json:"force_reply"`
	InputFieldPlaceholder string `json:"input_field_placeholder,omitempty"`
	Selective             bool   `json:"selective,omitempty"`
}

// ReplyMarkup is the reply_markup parameter of send methods. One of the
// fields is set.
type ReplyMarkup struct {
	Inline     *InlineKeyboardMarkup
	Keyboard   *ReplyKeyboardMarkup
	Remove     *ReplyKeyboardRemove
	ForceReply *ForceReply
}

func InlineMarkup(k *InlineKeyboardMarkup) *ReplyMarkup {
	return &ReplyMarkup{Inline: k}
}

func (r ReplyMarkup) MarshalJSON() ([]byte, error) {
	switch {
	case r.Inline != nil:
		return json.Marshal(r.Inline)
	case r.Keyboard != nil:
		return json.Marshal(r.Keyboard)
	case r.Remove != nil:
		return json.Marshal(r.Remove)
	case r.ForceReply != nil:
		return json.Marshal(r.ForceReply)
	default:
		return []byte("null"), nil
	}
}

func (r *ReplyMarkup) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return errors.Wrap(err, "unmarshal reply markup")
	}
	*r = ReplyMarkup{}
	var target any
	switch {
	case keys["inline_keyboard"] != nil:
		r.Inline = &InlineKeyboardMarkup{}
		target = r.Inline
	case keys["keyboard"] != nil:
		r.Keyboard = &ReplyKeyboardMarkup{}
		target = r.Keyboard
	case keys["remove_keyboard"] != nil:
		r.Remove = &ReplyKeyboardRemove{}
		target = r.Remove
	case keys["force_reply"] != nil:
		r.ForceReply = &ForceReply{}
		target = r.ForceReply
	default:
		return errors.New("unknown reply markup")
	}
	return json.Unmarshal(data, target)
}

// InlineKeyboard returns the inline keyboard variant, or nil for any other
// kind of markup.
func (r *ReplyMarkup) InlineKeyboard() *InlineKeyboardMarkup {
	if r == nil || r.Inline == nil {
		return nil
	}
	return r.Inline.Clone()
}
