package model

import (
	"bytes"
	"time"

	"github.com/go-faster/errors"
	"github.com/goccy/go-json"
)

// Message is a chat message as the Bot API returns it. The payload is held
// separately and flattened into the same JSON object on the wire.
type Message struct {
	ID                  int                   `json:"message_id"`
	ThreadID            int                   `json:"message_thread_id,omitempty"`
	From                *User                 `json:"from,omitempty"`
	SenderChat          *Chat                 `json:"sender_chat,omitempty"`
	Date                int64                 `json:"date"`
	Chat                Chat                  `json:"chat"`
	ForwardOrigin       *MessageOrigin        `json:"forward_origin,omitempty"`
	IsTopicMessage      bool                  `json:"is_topic_message,omitempty"`
	IsAutomaticForward  bool                  `json:"is_automatic_forward,omitempty"`
	ReplyToMessage      *Message              `json:"reply_to_message,omitempty"`
	ViaBot              *User                 `json:"via_bot,omitempty"`
	EditDate            int64                 `json:"edit_date,omitempty"`
	HasProtectedContent bool                  `json:"has_protected_content,omitempty"`
	MediaGroupID        string                `json:"media_group_id,omitempty"`
	AuthorSignature     string                `json:"author_signature,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	Payload             Payload               `json:"-"`
}

// Kind reports the payload tag, or an empty kind when no payload is set.
func (m Message) Kind() Kind {
	if m.Payload == nil {
		return ""
	}
	return m.Payload.Kind()
}

func (m Message) Time() time.Time {
	return time.Unix(m.Date, 0)
}

// Text returns the text of a text message.
func (m Message) Text() (string, bool) {
	p, ok := m.Payload.(TextPayload)
	return p.Text, ok
}

// Caption returns the caption of a captioned message.
func (m Message) Caption() (string, []MessageEntity, bool) {
	return Caption(m.Payload)
}

// Clone returns a copy that shares no slices or pointers with m, except
// for the payload which is a value type holding read-only slices.
func (m Message) Clone() Message {
	out := m
	if m.From != nil {
		u := *m.From
		out.From = &u
	}
	if m.SenderChat != nil {
		c := *m.SenderChat
		out.SenderChat = &c
	}
	if m.ViaBot != nil {
		u := *m.ViaBot
		out.ViaBot = &u
	}
	if m.ForwardOrigin != nil {
		o := *m.ForwardOrigin
		out.ForwardOrigin = &o
	}
	if m.ReplyToMessage != nil {
		r := m.ReplyToMessage.Clone()
		out.ReplyToMessage = &r
	}
	if m.ReplyMarkup != nil {
		out.ReplyMarkup = m.ReplyMarkup.Clone()
	}
	return out
}

// AsReplyTarget strips the nested reply of m, the way the platform embeds a
// replied-to message one level deep only.
func (m Message) AsReplyTarget() *Message {
	out := m.Clone()
	out.ReplyToMessage = nil
	return &out
}

func (m Message) MarshalJSON() ([]byte, error) {
	type header Message
	h, err := json.Marshal(header(m))
	if err != nil {
		return nil, errors.Wrap(err, "marshal message header")
	}
	if m.Payload == nil {
		return h, nil
	}
	p, err := json.Marshal(m.Payload)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s payload", m.Payload.Kind())
	}
	return spliceObjects(h, p), nil
}

func (m *Message) UnmarshalJSON(data []byte) error {
	type header Message
	var h header
	if err := json.Unmarshal(data, &h); err != nil {
		return errors.Wrap(err, "unmarshal message header")
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return errors.Wrap(err, "unmarshal message keys")
	}
	p, err := decodePayload(keys, data)
	if err != nil {
		return errors.Wrap(err, "unmarshal message payload")
	}
	*m = Message(h)
	m.Payload = p
	return nil
}

// spliceObjects joins two encoded JSON objects into one.
func spliceObjects(a, b []byte) []byte {
	b = bytes.TrimSpace(b)
	if len(b) <= 2 {
		return a
	}
	a = bytes.TrimSpace(a)
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a[:len(a)-1]...)
	if len(a) > 2 {
		out = append(out, ',')
	}
	return append(out, b[1:]...)
}

func decodeAs[P Payload](data []byte) (Payload, error) {
	var p P
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// decodePayload picks the payload kind from the keys present in a message
// object. Animation messages also carry a document and venues carry a
// location, so those are checked first.
func decodePayload(keys map[string]json.RawMessage, data []byte) (Payload, error) {
	has := func(k string) bool {
		_, ok := keys[k]
		return ok
	}
	switch {
	case has("animation"):
		return decodeAs[AnimationPayload](data)
	case has("venue"):
		return decodeAs[VenuePayload](data)
	case has("text"):
		return decodeAs[TextPayload](data)
	case has("photo"):
		return decodeAs[PhotoPayload](data)
	case has("video"):
		return decodeAs[VideoPayload](data)
	case has("audio"):
		return decodeAs[AudioPayload](data)
	case has("voice"):
		return decodeAs[VoicePayload](data)
	case has("document"):
		return decodeAs[DocumentPayload](data)
	case has("sticker"):
		return decodeAs[StickerPayload](data)
	case has("contact"):
		return decodeAs[ContactPayload](data)
	case has("location"):
		return decodeAs[LocationPayload](data)
	case has("poll"):
		return decodeAs[PollPayload](data)
	case has("dice"):
		return decodeAs[DicePayload](data)
	case has("game"):
		return decodeAs[GamePayload](data)
	case has("video_note"):
		return decodeAs[VideoNotePayload](data)
	case has("migrate_to_chat_id"):
		return decodeAs[MigrateToChatPayload](data)
	case has("migrate_from_chat_id"):
		return decodeAs[MigrateFromChatPayload](data)
	default:
		return nil, nil
	}
}

// MessageIDResult is returned by copyMessage.
type MessageIDResult struct {
	MessageID int `json:"message_id"`
}
