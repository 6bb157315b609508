package model

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/goccy/go-json"
)

// ChatID is a chat_id parameter: a numeric id or an @username.
type ChatID struct {
	ID       int64
	Username string
}

func ChatIDOf(id int64) ChatID { return ChatID{ID: id} }

// ParseChatID parses a chat_id given as a string form value.
func ParseChatID(s string) ChatID {
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ChatID{ID: id}
	}
	return ChatID{Username: strings.TrimPrefix(s, "@")}
}

func (c ChatID) IsZero() bool { return c.ID == 0 && c.Username == "" }

func (c ChatID) String() string {
	if c.Username != "" {
		return "@" + c.Username
	}
	return strconv.FormatInt(c.ID, 10)
}

func (c ChatID) MarshalJSON() ([]byte, error) {
	if c.Username != "" {
		return json.Marshal("@" + c.Username)
	}
	return []byte(strconv.FormatInt(c.ID, 10)), nil
}

func (c *ChatID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "unmarshal chat id")
		}
		*c = ParseChatID(s)
		return nil
	}
	id, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return errors.Wrap(err, "parse chat id")
	}
	*c = ChatID{ID: id}
	return nil
}

// InputFile is a file parameter: either a reference to a known file id or
// URL, or uploaded bytes.
type InputFile struct {
	FileID   string
	FileName string
	Data     []byte
}

func (f InputFile) IsUpload() bool { return f.Data != nil }

func (f InputFile) IsZero() bool { return f.FileID == "" && f.Data == nil }

type ReplyParameters struct {
	MessageID int     `json:"message_id"`
	ChatID    *ChatID `json:"chat_id,omitempty"`
}

// SendOptions holds the parameters shared by every send method.
type SendOptions struct {
	ChatID              ChatID           `json:"chat_id"`
	MessageThreadID     int              `json:"message_thread_id,omitempty"`
	DisableNotification bool             `json:"disable_notification,omitempty"`
	ProtectContent      bool             `json:"protect_content,omitempty"`
	ReplyToMessageID    int              `json:"reply_to_message_id,omitempty"`
	ReplyParameters     *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup         *ReplyMarkup     `json:"reply_markup,omitempty"`
}

// ReplyTo returns the id of the message being replied to, or 0.
func (o SendOptions) ReplyTo() int {
	if o.ReplyParameters != nil && o.ReplyParameters.MessageID != 0 {
		return o.ReplyParameters.MessageID
	}
	return o.ReplyToMessageID
}

type SendMessageRequest struct {
	SendOptions
	Text      string          `json:"text"`
	ParseMode string          `json:"parse_mode,omitempty"`
	Entities  []MessageEntity `json:"entities,omitempty"`
}

// SendMediaRequest covers the file sending methods (sendPhoto, sendVideo,
// ...). Kind selects the method and Media is sent under the field of the
// same name.
type SendMediaRequest struct {
	SendOptions
	Kind            Kind            `json:"-"`
	Media           InputFile       `json:"-"`
	Caption         string          `json:"caption,omitempty"`
	ParseMode       string          `json:"parse_mode,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	HasSpoiler      bool            `json:"has_spoiler,omitempty"`
	Duration        int             `json:"duration,omitempty"`
	Width           int             `json:"width,omitempty"`
	Height          int             `json:"height,omitempty"`
	Length          int             `json:"length,omitempty"`
	Performer       string          `json:"performer,omitempty"`
	Title           string          `json:"title,omitempty"`
	Emoji           string          `json:"emoji,omitempty"`
}

type SendLocationRequest struct {
	SendOptions
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	HorizontalAccuracy float64 `json:"horizontal_accuracy,omitempty"`
	LivePeriod         int     `json:"live_period,omitempty"`
}

type SendVenueRequest struct {
	SendOptions
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Title        string  `json:"title"`
	Address      string  `json:"address"`
	FoursquareID string  `json:"foursquare_id,omitempty"`
}

type SendContactRequest struct {
	SendOptions
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	VCard       string `json:"vcard,omitempty"`
}

type SendPollRequest struct {
	SendOptions
	Question              string   `json:"question"`
	Options               []string `json:"options"`
	IsAnonymous           *bool    `json:"is_anonymous,omitempty"`
	Type                  PollType `json:"type,omitempty"`
	AllowsMultipleAnswers bool     `json:"allows_multiple_answers,omitempty"`
	CorrectOptionID       *int     `json:"correct_option_id,omitempty"`
	Explanation           string   `json:"explanation,omitempty"`
	IsClosed              bool     `json:"is_closed,omitempty"`
}

type SendDiceRequest struct {
	SendOptions
	Emoji string `json:"emoji,omitempty"`
}

// InputMedia is one item of sendMediaGroup. Media holds a file id, a URL
// or an attach://<name> reference that the server resolves into File.
type InputMedia struct {
	Type            Kind            `json:"type"`
	Media           string          `json:"media"`
	Caption         string          `json:"caption,omitempty"`
	ParseMode       string          `json:"parse_mode,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	HasSpoiler      bool            `json:"has_spoiler,omitempty"`
	Width           int             `json:"width,omitempty"`
	Height          int             `json:"height,omitempty"`
	Duration        int             `json:"duration,omitempty"`
	Performer       string          `json:"performer,omitempty"`
	Title           string          `json:"title,omitempty"`
	File            InputFile       `json:"-"`
}

type SendMediaGroupRequest struct {
	SendOptions
	Media []InputMedia `json:"media"`
}

type ForwardMessageRequest struct {
	ChatID              ChatID `json:"chat_id"`
	MessageThreadID     int    `json:"message_thread_id,omitempty"`
	FromChatID          ChatID `json:"from_chat_id"`
	MessageID           int    `json:"message_id"`
	DisableNotification bool   `json:"disable_notification,omitempty"`
	ProtectContent      bool   `json:"protect_content,omitempty"`
}

type CopyMessageRequest struct {
	SendOptions
	FromChatID      ChatID          `json:"from_chat_id"`
	MessageID       int             `json:"message_id"`
	Caption         *string         `json:"caption,omitempty"`
	ParseMode       string          `json:"parse_mode,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
}

type EditMessageTextRequest struct {
	ChatID          ChatID          `json:"chat_id"`
	MessageID       int             `json:"message_id"`
	InlineMessageID string          `json:"inline_message_id,omitempty"`
	Text            string          `json:"text"`
	ParseMode       string          `json:"parse_mode,omitempty"`
	Entities        []MessageEntity `json:"entities,omitempty"`
	ReplyMarkup     *ReplyMarkup    `json:"reply_markup,omitempty"`
}

type EditMessageCaptionRequest struct {
	ChatID          ChatID          `json:"chat_id"`
	MessageID       int             `json:"message_id"`
	InlineMessageID string          `json:"inline_message_id,omitempty"`
	Caption         string          `json:"caption,omitempty"`
	ParseMode       string          `json:"parse_mode,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	ReplyMarkup     *ReplyMarkup    `json:"reply_markup,omitempty"`
}

type EditMessageReplyMarkupRequest struct {
	ChatID          ChatID       `json:"chat_id"`
	MessageID       int          `json:"message_id"`
	InlineMessageID string       `json:"inline_message_id,omitempty"`
	ReplyMarkup     *ReplyMarkup `json:"reply_markup,omitempty"`
}

type DeleteMessageRequest struct {
	ChatID    ChatID `json:"chat_id"`
	MessageID int    `json:"message_id"`
}

type PinChatMessageRequest struct {
	ChatID              ChatID `json:"chat_id"`
	MessageID           int    `json:"message_id"`
	DisableNotification bool   `json:"disable_notification,omitempty"`
}

type UnpinChatMessageRequest struct {
	ChatID    ChatID `json:"chat_id"`
	MessageID int    `json:"message_id,omitempty"`
}

type UnpinAllChatMessagesRequest struct {
	ChatID ChatID `json:"chat_id"`
}

type BanChatMemberRequest struct {
	ChatID         ChatID `json:"chat_id"`
	UserID         int64  `json:"user_id"`
	UntilDate      int64  `json:"until_date,omitempty"`
	RevokeMessages bool   `json:"revoke_messages,omitempty"`
}

type UnbanChatMemberRequest struct {
	ChatID       ChatID `json:"chat_id"`
	UserID       int64  `json:"user_id"`
	OnlyIfBanned bool   `json:"only_if_banned,omitempty"`
}

type RestrictChatMemberRequest struct {
	ChatID      ChatID          `json:"chat_id"`
	UserID      int64           `json:"user_id"`
	Permissions ChatPermissions `json:"permissions"`
	UntilDate   int64           `json:"until_date,omitempty"`
}

type AnswerCallbackQueryRequest struct {
	CallbackQueryID string `json:"callback_query_id"`
	Text            string `json:"text,omitempty"`
	ShowAlert       bool   `json:"show_alert,omitempty"`
	URL             string `json:"url,omitempty"`
	CacheTime       int    `json:"cache_time,omitempty"`
}

type GetFileRequest struct {
	FileID string `json:"file_id"`
}
