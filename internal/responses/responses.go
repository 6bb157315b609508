// Package responses records what bot logic asked the mock server to do.
package responses

import (
	"slices"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

// Record pairs the message an action produced with the request that
// produced it.
type Record[R any] struct {
	Message model.Message
	Request R
}

// GroupRecord is recorded for sendMediaGroup, which produces several
// messages from one request.
type GroupRecord struct {
	Messages []model.Message
	Request  model.SendMediaGroupRequest
}

// Records is an append-only list kept in call order.
type Records[T any] struct {
	items []T
}

func (r *Records[T]) Append(v T) {
	r.items = append(r.items, v)
}

func (r Records[T]) Len() int { return len(r.items) }

// At returns the i-th record. It panics when i is out of range, like a
// slice index.
func (r Records[T]) At(i int) T { return r.items[i] }

// Last returns the newest record and false when there is none.
func (r Records[T]) Last() (T, bool) {
	if len(r.items) == 0 {
		var zero T
		return zero, false
	}
	return r.items[len(r.items)-1], true
}

func (r Records[T]) All() []T {
	return slices.Clone(r.items)
}

func (r Records[T]) clone() Records[T] {
	return Records[T]{items: slices.Clone(r.items)}
}

// DeletedMessage keeps a deleted message in the log after it left the
// store.
type DeletedMessage = Record[model.DeleteMessageRequest]

// Log holds one list per action. SentMessages collects every message the
// bot produced, whatever method produced it.
type Log struct {
	SentMessages Records[model.Message]

	SentTexts      Records[Record[model.SendMessageRequest]]
	SentPhotos     Records[Record[model.SendMediaRequest]]
	SentVideos     Records[Record[model.SendMediaRequest]]
	SentAudios     Records[Record[model.SendMediaRequest]]
	SentVoices     Records[Record[model.SendMediaRequest]]
	SentVideoNotes Records[Record[model.SendMediaRequest]]
	SentDocuments  Records[Record[model.SendMediaRequest]]
	SentAnimations Records[Record[model.SendMediaRequest]]
	SentStickers   Records[Record[model.SendMediaRequest]]
	SentLocations  Records[Record[model.SendLocationRequest]]
	SentVenues     Records[Record[model.SendVenueRequest]]
	SentContacts   Records[Record[model.SendContactRequest]]
	SentPolls      Records[Record[model.SendPollRequest]]
	SentDice       Records[Record[model.SendDiceRequest]]
	SentMediaGroup Records[GroupRecord]

	EditedTexts        Records[Record[model.EditMessageTextRequest]]
	EditedCaptions     Records[Record[model.EditMessageCaptionRequest]]
	EditedReplyMarkups Records[Record[model.EditMessageReplyMarkupRequest]]
	DeletedMessages    Records[DeletedMessage]

	ForwardedMessages Records[Record[model.ForwardMessageRequest]]
	CopiedMessages    Records[Record[model.CopyMessageRequest]]

	AnsweredCallbackQueries Records[model.AnswerCallbackQueryRequest]
	PinnedMessages          Records[model.PinChatMessageRequest]
	UnpinnedMessages        Records[model.UnpinChatMessageRequest]
	UnpinnedAllMessages     Records[model.UnpinAllChatMessagesRequest]
	BannedChatMembers       Records[model.BanChatMemberRequest]
	UnbannedChatMembers     Records[model.UnbanChatMemberRequest]
	RestrictedChatMembers   Records[model.RestrictChatMemberRequest]
}

// Media returns the list sendPhoto, sendVideo, ... append to for kind.
func (l *Log) Media(kind model.Kind) *Records[Record[model.SendMediaRequest]] {
	switch kind {
	case model.KindPhoto:
		return &l.SentPhotos
	case model.KindVideo:
		return &l.SentVideos
	case model.KindAudio:
		return &l.SentAudios
	case model.KindVoice:
		return &l.SentVoices
	case model.KindVideoNote:
		return &l.SentVideoNotes
	case model.KindDocument:
		return &l.SentDocuments
	case model.KindAnimation:
		return &l.SentAnimations
	case model.KindSticker:
		return &l.SentStickers
	default:
		return nil
	}
}

// Clone returns a snapshot that later appends do not affect.
func (l *Log) Clone() Log {
	return Log{
		SentMessages:            l.SentMessages.clone(),
		SentTexts:               l.SentTexts.clone(),
		SentPhotos:              l.SentPhotos.clone(),
		SentVideos:              l.SentVideos.clone(),
		SentAudios:              l.SentAudios.clone(),
		SentVoices:              l.SentVoices.clone(),
		SentVideoNotes:          l.SentVideoNotes.clone(),
		SentDocuments:           l.SentDocuments.clone(),
		SentAnimations:          l.SentAnimations.clone(),
		SentStickers:            l.SentStickers.clone(),
		SentLocations:           l.SentLocations.clone(),
		SentVenues:              l.SentVenues.clone(),
		SentContacts:            l.SentContacts.clone(),
		SentPolls:               l.SentPolls.clone(),
		SentDice:                l.SentDice.clone(),
		SentMediaGroup:          l.SentMediaGroup.clone(),
		EditedTexts:             l.EditedTexts.clone(),
		EditedCaptions:          l.EditedCaptions.clone(),
		EditedReplyMarkups:      l.EditedReplyMarkups.clone(),
		DeletedMessages:         l.DeletedMessages.clone(),
		ForwardedMessages:       l.ForwardedMessages.clone(),
		CopiedMessages:          l.CopiedMessages.clone(),
		AnsweredCallbackQueries: l.AnsweredCallbackQueries.clone(),
		PinnedMessages:          l.PinnedMessages.clone(),
		UnpinnedMessages:        l.UnpinnedMessages.clone(),
		UnpinnedAllMessages:     l.UnpinnedAllMessages.clone(),
		BannedChatMembers:       l.BannedChatMembers.clone(),
		UnbannedChatMembers:     l.UnbannedChatMembers.clone(),
		RestrictedChatMembers:   l.RestrictedChatMembers.clone(),
	}
}

// Entry is one flattened log row, used when exporting a run.
type Entry struct {
	Action    string
	MessageID int
	ChatID    int64
	Kind      model.Kind
	Date      int64
	Text      string
}

// Entries flattens the message-producing and message-mutating actions of
// the log, in action order then call order.
func (l *Log) Entries() []Entry {
	var out []Entry
	add := func(action string, msg model.Message) {
		text, ok := msg.Text()
		if !ok {
			text, _, _ = msg.Caption()
		}
		out = append(out, Entry{
			Action:    action,
			MessageID: msg.ID,
			ChatID:    msg.Chat.ID,
			Kind:      msg.Kind(),
			Date:      msg.Date,
			Text:      text,
		})
	}
	for _, m := range l.SentMessages.items {
		add("send", m)
	}
	for _, r := range l.EditedTexts.items {
		add("edit_text", r.Message)
	}
	for _, r := range l.EditedCaptions.items {
		add("edit_caption", r.Message)
	}
	for _, r := range l.EditedReplyMarkups.items {
		add("edit_reply_markup", r.Message)
	}
	for _, r := range l.DeletedMessages.items {
		add("delete", r.Message)
	}
	return out
}
