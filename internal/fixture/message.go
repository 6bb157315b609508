// Package fixture builds Bot API entities for tests. Every builder starts
// from documented defaults and exposes one setter per field, so a test
// only spells out what it cares about:
//
//	msg := fixture.NewPhoto().Caption("test").From(user).Build()
//
// Message builders are layered: Scaffold holds what every message has
// (id, chat, date), Common adds sender, reply and forward data, and the
// kind builder adds the payload. Builders are single-use and must not be
// copied by value.
package fixture

import (
	"time"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

// Scaffold is the innermost layer of a message builder. B is the kind
// builder embedding it, so setters keep the chain typed.
type Scaffold[B any] struct {
	self     *B
	id       int
	threadID int
	date     time.Time
	chat     *model.Chat
	viaBot   *model.User
}

func newScaffold[B any](self *B) Scaffold[B] {
	return Scaffold[B]{
		self: self,
		id:   DefaultMessageID,
		date: time.Now(),
	}
}

func (s *Scaffold[B]) ID(id int) *B {
	s.id = id
	return s.self
}

func (s *Scaffold[B]) ThreadID(id int) *B {
	s.threadID = id
	return s.self
}

func (s *Scaffold[B]) Date(t time.Time) *B {
	s.date = t
	return s.self
}

func (s *Scaffold[B]) Chat(c model.Chat) *B {
	s.chat = &c
	return s.self
}

func (s *Scaffold[B]) ViaBot(u model.User) *B {
	s.viaBot = &u
	return s.self
}

func (s *Scaffold[B]) finish() model.Message {
	chat := s.chat
	if chat == nil {
		c := NewPrivateChat().Build()
		chat = &c
	}
	return model.Message{
		ID:       s.id,
		ThreadID: s.threadID,
		Date:     s.date.Unix(),
		Chat:     *chat,
		ViaBot:   s.viaBot,
	}
}

// Common is the layer shared by every message kind.
type Common[B any] struct {
	Scaffold[B]
	from                *model.User
	withoutSender       bool
	senderChat          *model.Chat
	authorSignature     string
	forwardOrigin       *model.MessageOrigin
	replyTo             *model.Message
	editDate            time.Time
	replyMarkup         *model.InlineKeyboardMarkup
	mediaGroupID        string
	isTopicMessage      bool
	isAutomaticForward  bool
	hasProtectedContent bool
}

func newCommon[B any](self *B) Common[B] {
	return Common[B]{
		Scaffold:            newScaffold(self),
		isTopicMessage:      DefaultIsTopicMessage,
		isAutomaticForward:  DefaultIsAutomaticForward,
		hasProtectedContent: DefaultHasProtectedContent,
	}
}

// From sets the sender. Without it the default user is used.
func (c *Common[B]) From(u model.User) *B {
	c.from = &u
	c.withoutSender = false
	return c.self
}

// WithoutSender builds a message with no sender, like a channel post.
func (c *Common[B]) WithoutSender() *B {
	c.from = nil
	c.withoutSender = true
	return c.self
}

func (c *Common[B]) SenderChat(chat model.Chat) *B {
	c.senderChat = &chat
	return c.self
}

func (c *Common[B]) AuthorSignature(s string) *B {
	c.authorSignature = s
	return c.self
}

func (c *Common[B]) ForwardOrigin(o model.MessageOrigin) *B {
	c.forwardOrigin = &o
	return c.self
}

func (c *Common[B]) ReplyTo(m model.Message) *B {
	c.replyTo = m.AsReplyTarget()
	return c.self
}

func (c *Common[B]) EditDate(t time.Time) *B {
	c.editDate = t
	return c.self
}

func (c *Common[B]) ReplyMarkup(k *model.InlineKeyboardMarkup) *B {
	c.replyMarkup = k
	return c.self
}

func (c *Common[B]) MediaGroupID(id string) *B {
	c.mediaGroupID = id
	return c.self
}

func (c *Common[B]) IsTopicMessage(v bool) *B {
	c.isTopicMessage = v
	return c.self
}

func (c *Common[B]) IsAutomaticForward(v bool) *B {
	c.isAutomaticForward = v
	return c.self
}

func (c *Common[B]) HasProtectedContent(v bool) *B {
	c.hasProtectedContent = v
	return c.self
}

func (c *Common[B]) finish(p model.Payload) model.Message {
	msg := c.Scaffold.finish()
	switch {
	case c.from != nil:
		msg.From = c.from
	case !c.withoutSender:
		u := NewUser().Build()
		msg.From = &u
	}
	msg.SenderChat = c.senderChat
	msg.AuthorSignature = c.authorSignature
	msg.ForwardOrigin = c.forwardOrigin
	msg.ReplyToMessage = c.replyTo
	if !c.editDate.IsZero() {
		msg.EditDate = c.editDate.Unix()
	}
	msg.ReplyMarkup = c.replyMarkup
	msg.MediaGroupID = c.mediaGroupID
	msg.IsTopicMessage = c.isTopicMessage
	msg.IsAutomaticForward = c.isAutomaticForward
	msg.HasProtectedContent = c.hasProtectedContent
	msg.Payload = p
	return msg
}

// captioned is mixed into builders of kinds that carry a caption.
type captioned[B any] struct {
	self     *B
	caption  string
	entities []model.MessageEntity
}

func (c *captioned[B]) Caption(s string) *B {
	c.caption = s
	return c.self
}

func (c *captioned[B]) CaptionEntities(e ...model.MessageEntity) *B {
	c.entities = e
	return c.self
}

// fileFields is mixed into builders of kinds backed by a stored file.
type fileFields[B any] struct {
	self *B
	meta model.FileMeta
}

func (f *fileFields[B]) FileID(id string) *B {
	f.meta.FileID = id
	return f.self
}

func (f *fileFields[B]) FileUniqueID(id string) *B {
	f.meta.FileUniqueID = id
	return f.self
}

func (f *fileFields[B]) FileSize(n int64) *B {
	f.meta.FileSize = n
	return f.self
}

func newFileFields[B any](self *B, id string, size int64) fileFields[B] {
	return fileFields[B]{self: self, meta: model.FileMeta{
		FileID:       id,
		FileUniqueID: DefaultFileUniqueID,
		FileSize:     size,
	}}
}
