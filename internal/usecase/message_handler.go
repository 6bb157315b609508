// Package usecase implements the Bot API methods of the mock server on top
// of the message store and the response log.
package usecase

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/repository"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/responses"
)

// Roller returns a dice value in [1, faces].
type Roller func(faces int) int

func randomRoll(faces int) int {
	return rand.Intn(faces) + 1
}

type Option func(*MessageHandler)

func WithLogger(l *zap.Logger) Option {
	return func(h *MessageHandler) { h.logger = l }
}

// WithRoller fixes the values sendDice produces.
func WithRoller(r Roller) Option {
	return func(h *MessageHandler) { h.roll = r }
}

func WithClock(now func() time.Time) Option {
	return func(h *MessageHandler) { h.now = now }
}

func WithRepository(repo repository.MessageRepository) Option {
	return func(h *MessageHandler) { h.repo = repo }
}

// MessageHandler serves the Bot API methods of one mock server. The store,
// the log and the registries below are guarded by mu; every method holds
// it only while it mutates them.
type MessageHandler struct {
	me     model.User
	logger *zap.Logger
	roll   Roller
	now    func() time.Time

	mu        sync.Mutex
	repo      repository.MessageRepository
	log       responses.Log
	chats     map[int64]model.Chat
	users     map[int64]model.User
	banned    map[int64]map[int64]struct{}
	callbacks map[string]struct{}
	files     map[string]storedFile
	filePaths map[string]string
}

func NewMessageHandler(me model.User, opts ...Option) *MessageHandler {
	h := &MessageHandler{
		me:        me,
		logger:    zap.NewNop(),
		roll:      randomRoll,
		now:       time.Now,
		repo:      repository.NewMemoryRepository(),
		chats:     make(map[int64]model.Chat),
		users:     make(map[int64]model.User),
		banned:    make(map[int64]map[int64]struct{}),
		callbacks: make(map[string]struct{}),
		files:     make(map[string]storedFile),
		filePaths: make(map[string]string),
	}
	for _, o := range opts {
		o(h)
	}
	h.users[me.ID] = me
	return h
}

func (h *MessageHandler) Me() model.User { return h.me }

// Responses returns a snapshot of the response log.
func (h *MessageHandler) Responses() responses.Log {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.log.Clone()
}

// Repository exposes the message store for direct queries in tests.
func (h *MessageHandler) Repository() repository.MessageRepository {
	return h.repo
}

// RegisterChat makes a chat known, so that sends by id resolve to it and
// member actions accept it.
func (h *MessageHandler) RegisterChat(c model.Chat) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.chats[c.ID] = c
}

// RegisterIncoming stores the messages of an update coming from a user and
// returns the update with the ids the store assigned. Edited messages and
// callback query messages keep their id when already stored.
func (h *MessageHandler) RegisterIncoming(u model.Update) model.Update {
	h.mu.Lock()
	defer h.mu.Unlock()

	store := func(m *model.Message, keep bool) *model.Message {
		if m == nil {
			return nil
		}
		if keep {
			if existing, err := h.repo.Get(m.ID); err == nil && existing.Chat.ID == m.Chat.ID {
				if err := h.repo.Update(*m); err != nil {
					panic(err)
				}
				h.trackLocked(*m)
				return m
			}
		}
		stored := h.repo.Add(*m)
		h.trackLocked(stored)
		return &stored
	}

	u.Message = store(u.Message, false)
	u.ChannelPost = store(u.ChannelPost, false)
	u.EditedMessage = store(u.EditedMessage, true)
	u.EditedChannelPost = store(u.EditedChannelPost, true)
	if u.CallbackQuery != nil {
		q := *u.CallbackQuery
		h.callbacks[q.ID] = struct{}{}
		h.users[q.From.ID] = q.From
		q.Message = store(q.Message, true)
		u.CallbackQuery = &q
	}
	return u
}

// trackLocked records the chat, sender and files of a stored message.
func (h *MessageHandler) trackLocked(m model.Message) {
	if _, ok := h.chats[m.Chat.ID]; !ok {
		h.chats[m.Chat.ID] = m.Chat
	}
	if m.From != nil {
		h.users[m.From.ID] = *m.From
	}
	for _, f := range model.Files(m.Payload) {
		if _, ok := h.files[f.FileID]; !ok {
			h.files[f.FileID] = storedFile{meta: f}
		}
	}
}

// resolveChatLocked maps a chat_id parameter to a chat. Unknown numeric
// ids resolve to a private chat with that id.
func (h *MessageHandler) resolveChatLocked(id model.ChatID) (model.Chat, error) {
	if id.IsZero() {
		return model.Chat{}, badRequest(descChatNotFound)
	}
	if id.Username != "" {
		for _, c := range h.chats {
			if c.Username == id.Username {
				return c, nil
			}
		}
		return model.Chat{}, badRequest(descChatNotFound)
	}
	if c, ok := h.chats[id.ID]; ok {
		return c, nil
	}
	return model.Chat{ID: id.ID, Type: model.ChatTypePrivate}, nil
}

// messageInChatLocked returns a stored message that belongs to the chat
// named by chatID. A zero chatID matches any chat.
func (h *MessageHandler) messageInChatLocked(chatID model.ChatID, id int) (model.Message, error) {
	msg, err := h.repo.Get(id)
	if err != nil {
		return model.Message{}, err
	}
	if chatID.IsZero() {
		return msg, nil
	}
	chat, err := h.resolveChatLocked(chatID)
	if err != nil || chat.ID != msg.Chat.ID {
		return model.Message{}, repository.ErrNotFound
	}
	return msg, nil
}

// replyChat is the chat a reply target is looked up in: the one named in
// the reply parameters, or the chat being sent to.
func replyChat(opts model.SendOptions, chat model.Chat) model.ChatID {
	if opts.ReplyParameters != nil && opts.ReplyParameters.ChatID != nil {
		return *opts.ReplyParameters.ChatID
	}
	return model.ChatIDOf(chat.ID)
}

// knownChatLocked is resolveChatLocked without the private chat fallback.
func (h *MessageHandler) knownChatLocked(id model.ChatID) (model.Chat, error) {
	c, err := h.resolveChatLocked(id)
	if err != nil {
		return c, err
	}
	if _, ok := h.chats[c.ID]; !ok {
		return model.Chat{}, badRequest(descChatNotFound)
	}
	return c, nil
}

func (h *MessageHandler) logCall(method string, msg model.Message, err error) {
	if err != nil {
		h.logger.Info(method, zap.Error(err))
		return
	}
	h.logger.Debug(method,
		zap.Int("message_id", msg.ID),
		zap.Int64("chat_id", msg.Chat.ID),
		zap.String("kind", string(msg.Kind())),
	)
}
