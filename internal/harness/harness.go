// Package harness runs bot logic against an in-process mock server.
//
// A MockBot owns one mock server. Dispatch stores the updates it is given
// as if a user had sent them, then hands them to the bot logic, which
// answers through a regular Bot API client. Tests assert on Responses and
// on the message store afterwards.
package harness

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/client"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/fixture"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/repository"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/responses"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/server"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/usecase"
)

const (
	DefaultToken   = "12345:test-token"
	DefaultBotID   = 1234567890
	DefaultBotName = "mock_bot"
	baseURL        = "http://api.telegram.test"
)

// Handler is the bot logic under test. It is called once per update.
type Handler func(ctx context.Context, bot *client.Client, u model.Update) error

type options struct {
	me      model.User
	token   string
	logger  *zap.Logger
	limiter *rate.Limiter
	chats   []model.Chat
	service []usecase.Option
}

type Option func(*options)

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMe replaces the bot user getMe returns.
func WithMe(me model.User) Option {
	return func(o *options) { o.me = me }
}

func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// WithChats registers chats before any update arrives, so that bot logic
// can address them by @username.
func WithChats(chats ...model.Chat) Option {
	return func(o *options) { o.chats = append(o.chats, chats...) }
}

func WithRoller(r usecase.Roller) Option {
	return func(o *options) { o.service = append(o.service, usecase.WithRoller(r)) }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.service = append(o.service, usecase.WithClock(now)) }
}

func WithRateLimit(l *rate.Limiter) Option {
	return func(o *options) { o.limiter = l }
}

type MockBot struct {
	handler Handler
	service *usecase.MessageHandler
	server  *server.Server
	client  *client.Client
	logger  *zap.Logger

	nextUpdateID int
}

func New(handler Handler, opts ...Option) *MockBot {
	o := options{
		me: fixture.NewUser().
			ID(DefaultBotID).
			IsBot(true).
			FirstName("Bot").
			LastName("").
			Username(DefaultBotName).
			LanguageCode("").
			Build(),
		token:  DefaultToken,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	service := usecase.NewMessageHandler(o.me, append([]usecase.Option{usecase.WithLogger(o.logger)}, o.service...)...)
	for _, c := range o.chats {
		service.RegisterChat(c)
	}
	srv := server.New(service, server.Config{Token: o.token, Logger: o.logger})

	return &MockBot{
		handler: handler,
		service: service,
		server:  srv,
		client: client.New(o.token, client.Options{
			BaseURL:    baseURL,
			HTTPClient: &http.Client{Transport: srv.Transport()},
			Limiter:    o.limiter,
			Logger:     o.logger,
		}),
		logger:       o.logger,
		nextUpdateID: 1,
	}
}

// Dispatch feeds updates to the bot logic one after another. Each update
// gets the next update id and its messages are stored before the bot
// sees them, so replies and forwards can reference them. Dispatch stops
// at the first error the bot logic returns.
func (b *MockBot) Dispatch(ctx context.Context, updates ...model.Update) error {
	for _, u := range updates {
		u.UpdateID = b.nextUpdateID
		b.nextUpdateID++
		u = b.service.RegisterIncoming(u)

		b.logger.Debug("dispatch", zap.Int("update_id", u.UpdateID))
		if err := b.handler(ctx, b.client, u); err != nil {
			return errors.Wrapf(err, "handle update %d", u.UpdateID)
		}
	}
	return nil
}

// DispatchMessages wraps each message in a message update and dispatches
// them.
func (b *MockBot) DispatchMessages(ctx context.Context, msgs ...model.Message) error {
	updates := make([]model.Update, 0, len(msgs))
	for _, m := range msgs {
		updates = append(updates, fixture.MessageUpdate(m))
	}
	return b.Dispatch(ctx, updates...)
}

// Responses returns a snapshot of everything the bot logic asked for.
func (b *MockBot) Responses() responses.Log {
	return b.service.Responses()
}

// Store exposes the message store for direct queries.
func (b *MockBot) Store() repository.MessageRepository {
	return b.service.Repository()
}

func (b *MockBot) Client() *client.Client { return b.client }

func (b *MockBot) Service() *usecase.MessageHandler { return b.service }

func (b *MockBot) Server() *server.Server { return b.server }
