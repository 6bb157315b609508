package harness

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/client"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/dialogue"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/fixture"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/repository"
)

func to(chatID int64) model.SendOptions {
	return model.SendOptions{ChatID: model.ChatIDOf(chatID)}
}

func echoBot(ctx context.Context, bot *client.Client, u model.Update) error {
	if u.Message == nil {
		return nil
	}
	text, ok := u.Message.Text()
	if !ok {
		return nil
	}
	_, err := bot.SendMessage(ctx, model.SendMessageRequest{SendOptions: to(u.Message.Chat.ID), Text: text})
	return err
}

func TestEchoBot(t *testing.T) {
	bot := New(echoBot, WithLogger(zaptest.NewLogger(t)))

	require.NoError(t, bot.DispatchMessages(context.Background(), fixture.NewText().Text("/echo echo").Build()))

	last, ok := bot.Responses().SentMessages.Last()
	require.True(t, ok)
	text, _ := last.Text()
	assert.Equal(t, "/echo echo", text)
	assert.Equal(t, fixture.DefaultUserID, last.Chat.ID)
	assert.Equal(t, int64(DefaultBotID), last.From.ID)

	// incoming message and the echo
	assert.Equal(t, 2, bot.Store().Len())
}

func TestDispatchAssignsUpdateIDs(t *testing.T) {
	var seen []int
	bot := New(func(_ context.Context, _ *client.Client, u model.Update) error {
		seen = append(seen, u.UpdateID)
		return nil
	})

	require.NoError(t, bot.DispatchMessages(context.Background(),
		fixture.NewText().Build(),
		fixture.NewText().Build(),
	))
	require.NoError(t, bot.DispatchMessages(context.Background(), fixture.NewText().Build()))
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestPhotoCaptionBot(t *testing.T) {
	bot := New(func(ctx context.Context, c *client.Client, u model.Update) error {
		photo, ok := u.Message.Payload.(model.PhotoPayload)
		if !ok {
			return nil
		}
		_, err := c.SendMedia(ctx, model.SendMediaRequest{
			SendOptions:     to(u.Message.Chat.ID),
			Kind:            model.KindPhoto,
			Media:           model.InputFile{FileID: photo.Photo[len(photo.Photo)-1].FileID},
			Caption:         photo.Caption,
			CaptionEntities: photo.CaptionEntities,
		})
		return err
	}, WithLogger(zaptest.NewLogger(t)))

	in := fixture.NewPhoto().Caption("test").CaptionEntities(fixture.Bold(0, 3)).Build()
	require.NoError(t, bot.DispatchMessages(context.Background(), in))

	rec, ok := bot.Responses().SentPhotos.Last()
	require.True(t, ok)
	caption, entities, ok := rec.Message.Caption()
	require.True(t, ok)
	assert.Equal(t, "test", caption)
	assert.Len(t, entities, 1)
}

func TestBanThenDeleteFails(t *testing.T) {
	group := fixture.NewSupergroup().Build()
	bot := New(func(ctx context.Context, c *client.Client, u model.Update) error {
		m := u.Message
		if text, _ := m.Text(); text != "spam" {
			return nil
		}
		if err := c.BanChatMember(ctx, model.BanChatMemberRequest{ChatID: model.ChatIDOf(m.Chat.ID), UserID: m.From.ID}); err != nil {
			return err
		}
		return c.DeleteMessage(ctx, model.DeleteMessageRequest{ChatID: model.ChatIDOf(m.Chat.ID), MessageID: m.ID})
	}, WithLogger(zaptest.NewLogger(t)))

	err := bot.DispatchMessages(context.Background(), fixture.NewText().Chat(group).Text("spam").Build())
	require.Error(t, err)

	apiErr, ok := client.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Bad Request: message to delete not found", apiErr.Description)
	assert.True(t, bot.Service().IsBanned(group.ID, fixture.DefaultUserID))
	assert.Equal(t, 1, bot.Responses().BannedChatMembers.Len())
	assert.Zero(t, bot.Responses().DeletedMessages.Len())
}

func TestForwardKeepsSourceDate(t *testing.T) {
	const archive int64 = 777
	bot := New(func(ctx context.Context, c *client.Client, u model.Update) error {
		_, err := c.ForwardMessage(ctx, model.ForwardMessageRequest{
			ChatID:     model.ChatIDOf(archive),
			FromChatID: model.ChatIDOf(u.Message.Chat.ID),
			MessageID:  u.Message.ID,
		})
		return err
	}, WithLogger(zaptest.NewLogger(t)))

	in := fixture.NewText().Text("keep me").Build()
	require.NoError(t, bot.DispatchMessages(context.Background(), in))

	rec, ok := bot.Responses().ForwardedMessages.Last()
	require.True(t, ok)
	fwd := rec.Message
	assert.Equal(t, in.Date, fwd.Date)
	assert.Equal(t, archive, fwd.Chat.ID)
	require.NotNil(t, fwd.ForwardOrigin)
	assert.Equal(t, model.OriginUser, fwd.ForwardOrigin.Type)
	assert.Equal(t, fixture.DefaultUserID, fwd.ForwardOrigin.SenderUser.ID)

	stored, err := bot.Store().Get(fwd.ID)
	require.NoError(t, err)
	assert.Equal(t, fwd.ID, stored.ID)
}

type signup struct {
	Step string `json:"step"`
	Name string `json:"name,omitempty"`
}

// signupBot asks for a name after /start and greets the user with it.
func signupBot(states dialogue.Storage[signup]) Handler {
	return func(ctx context.Context, c *client.Client, u model.Update) error {
		m := u.Message
		chatID := m.Chat.ID
		text, _ := m.Text()

		state, err := dialogue.GetOrDefault(ctx, states, chatID, signup{Step: "idle"})
		if err != nil {
			return err
		}

		reply := ""
		switch {
		case text == "/start":
			state = signup{Step: "ask_name"}
			reply = "What is your name?"
		case state.Step == "ask_name":
			state = signup{Step: "done", Name: text}
			reply = fmt.Sprintf("Nice to meet you, %s", text)
		default:
			reply = "Send /start"
		}
		if err := states.Update(ctx, chatID, state); err != nil {
			return err
		}
		_, err = c.SendMessage(ctx, model.SendMessageRequest{SendOptions: to(chatID), Text: reply})
		return err
	}
}

func TestDialogueFlow(t *testing.T) {
	tests := []struct {
		name    string
		storage func(t *testing.T) dialogue.Storage[signup]
	}{
		{"memory", func(*testing.T) dialogue.Storage[signup] { return dialogue.NewMemoryStorage[signup]() }},
		{"bolt", func(t *testing.T) dialogue.Storage[signup] {
			s, err := dialogue.OpenBolt[signup](filepath.Join(t.TempDir(), "states.db"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			states := tt.storage(t)
			bot := New(signupBot(states), WithLogger(zaptest.NewLogger(t)))

			require.NoError(t, bot.DispatchMessages(ctx, fixture.NewText().Text("hello").Build()))
			state, err := states.Get(ctx, fixture.DefaultUserID)
			require.NoError(t, err)
			assert.Equal(t, "idle", state.Step)

			require.NoError(t, bot.DispatchMessages(ctx, fixture.NewText().Text("/start").Build()))
			state, err = states.Get(ctx, fixture.DefaultUserID)
			require.NoError(t, err)
			assert.Equal(t, "ask_name", state.Step)

			require.NoError(t, bot.DispatchMessages(ctx, fixture.NewText().Text("Alice").Build()))
			state, err = states.Get(ctx, fixture.DefaultUserID)
			require.NoError(t, err)
			assert.Equal(t, signup{Step: "done", Name: "Alice"}, state)

			last, ok := bot.Responses().SentMessages.Last()
			require.True(t, ok)
			text, _ := last.Text()
			assert.Equal(t, "Nice to meet you, Alice", text)
		})
	}
}

// menuBot shows a keyboard and turns the message into the chosen option
// when a button is pressed.
func menuBot(ctx context.Context, c *client.Client, u model.Update) error {
	if q := u.CallbackQuery; q != nil {
		if err := c.AnswerCallbackQuery(ctx, model.AnswerCallbackQueryRequest{CallbackQueryID: q.ID, Text: "ok"}); err != nil {
			return err
		}
		_, err := c.EditMessageText(ctx, model.EditMessageTextRequest{
			ChatID:    model.ChatIDOf(q.Message.Chat.ID),
			MessageID: q.Message.ID,
			Text:      "chosen: " + q.Data,
		})
		return err
	}

	keyboard := model.NewInlineKeyboard([]model.InlineKeyboardButton{
		model.CallbackButton("A", "a"),
		model.CallbackButton("B", "b"),
	})
	opts := to(u.Message.Chat.ID)
	opts.ReplyMarkup = model.InlineMarkup(keyboard)
	_, err := c.SendMessage(ctx, model.SendMessageRequest{SendOptions: opts, Text: "pick one"})
	return err
}

func TestCallbackQueryEditsMenu(t *testing.T) {
	ctx := context.Background()
	bot := New(menuBot, WithLogger(zaptest.NewLogger(t)))

	require.NoError(t, bot.DispatchMessages(ctx, fixture.NewText().Text("/menu").Build()))
	menu, ok := bot.Responses().SentMessages.Last()
	require.True(t, ok)
	require.NotNil(t, menu.ReplyMarkup)

	press := fixture.NewCallbackQuery().ID("q-1").Message(menu).Data("b").Build()
	require.NoError(t, bot.Dispatch(ctx, fixture.CallbackQueryUpdate(press)))

	log := bot.Responses()
	require.Equal(t, 1, log.AnsweredCallbackQueries.Len())
	assert.Equal(t, "q-1", log.AnsweredCallbackQueries.At(0).CallbackQueryID)

	edit, ok := log.EditedTexts.Last()
	require.True(t, ok)
	text, _ := edit.Message.Text()
	assert.Equal(t, "chosen: b", text)
	assert.NotZero(t, edit.Message.EditDate)
	assert.Equal(t, menu.ReplyMarkup, edit.Message.ReplyMarkup)

	stored, err := bot.Store().Get(menu.ID)
	require.NoError(t, err)
	text, _ = stored.Text()
	assert.Equal(t, "chosen: b", text)
}

func TestUnknownCallbackQueryIsRejected(t *testing.T) {
	bot := New(func(ctx context.Context, c *client.Client, _ model.Update) error {
		return c.AnswerCallbackQuery(ctx, model.AnswerCallbackQueryRequest{CallbackQueryID: "never-sent"})
	})

	err := bot.DispatchMessages(context.Background(), fixture.NewText().Build())
	apiErr, ok := client.AsError(err)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(apiErr.Description, "Bad Request: query is too old"))
}

func TestAlbumBot(t *testing.T) {
	bot := New(func(ctx context.Context, c *client.Client, u model.Update) error {
		_, err := c.SendMediaGroup(ctx, model.SendMediaGroupRequest{
			SendOptions: model.SendOptions{
				ChatID:          model.ChatIDOf(u.Message.Chat.ID),
				ReplyParameters: &model.ReplyParameters{MessageID: u.Message.ID},
			},
			Media: []model.InputMedia{
				{Type: model.KindPhoto, Media: fixture.DefaultPhotoFileID, Caption: "one"},
				{Type: model.KindVideo, Media: fixture.DefaultVideoFileID},
				{Type: model.KindDocument, File: model.InputFile{FileName: "notes.txt", Data: []byte("notes")}},
			},
		})
		return err
	}, WithLogger(zaptest.NewLogger(t)))

	in := fixture.NewText().Text("/album").Build()
	require.NoError(t, bot.DispatchMessages(context.Background(), in))

	group, ok := bot.Responses().SentMediaGroup.Last()
	require.True(t, ok)
	require.Len(t, group.Messages, 3)
	for _, m := range group.Messages {
		assert.Equal(t, group.Messages[0].MediaGroupID, m.MediaGroupID)
		require.NotNil(t, m.ReplyToMessage)
		assert.Equal(t, 1, m.ReplyToMessage.ID)
	}
	assert.Equal(t, 4, bot.Store().Len())
}

func TestDiceBotWithFixedRoll(t *testing.T) {
	bot := New(func(ctx context.Context, c *client.Client, u model.Update) error {
		_, err := c.SendDice(ctx, model.SendDiceRequest{SendOptions: to(u.Message.Chat.ID), Emoji: "🎯"})
		return err
	}, WithRoller(func(faces int) int { return faces }))

	require.NoError(t, bot.DispatchMessages(context.Background(), fixture.NewText().Build()))
	rec, ok := bot.Responses().SentDice.Last()
	require.True(t, ok)
	dice, ok := rec.Message.Payload.(model.DicePayload)
	require.True(t, ok)
	assert.Equal(t, 6, dice.Dice.Value)
}

func TestRegisteredChatByUsername(t *testing.T) {
	channel := fixture.NewChannel().Build()
	bot := New(func(ctx context.Context, c *client.Client, _ model.Update) error {
		_, err := c.SendMessage(ctx, model.SendMessageRequest{
			SendOptions: model.SendOptions{ChatID: model.ParseChatID("@" + fixture.DefaultChannelName)},
			Text:        "announcement",
		})
		return err
	}, WithChats(channel))

	require.NoError(t, bot.DispatchMessages(context.Background(), fixture.NewText().Build()))
	msgs := bot.Store().List(channel.ID)
	require.Len(t, msgs, 1)
	assert.Equal(t, model.ChatTypeChannel, msgs[0].Chat.Type)
}

func TestStoreReportsDeletedMessages(t *testing.T) {
	bot := New(func(ctx context.Context, c *client.Client, u model.Update) error {
		return c.DeleteMessage(ctx, model.DeleteMessageRequest{ChatID: model.ChatIDOf(u.Message.Chat.ID), MessageID: u.Message.ID})
	})

	require.NoError(t, bot.DispatchMessages(context.Background(), fixture.NewText().Build()))
	_, err := bot.Store().Get(1)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	deleted, ok := bot.Responses().DeletedMessages.Last()
	require.True(t, ok)
	assert.Equal(t, 1, deleted.Message.ID)
}
