package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/time/rate"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/fixture"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/server"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/usecase"
)

const testToken = "12345:test-token"

func newTestClient(t *testing.T, opts Options) (*Client, *usecase.MessageHandler) {
	t.Helper()
	me := fixture.NewUser().ID(1234567890).IsBot(true).FirstName("Bot").Username("mock_bot").Build()
	h := usecase.NewMessageHandler(me, usecase.WithLogger(zaptest.NewLogger(t)))
	s := server.New(h, server.Config{Token: testToken, Logger: zaptest.NewLogger(t)})

	opts.BaseURL = "http://api.telegram.test"
	opts.HTTPClient = &http.Client{Transport: s.Transport()}
	opts.Logger = zaptest.NewLogger(t)
	return New(testToken, opts), h
}

func chat(id int64) model.SendOptions {
	return model.SendOptions{ChatID: model.ChatIDOf(id)}
}

func TestGetMe(t *testing.T) {
	c, _ := newTestClient(t, Options{})

	me, err := c.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890), me.ID)
	assert.Equal(t, "mock_bot", me.Username)
}

func TestSendMessageAndReply(t *testing.T) {
	ctx := context.Background()
	c, h := newTestClient(t, Options{})

	first, err := c.SendMessage(ctx, model.SendMessageRequest{SendOptions: chat(42), Text: "hello"})
	require.NoError(t, err)

	opts := chat(42)
	opts.ReplyParameters = &model.ReplyParameters{MessageID: first.ID}
	opts.ReplyMarkup = model.InlineMarkup(model.NewInlineKeyboard([]model.InlineKeyboardButton{model.CallbackButton("ok", "ok")}))
	second, err := c.SendMessage(ctx, model.SendMessageRequest{SendOptions: opts, Text: "reply"})
	require.NoError(t, err)

	require.NotNil(t, second.ReplyToMessage)
	assert.Equal(t, first.ID, second.ReplyToMessage.ID)
	require.NotNil(t, second.ReplyMarkup)
	assert.Equal(t, 2, h.Responses().SentTexts.Len())
}

func TestServerErrorBecomesError(t *testing.T) {
	c, _ := newTestClient(t, Options{})

	err := c.DeleteMessage(context.Background(), model.DeleteMessageRequest{ChatID: model.ChatIDOf(42), MessageID: 5})
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "deleteMessage", apiErr.Method)
	assert.Equal(t, 400, apiErr.Code)
	assert.Equal(t, "Bad Request: message to delete not found", apiErr.Description)
}

func TestWrongToken(t *testing.T) {
	c, _ := newTestClient(t, Options{})
	c.token = "other"

	_, err := c.GetMe(context.Background())
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, 401, apiErr.Code)
}

func TestUploadRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, h := newTestClient(t, Options{})
	content := []byte("%PDF-1.4")

	msg, err := c.SendMedia(ctx, model.SendMediaRequest{
		SendOptions: chat(42),
		Kind:        model.KindDocument,
		Media:       model.InputFile{FileName: "report.pdf", Data: content},
		Caption:     "123",
	})
	require.NoError(t, err)

	doc, ok := msg.Payload.(model.DocumentPayload)
	require.True(t, ok)
	assert.Equal(t, "123", doc.Caption)
	assert.Equal(t, "report.pdf", doc.Document.FileName)

	file, err := c.GetFile(ctx, doc.Document.FileID)
	require.NoError(t, err)
	data, err := c.DownloadFile(ctx, file.FilePath)
	require.NoError(t, err)
	assert.Equal(t, content, data)

	rec, ok := h.Responses().SentDocuments.Last()
	require.True(t, ok)
	assert.Equal(t, content, rec.Request.Media.Data)
}

func TestSendMediaByFileID(t *testing.T) {
	c, _ := newTestClient(t, Options{})

	msg, err := c.SendMedia(context.Background(), model.SendMediaRequest{
		SendOptions: chat(42),
		Kind:        model.KindSticker,
		Media:       model.InputFile{FileID: fixture.DefaultStickerFileID},
	})
	require.NoError(t, err)
	sticker, ok := msg.Payload.(model.StickerPayload)
	require.True(t, ok)
	assert.Equal(t, fixture.DefaultStickerFileID, sticker.Sticker.FileID)
}

func TestSendMediaUnknownKind(t *testing.T) {
	c, _ := newTestClient(t, Options{})

	_, err := c.SendMedia(context.Background(), model.SendMediaRequest{SendOptions: chat(42), Kind: model.KindText})
	assert.Error(t, err)
}

func TestSendMediaGroupMixed(t *testing.T) {
	c, h := newTestClient(t, Options{})

	msgs, err := c.SendMediaGroup(context.Background(), model.SendMediaGroupRequest{
		SendOptions: chat(42),
		Media: []model.InputMedia{
			{Type: model.KindPhoto, File: model.InputFile{FileName: "a.png", Data: []byte("a")}, Caption: "album"},
			{Type: model.KindPhoto, File: model.InputFile{FileID: fixture.DefaultPhotoFileID}},
		},
	})
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.NotEmpty(t, msgs[0].MediaGroupID)
	assert.Equal(t, msgs[0].MediaGroupID, msgs[1].MediaGroupID)
	assert.Equal(t, 1, h.Responses().SentMediaGroup.Len())
}

func TestCopyMessage(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t, Options{})

	src, err := c.SendMessage(ctx, model.SendMessageRequest{SendOptions: chat(42), Text: "copy me"})
	require.NoError(t, err)

	res, err := c.CopyMessage(ctx, model.CopyMessageRequest{
		SendOptions: chat(43),
		FromChatID:  model.ChatIDOf(42),
		MessageID:   src.ID,
	})
	require.NoError(t, err)
	assert.NotEqual(t, src.ID, res.MessageID)
}

func TestRateLimiterHonorsContext(t *testing.T) {
	c, _ := newTestClient(t, Options{Limiter: rate.NewLimiter(rate.Every(time.Hour), 1)})

	_, err := c.GetMe(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = c.GetMe(ctx)
	require.Error(t, err)
	_, ok := AsError(err)
	assert.False(t, ok)
}
