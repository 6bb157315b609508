package client

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/goccy/go-json"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

type upload struct {
	name string
	data []byte
}

func (c *Client) GetMe(ctx context.Context) (model.User, error) {
	var u model.User
	err := c.Call(ctx, "getMe", struct{}{}, &u)
	return u, err
}

func (c *Client) SendMessage(ctx context.Context, req model.SendMessageRequest) (model.Message, error) {
	var m model.Message
	err := c.Call(ctx, "sendMessage", req, &m)
	return m, err
}

var mediaMethods = map[model.Kind]string{
	model.KindPhoto:     "sendPhoto",
	model.KindVideo:     "sendVideo",
	model.KindAudio:     "sendAudio",
	model.KindVoice:     "sendVoice",
	model.KindVideoNote: "sendVideoNote",
	model.KindDocument:  "sendDocument",
	model.KindAnimation: "sendAnimation",
	model.KindSticker:   "sendSticker",
}

// SendMedia calls the send method of req.Kind. Uploads go out as
// multipart parts, file ids and URLs as plain parameters.
func (c *Client) SendMedia(ctx context.Context, req model.SendMediaRequest) (model.Message, error) {
	method, ok := mediaMethods[req.Kind]
	if !ok {
		return model.Message{}, errors.Errorf("no send method for %q", req.Kind)
	}
	field := string(req.Kind)

	var m model.Message
	if req.Media.IsUpload() {
		files := map[string]upload{field: {name: req.Media.FileName, data: req.Media.Data}}
		err := c.upload(ctx, method, req, files, &m)
		return m, err
	}

	fields, err := fieldsOf(req)
	if err != nil {
		return m, errors.Wrapf(err, "encode %s", method)
	}
	ref, err := json.Marshal(req.Media.FileID)
	if err != nil {
		return m, err
	}
	fields[field] = ref
	err = c.Call(ctx, method, fields, &m)
	return m, err
}

// SendMediaGroup uploads every item that carries data as attach://fileN.
func (c *Client) SendMediaGroup(ctx context.Context, req model.SendMediaGroupRequest) ([]model.Message, error) {
	var msgs []model.Message
	files := make(map[string]upload)
	items := make([]model.InputMedia, len(req.Media))
	for i, item := range req.Media {
		if item.File.IsUpload() {
			name := fmt.Sprintf("file%d", i)
			files[name] = upload{name: item.File.FileName, data: item.File.Data}
			item.Media = "attach://" + name
		} else if item.Media == "" {
			item.Media = item.File.FileID
		}
		items[i] = item
	}
	req.Media = items

	if len(files) == 0 {
		err := c.Call(ctx, "sendMediaGroup", req, &msgs)
		return msgs, err
	}
	err := c.upload(ctx, "sendMediaGroup", req, files, &msgs)
	return msgs, err
}

func (c *Client) SendLocation(ctx context.Context, req model.SendLocationRequest) (model.Message, error) {
	var m model.Message
	err := c.Call(ctx, "sendLocation", req, &m)
	return m, err
}

func (c *Client) SendVenue(ctx context.Context, req model.SendVenueRequest) (model.Message, error) {
	var m model.Message
	err := c.Call(ctx, "sendVenue", req, &m)
	return m, err
}

func (c *Client) SendContact(ctx context.Context, req model.SendContactRequest) (model.Message, error) {
	var m model.Message
	err := c.Call(ctx, "sendContact", req, &m)
	return m, err
}

func (c *Client) SendPoll(ctx context.Context, req model.SendPollRequest) (model.Message, error) {
	var m model.Message
	err := c.Call(ctx, "sendPoll", req, &m)
	return m, err
}

func (c *Client) SendDice(ctx context.Context, req model.SendDiceRequest) (model.Message, error) {
	var m model.Message
	err := c.Call(ctx, "sendDice", req, &m)
	return m, err
}

func (c *Client) ForwardMessage(ctx context.Context, req model.ForwardMessageRequest) (model.Message, error) {
	var m model.Message
	err := c.Call(ctx, "forwardMessage", req, &m)
	return m, err
}

func (c *Client) CopyMessage(ctx context.Context, req model.CopyMessageRequest) (model.MessageIDResult, error) {
	var r model.MessageIDResult
	err := c.Call(ctx, "copyMessage", req, &r)
	return r, err
}

func (c *Client) EditMessageText(ctx context.Context, req model.EditMessageTextRequest) (model.Message, error) {
	var m model.Message
	err := c.Call(ctx, "editMessageText", req, &m)
	return m, err
}

func (c *Client) EditMessageCaption(ctx context.Context, req model.EditMessageCaptionRequest) (model.Message, error) {
	var m model.Message
	err := c.Call(ctx, "editMessageCaption", req, &m)
	return m, err
}

func (c *Client) EditMessageReplyMarkup(ctx context.Context, req model.EditMessageReplyMarkupRequest) (model.Message, error) {
	var m model.Message
	err := c.Call(ctx, "editMessageReplyMarkup", req, &m)
	return m, err
}

func (c *Client) DeleteMessage(ctx context.Context, req model.DeleteMessageRequest) error {
	return c.Call(ctx, "deleteMessage", req, nil)
}

func (c *Client) PinChatMessage(ctx context.Context, req model.PinChatMessageRequest) error {
	return c.Call(ctx, "pinChatMessage", req, nil)
}

func (c *Client) UnpinChatMessage(ctx context.Context, req model.UnpinChatMessageRequest) error {
	return c.Call(ctx, "unpinChatMessage", req, nil)
}

func (c *Client) UnpinAllChatMessages(ctx context.Context, req model.UnpinAllChatMessagesRequest) error {
	return c.Call(ctx, "unpinAllChatMessages", req, nil)
}

func (c *Client) BanChatMember(ctx context.Context, req model.BanChatMemberRequest) error {
	return c.Call(ctx, "banChatMember", req, nil)
}

func (c *Client) UnbanChatMember(ctx context.Context, req model.UnbanChatMemberRequest) error {
	return c.Call(ctx, "unbanChatMember", req, nil)
}

func (c *Client) RestrictChatMember(ctx context.Context, req model.RestrictChatMemberRequest) error {
	return c.Call(ctx, "restrictChatMember", req, nil)
}

func (c *Client) AnswerCallbackQuery(ctx context.Context, req model.AnswerCallbackQueryRequest) error {
	return c.Call(ctx, "answerCallbackQuery", req, nil)
}

func (c *Client) GetFile(ctx context.Context, fileID string) (model.File, error) {
	var f model.File
	err := c.Call(ctx, "getFile", model.GetFileRequest{FileID: fileID}, &f)
	return f, err
}
