package usecase

import (
	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/responses"
)

// HiddenUserName is the origin name of a forward from a private chat with
// no sender and no username.
const HiddenUserName = "no_username"

// forwardOrigin describes src as the origin of a forward of it.
func forwardOrigin(src model.Message) model.MessageOrigin {
	chat := src.Chat
	switch {
	case chat.IsPrivate() && src.From != nil:
		u := *src.From
		return model.MessageOrigin{Type: model.OriginUser, Date: src.Date, SenderUser: &u}
	case chat.IsPrivate():
		name := chat.Username
		if name == "" {
			name = HiddenUserName
		}
		return model.MessageOrigin{Type: model.OriginHiddenUser, Date: src.Date, SenderUserName: name}
	case chat.IsGroup():
		return model.MessageOrigin{Type: model.OriginChat, Date: src.Date, SenderChat: &chat}
	default:
		return model.MessageOrigin{Type: model.OriginChannel, Date: src.Date, Chat: &chat, MessageID: src.ID}
	}
}

// ForwardMessage stores a copy of the source message in the target chat,
// sent by the bot, with a forward origin describing the source.
func (h *MessageHandler) ForwardMessage(req model.ForwardMessageRequest) (model.Message, error) {
	h.mu.Lock()
	msg, err := h.forwardLocked(req)
	h.mu.Unlock()

	h.logCall("forwardMessage", msg, err)
	return msg, err
}

func (h *MessageHandler) forwardLocked(req model.ForwardMessageRequest) (model.Message, error) {
	src, err := h.messageInChatLocked(req.FromChatID, req.MessageID)
	if err != nil {
		return model.Message{}, badRequest(descForwardNotFound)
	}
	if src.HasProtectedContent {
		return model.Message{}, badRequest(descProtectedContent)
	}
	chat, err := h.resolveChatLocked(req.ChatID)
	if err != nil {
		return model.Message{}, err
	}

	origin := forwardOrigin(src)
	me := h.me
	msg := src.Clone()
	msg.ForwardOrigin = &origin
	msg.HasProtectedContent = req.ProtectContent
	msg.Chat = chat
	msg.From = &me
	msg.ThreadID = req.MessageThreadID

	msg = h.repo.Add(msg)
	h.trackLocked(msg)
	h.log.SentMessages.Append(msg)
	h.log.ForwardedMessages.Append(responses.Record[model.ForwardMessageRequest]{Message: msg, Request: req})
	return msg, nil
}

// CopyMessage stores the payload of the source message as a new message
// without a link to the original. It returns the id of the copy. A caption
// override is rejected when the source kind has no caption.
func (h *MessageHandler) CopyMessage(req model.CopyMessageRequest) (model.MessageIDResult, error) {
	h.mu.Lock()
	msg, err := h.copyLocked(req)
	h.mu.Unlock()

	h.logCall("copyMessage", msg, err)
	if err != nil {
		return model.MessageIDResult{}, err
	}
	return model.MessageIDResult{MessageID: msg.ID}, nil
}

func (h *MessageHandler) copyLocked(req model.CopyMessageRequest) (model.Message, error) {
	src, err := h.messageInChatLocked(req.FromChatID, req.MessageID)
	if err != nil {
		return model.Message{}, badRequest(descCopyNotFound)
	}
	if src.HasProtectedContent {
		return model.Message{}, badRequest(descProtectedCopy)
	}

	payload := src.Payload
	if req.Caption != nil {
		var ok bool
		if payload, ok = model.WithCaption(payload, *req.Caption, req.CaptionEntities); !ok {
			return model.Message{}, badRequest(descNoCaptionToCopy)
		}
	}
	draft := model.Message{Payload: payload}
	msg, err := h.sendLocked(req.SendOptions, draft)
	if err != nil {
		return model.Message{}, err
	}
	h.log.CopiedMessages.Append(responses.Record[model.CopyMessageRequest]{Message: msg, Request: req})
	return msg, nil
}
