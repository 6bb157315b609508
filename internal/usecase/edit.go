package usecase

import (
	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/responses"
)

// EditMessageText replaces the text and entities of a text message. No
// other field changes apart from the edit date.
func (h *MessageHandler) EditMessageText(req model.EditMessageTextRequest) (model.Message, error) {
	if req.Text == "" {
		return model.Message{}, badRequest(descEmptyText)
	}

	h.mu.Lock()
	msg, err := h.editLocked(req.ChatID, req.MessageID, func(m *model.Message) error {
		if _, ok := m.Payload.(model.TextPayload); !ok {
			return badRequest(descNoTextToEdit)
		}
		m.Payload = model.TextPayload{Text: req.Text, Entities: req.Entities}
		return nil
	})
	if err == nil {
		h.log.EditedTexts.Append(responses.Record[model.EditMessageTextRequest]{Message: msg, Request: req})
	}
	h.mu.Unlock()

	h.logCall("editMessageText", msg, err)
	return msg, err
}

func (h *MessageHandler) EditMessageCaption(req model.EditMessageCaptionRequest) (model.Message, error) {
	h.mu.Lock()
	msg, err := h.editLocked(req.ChatID, req.MessageID, func(m *model.Message) error {
		p, ok := model.WithCaption(m.Payload, req.Caption, req.CaptionEntities)
		if !ok {
			return badRequest(descNoCaptionToEdit)
		}
		m.Payload = p
		return nil
	})
	if err == nil {
		h.log.EditedCaptions.Append(responses.Record[model.EditMessageCaptionRequest]{Message: msg, Request: req})
	}
	h.mu.Unlock()

	h.logCall("editMessageCaption", msg, err)
	return msg, err
}

// EditMessageReplyMarkup replaces the inline keyboard of a message. A
// request without an inline keyboard removes it.
func (h *MessageHandler) EditMessageReplyMarkup(req model.EditMessageReplyMarkupRequest) (model.Message, error) {
	h.mu.Lock()
	msg, err := h.editLocked(req.ChatID, req.MessageID, func(m *model.Message) error {
		m.ReplyMarkup = req.ReplyMarkup.InlineKeyboard()
		return nil
	})
	if err == nil {
		h.log.EditedReplyMarkups.Append(responses.Record[model.EditMessageReplyMarkupRequest]{Message: msg, Request: req})
	}
	h.mu.Unlock()

	h.logCall("editMessageReplyMarkup", msg, err)
	return msg, err
}

func (h *MessageHandler) editLocked(chatID model.ChatID, id int, edit func(*model.Message) error) (model.Message, error) {
	msg, err := h.messageInChatLocked(chatID, id)
	if err != nil {
		return model.Message{}, badRequest(descEditNotFound)
	}
	if err := edit(&msg); err != nil {
		return model.Message{}, err
	}
	msg.EditDate = h.now().Unix()
	if err := h.repo.Update(msg); err != nil {
		panic(err)
	}
	return msg, nil
}

// DeleteMessage removes a message from the store. The log keeps it.
func (h *MessageHandler) DeleteMessage(req model.DeleteMessageRequest) error {
	h.mu.Lock()
	msg, err := h.messageInChatLocked(req.ChatID, req.MessageID)
	if err == nil {
		msg, err = h.repo.Delete(req.MessageID)
	}
	if err == nil {
		h.log.DeletedMessages.Append(responses.DeletedMessage{Message: msg, Request: req})
	}
	h.mu.Unlock()

	if err != nil {
		apiErr := badRequest(descDeleteNotFound)
		h.logCall("deleteMessage", msg, apiErr)
		return apiErr
	}
	h.logCall("deleteMessage", msg, nil)
	return nil
}

func (h *MessageHandler) PinChatMessage(req model.PinChatMessageRequest) error {
	h.mu.Lock()
	_, err := h.repo.Get(req.MessageID)
	if err == nil {
		h.log.PinnedMessages.Append(req)
	}
	h.mu.Unlock()

	if err != nil {
		return badRequest(descPinNotFound)
	}
	h.logger.Sugar().Debugw("pinChatMessage", "message_id", req.MessageID, "chat_id", req.ChatID.String())
	return nil
}

// UnpinChatMessage checks the message only when one is named; without it
// the most recent pin is meant.
func (h *MessageHandler) UnpinChatMessage(req model.UnpinChatMessageRequest) error {
	h.mu.Lock()
	var err error
	if req.MessageID != 0 {
		_, err = h.repo.Get(req.MessageID)
	}
	if err == nil {
		h.log.UnpinnedMessages.Append(req)
	}
	h.mu.Unlock()

	if err != nil {
		return badRequest(descUnpinNotFound)
	}
	h.logger.Sugar().Debugw("unpinChatMessage", "message_id", req.MessageID, "chat_id", req.ChatID.String())
	return nil
}

func (h *MessageHandler) UnpinAllChatMessages(req model.UnpinAllChatMessagesRequest) error {
	h.mu.Lock()
	h.log.UnpinnedAllMessages.Append(req)
	h.mu.Unlock()

	h.logger.Sugar().Debugw("unpinAllChatMessages", "chat_id", req.ChatID.String())
	return nil
}

func (h *MessageHandler) AnswerCallbackQuery(req model.AnswerCallbackQueryRequest) error {
	h.mu.Lock()
	_, ok := h.callbacks[req.CallbackQueryID]
	if ok {
		h.log.AnsweredCallbackQueries.Append(req)
	}
	h.mu.Unlock()

	if !ok {
		return badRequest(descInvalidQueryID)
	}
	h.logger.Sugar().Debugw("answerCallbackQuery", "callback_query_id", req.CallbackQueryID)
	return nil
}
