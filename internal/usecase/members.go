package usecase

import (
	"go.uber.org/zap"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

func (h *MessageHandler) memberLocked(chatID model.ChatID, userID int64) (model.Chat, error) {
	chat, err := h.knownChatLocked(chatID)
	if err != nil {
		return model.Chat{}, err
	}
	if _, ok := h.users[userID]; !ok {
		return model.Chat{}, badRequest(descUserNotFound)
	}
	return chat, nil
}

// BanChatMember bans a user from a known chat. The user's messages in the
// chat are removed from the store when the request revokes them, and
// always in supergroups and channels.
func (h *MessageHandler) BanChatMember(req model.BanChatMemberRequest) error {
	h.mu.Lock()
	revoked, err := h.banLocked(req)
	h.mu.Unlock()

	if err != nil {
		h.logger.Info("banChatMember", zap.Error(err))
		return err
	}
	h.logger.Debug("banChatMember",
		zap.Int64("user_id", req.UserID),
		zap.String("chat_id", req.ChatID.String()),
		zap.Int("revoked", revoked),
	)
	return nil
}

func (h *MessageHandler) banLocked(req model.BanChatMemberRequest) (int, error) {
	chat, err := h.memberLocked(req.ChatID, req.UserID)
	if err != nil {
		return 0, err
	}
	if h.banned[chat.ID] == nil {
		h.banned[chat.ID] = make(map[int64]struct{})
	}
	h.banned[chat.ID][req.UserID] = struct{}{}

	revoked := 0
	if req.RevokeMessages || chat.Type == model.ChatTypeSupergroup || chat.IsChannel() {
		for _, m := range h.repo.List(chat.ID) {
			if m.From == nil || m.From.ID != req.UserID {
				continue
			}
			if _, err := h.repo.Delete(m.ID); err != nil {
				panic(err)
			}
			revoked++
		}
	}
	h.log.BannedChatMembers.Append(req)
	return revoked, nil
}

func (h *MessageHandler) UnbanChatMember(req model.UnbanChatMemberRequest) error {
	h.mu.Lock()
	chat, err := h.memberLocked(req.ChatID, req.UserID)
	if err == nil {
		delete(h.banned[chat.ID], req.UserID)
		h.log.UnbannedChatMembers.Append(req)
	}
	h.mu.Unlock()

	if err != nil {
		h.logger.Info("unbanChatMember", zap.Error(err))
		return err
	}
	h.logger.Debug("unbanChatMember", zap.Int64("user_id", req.UserID), zap.Int64("chat_id", chat.ID))
	return nil
}

func (h *MessageHandler) RestrictChatMember(req model.RestrictChatMemberRequest) error {
	h.mu.Lock()
	chat, err := h.memberLocked(req.ChatID, req.UserID)
	if err == nil {
		h.log.RestrictedChatMembers.Append(req)
	}
	h.mu.Unlock()

	if err != nil {
		h.logger.Info("restrictChatMember", zap.Error(err))
		return err
	}
	h.logger.Debug("restrictChatMember", zap.Int64("user_id", req.UserID), zap.Int64("chat_id", chat.ID))
	return nil
}

// IsBanned reports whether a user is banned from a chat.
func (h *MessageHandler) IsBanned(chatID, userID int64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.banned[chatID][userID]
	return ok
}
