package server

import (
	"net/http"
	"strings"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/usecase"
)

type method struct {
	name string
	call func(r *request) (any, error)
}

// mediaKinds maps the file sending methods to the kind they send. The
// file is read from the parameter named after the kind.
var mediaKinds = map[string]model.Kind{
	"sendPhoto":     model.KindPhoto,
	"sendVideo":     model.KindVideo,
	"sendAudio":     model.KindAudio,
	"sendVoice":     model.KindVoice,
	"sendVideoNote": model.KindVideoNote,
	"sendDocument":  model.KindDocument,
	"sendAnimation": model.KindAnimation,
	"sendSticker":   model.KindSticker,
}

// call decodes the body into Req and passes it to fn.
func call[Req, Res any](fn func(Req) (Res, error)) func(*request) (any, error) {
	return func(r *request) (any, error) {
		var req Req
		if err := r.decode(&req); err != nil {
			return nil, err
		}
		return fn(req)
	}
}

// callOK is call for methods that return True on success.
func callOK[Req any](fn func(Req) error) func(*request) (any, error) {
	return func(r *request) (any, error) {
		var req Req
		if err := r.decode(&req); err != nil {
			return nil, err
		}
		if err := fn(req); err != nil {
			return nil, err
		}
		return true, nil
	}
}

func (s *Server) routes() map[string]method {
	h := s.handler
	list := []method{
		{"getMe", func(*request) (any, error) { return h.Me(), nil }},
		{"getFile", call(h.GetFile)},
		{"sendMessage", call(h.SendMessage)},
		{"sendLocation", call(h.SendLocation)},
		{"sendVenue", call(h.SendVenue)},
		{"sendContact", call(h.SendContact)},
		{"sendPoll", call(h.SendPoll)},
		{"sendDice", call(h.SendDice)},
		{"sendMediaGroup", s.sendMediaGroup},
		{"forwardMessage", call(h.ForwardMessage)},
		{"copyMessage", call(h.CopyMessage)},
		{"editMessageText", call(h.EditMessageText)},
		{"editMessageCaption", call(h.EditMessageCaption)},
		{"editMessageReplyMarkup", call(h.EditMessageReplyMarkup)},
		{"deleteMessage", callOK(h.DeleteMessage)},
		{"pinChatMessage", callOK(h.PinChatMessage)},
		{"unpinChatMessage", callOK(h.UnpinChatMessage)},
		{"unpinAllChatMessages", callOK(h.UnpinAllChatMessages)},
		{"banChatMember", callOK(h.BanChatMember)},
		{"unbanChatMember", callOK(h.UnbanChatMember)},
		{"restrictChatMember", callOK(h.RestrictChatMember)},
		{"answerCallbackQuery", callOK(h.AnswerCallbackQuery)},
	}
	for name, kind := range mediaKinds {
		list = append(list, method{name, s.sendMedia(kind)})
	}

	methods := make(map[string]method, len(list))
	for _, m := range list {
		methods[strings.ToLower(m.name)] = m
	}
	return methods
}

func (s *Server) sendMedia(kind model.Kind) func(*request) (any, error) {
	return func(r *request) (any, error) {
		var req model.SendMediaRequest
		if err := r.decode(&req); err != nil {
			return nil, err
		}
		file, err := r.inputFile(string(kind))
		if err != nil {
			return nil, err
		}
		req.Kind = kind
		req.Media = file
		return s.handler.SendMedia(req)
	}
}

func (s *Server) sendMediaGroup(r *request) (any, error) {
	var req model.SendMediaGroupRequest
	if err := r.decode(&req); err != nil {
		return nil, err
	}
	for i, item := range req.Media {
		if !strings.HasPrefix(item.Media, attachPrefix) {
			continue
		}
		file, err := r.attachment(item.Media)
		if err != nil {
			return nil, &usecase.APIError{
				Code:        http.StatusBadRequest,
				Description: "Bad Request: " + err.Error(),
			}
		}
		req.Media[i].File = file
	}
	return s.handler.SendMediaGroup(req)
}
