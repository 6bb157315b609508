package usecase

import (
	"github.com/google/uuid"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/fixture"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/responses"
)

// sendLocked stores a message drafted from a fixture as sent by the bot to
// the chat named in opts.
func (h *MessageHandler) sendLocked(opts model.SendOptions, draft model.Message) (model.Message, error) {
	chat, err := h.resolveChatLocked(opts.ChatID)
	if err != nil {
		return model.Message{}, err
	}
	var reply *model.Message
	if id := opts.ReplyTo(); id != 0 {
		target, err := h.messageInChatLocked(replyChat(opts, chat), id)
		if err != nil {
			return model.Message{}, badRequest(descReplyNotFound)
		}
		reply = target.AsReplyTarget()
	}

	me := h.me
	draft.Chat = chat
	draft.From = &me
	draft.Date = h.now().Unix()
	draft.ThreadID = opts.MessageThreadID
	draft.HasProtectedContent = opts.ProtectContent
	draft.ReplyToMessage = reply
	// Only inline keyboards are attached to messages.
	draft.ReplyMarkup = opts.ReplyMarkup.InlineKeyboard()

	msg := h.repo.Add(draft)
	h.trackLocked(msg)
	h.log.SentMessages.Append(msg)
	return msg, nil
}

func (h *MessageHandler) SendMessage(req model.SendMessageRequest) (model.Message, error) {
	if req.Text == "" {
		return model.Message{}, badRequest(descEmptyText)
	}
	draft := fixture.NewText().Text(req.Text).Entities(req.Entities...).Build()

	h.mu.Lock()
	msg, err := h.sendLocked(req.SendOptions, draft)
	if err == nil {
		h.log.SentTexts.Append(responses.Record[model.SendMessageRequest]{Message: msg, Request: req})
	}
	h.mu.Unlock()

	h.logCall("sendMessage", msg, err)
	return msg, err
}

// SendMedia serves sendPhoto, sendVideo, sendAudio, sendVoice,
// sendVideoNote, sendDocument, sendAnimation and sendSticker.
func (h *MessageHandler) SendMedia(req model.SendMediaRequest) (model.Message, error) {
	if req.Media.IsZero() {
		return model.Message{}, badRequest(descMissingMedia, req.Kind)
	}

	h.mu.Lock()
	msg, err := h.sendMediaLocked(req)
	h.mu.Unlock()

	h.logCall("sendMedia", msg, err)
	return msg, err
}

func (h *MessageHandler) sendMediaLocked(req model.SendMediaRequest) (model.Message, error) {
	records := h.log.Media(req.Kind)
	if records == nil {
		return model.Message{}, badRequest(descMissingMedia, req.Kind)
	}
	meta := h.storeFileLocked(req.Kind, req.Media)
	draft, err := mediaDraft(req.Kind, meta, mediaParams{
		caption:   req.Caption,
		entities:  req.CaptionEntities,
		spoiler:   req.HasSpoiler,
		width:     req.Width,
		height:    req.Height,
		duration:  req.Duration,
		length:    req.Length,
		performer: req.Performer,
		title:     req.Title,
		emoji:     req.Emoji,
		fileName:  req.Media.FileName,
	})
	if err != nil {
		return model.Message{}, err
	}
	msg, err := h.sendLocked(req.SendOptions, draft)
	if err != nil {
		return model.Message{}, err
	}
	records.Append(responses.Record[model.SendMediaRequest]{Message: msg, Request: req})
	return msg, nil
}

type mediaParams struct {
	caption   string
	entities  []model.MessageEntity
	spoiler   bool
	width     int
	height    int
	duration  int
	length    int
	performer string
	title     string
	emoji     string
	fileName  string
}

// mediaDraft builds a message of the given media kind around an already
// stored file. Dimensions left at zero keep the fixture defaults.
func mediaDraft(kind model.Kind, meta model.FileMeta, p mediaParams) (model.Message, error) {
	switch kind {
	case model.KindPhoto:
		size := fixture.NewPhotoSize().FileID(meta.FileID).FileUniqueID(meta.FileUniqueID).FileSize(meta.FileSize)
		if p.width > 0 {
			size.Width(p.width)
		}
		if p.height > 0 {
			size.Height(p.height)
		}
		return fixture.NewPhoto().
			Photo(size.Build()).
			Caption(p.caption).
			CaptionEntities(p.entities...).
			HasMediaSpoiler(p.spoiler).
			Build(), nil
	case model.KindVideo:
		video := fixture.NewVideoFile().FileID(meta.FileID).FileUniqueID(meta.FileUniqueID).FileSize(meta.FileSize).FileName(p.fileName)
		if p.width > 0 {
			video.Width(p.width)
		}
		if p.height > 0 {
			video.Height(p.height)
		}
		if p.duration > 0 {
			video.Duration(p.duration)
		}
		return fixture.NewVideo().
			Video(video.Build()).
			Caption(p.caption).
			CaptionEntities(p.entities...).
			HasMediaSpoiler(p.spoiler).
			Build(), nil
	case model.KindAudio:
		b := fixture.NewAudio().
			FileID(meta.FileID).FileUniqueID(meta.FileUniqueID).FileSize(meta.FileSize).
			Performer(p.performer).Title(p.title).FileName(p.fileName).
			Caption(p.caption).CaptionEntities(p.entities...)
		if p.duration > 0 {
			b.Duration(p.duration)
		}
		return b.Build(), nil
	case model.KindVoice:
		b := fixture.NewVoice().
			FileID(meta.FileID).FileUniqueID(meta.FileUniqueID).FileSize(meta.FileSize).
			Caption(p.caption).CaptionEntities(p.entities...)
		if p.duration > 0 {
			b.Duration(p.duration)
		}
		return b.Build(), nil
	case model.KindDocument:
		return fixture.NewDocument().
			FileID(meta.FileID).FileUniqueID(meta.FileUniqueID).FileSize(meta.FileSize).
			FileName(p.fileName).
			Caption(p.caption).CaptionEntities(p.entities...).
			Build(), nil
	case model.KindAnimation:
		b := fixture.NewAnimation().
			FileID(meta.FileID).FileUniqueID(meta.FileUniqueID).FileSize(meta.FileSize).
			FileName(p.fileName).
			Caption(p.caption).CaptionEntities(p.entities...).
			HasMediaSpoiler(p.spoiler)
		if p.width > 0 {
			b.Width(p.width)
		}
		if p.height > 0 {
			b.Height(p.height)
		}
		if p.duration > 0 {
			b.Duration(p.duration)
		}
		return b.Build(), nil
	case model.KindVideoNote:
		b := fixture.NewVideoNote().FileID(meta.FileID).FileUniqueID(meta.FileUniqueID).FileSize(meta.FileSize)
		if p.length > 0 {
			b.Length(p.length)
		}
		if p.duration > 0 {
			b.Duration(p.duration)
		}
		return b.Build(), nil
	case model.KindSticker:
		return fixture.NewSticker().
			FileID(meta.FileID).FileUniqueID(meta.FileUniqueID).FileSize(meta.FileSize).
			Emoji(p.emoji).
			Build(), nil
	default:
		return model.Message{}, badRequest(descMediaGroupItemKind, kind)
	}
}

func (h *MessageHandler) SendLocation(req model.SendLocationRequest) (model.Message, error) {
	draft := fixture.NewLocation().
		Latitude(req.Latitude).
		Longitude(req.Longitude).
		HorizontalAccuracy(req.HorizontalAccuracy).
		LivePeriod(req.LivePeriod).
		Build()

	h.mu.Lock()
	msg, err := h.sendLocked(req.SendOptions, draft)
	if err == nil {
		h.log.SentLocations.Append(responses.Record[model.SendLocationRequest]{Message: msg, Request: req})
	}
	h.mu.Unlock()

	h.logCall("sendLocation", msg, err)
	return msg, err
}

func (h *MessageHandler) SendVenue(req model.SendVenueRequest) (model.Message, error) {
	draft := fixture.NewVenue().
		Location(fixture.NewPoint().Latitude(req.Latitude).Longitude(req.Longitude).Build()).
		Title(req.Title).
		Address(req.Address).
		FoursquareID(req.FoursquareID).
		Build()

	h.mu.Lock()
	msg, err := h.sendLocked(req.SendOptions, draft)
	if err == nil {
		h.log.SentVenues.Append(responses.Record[model.SendVenueRequest]{Message: msg, Request: req})
	}
	h.mu.Unlock()

	h.logCall("sendVenue", msg, err)
	return msg, err
}

func (h *MessageHandler) SendContact(req model.SendContactRequest) (model.Message, error) {
	draft := fixture.NewContact().
		PhoneNumber(req.PhoneNumber).
		FirstName(req.FirstName).
		LastName(req.LastName).
		VCard(req.VCard).
		Build()

	h.mu.Lock()
	msg, err := h.sendLocked(req.SendOptions, draft)
	if err == nil {
		h.log.SentContacts.Append(responses.Record[model.SendContactRequest]{Message: msg, Request: req})
	}
	h.mu.Unlock()

	h.logCall("sendContact", msg, err)
	return msg, err
}

func (h *MessageHandler) SendPoll(req model.SendPollRequest) (model.Message, error) {
	if len(req.Options) < 2 || len(req.Options) > 10 {
		return model.Message{}, badRequest(descPollOptionsCount)
	}
	options := make([]model.PollOption, 0, len(req.Options))
	for _, o := range req.Options {
		options = append(options, model.PollOption{Text: o})
	}
	anonymous := true
	if req.IsAnonymous != nil {
		anonymous = *req.IsAnonymous
	}
	pollType := req.Type
	if pollType == "" {
		pollType = model.PollTypeRegular
	}
	b := fixture.NewPoll().
		PollID(uuid.NewString()).
		Question(req.Question).
		Options(options...).
		TotalVoterCount(0).
		IsClosed(req.IsClosed).
		IsAnonymous(anonymous).
		Type(pollType).
		AllowsMultipleAnswers(req.AllowsMultipleAnswers).
		Explanation(req.Explanation)
	if req.CorrectOptionID != nil {
		b.CorrectOptionID(*req.CorrectOptionID)
	}
	draft := b.Build()

	h.mu.Lock()
	msg, err := h.sendLocked(req.SendOptions, draft)
	if err == nil {
		h.log.SentPolls.Append(responses.Record[model.SendPollRequest]{Message: msg, Request: req})
	}
	h.mu.Unlock()

	h.logCall("sendPoll", msg, err)
	return msg, err
}

// diceFaces maps each dice emoji to the number of values it can show.
var diceFaces = map[string]int{
	"🎲": 6,
	"🎯": 6,
	"🎳": 6,
	"🏀": 5,
	"⚽": 5,
	"🎰": 64,
}

func (h *MessageHandler) SendDice(req model.SendDiceRequest) (model.Message, error) {
	emoji := req.Emoji
	if emoji == "" {
		emoji = fixture.DefaultDiceEmoji
	}
	faces, ok := diceFaces[emoji]
	if !ok {
		return model.Message{}, badRequest(descInvalidDiceEmoji)
	}
	draft := fixture.NewDice().Emoji(emoji).Value(h.roll(faces)).Build()

	h.mu.Lock()
	msg, err := h.sendLocked(req.SendOptions, draft)
	if err == nil {
		h.log.SentDice.Append(responses.Record[model.SendDiceRequest]{Message: msg, Request: req})
	}
	h.mu.Unlock()

	h.logCall("sendDice", msg, err)
	return msg, err
}

// SendMediaGroup stores one message per item, all sharing a group id and
// the reply target of the request. Nothing is stored if any item fails.
func (h *MessageHandler) SendMediaGroup(req model.SendMediaGroupRequest) ([]model.Message, error) {
	if len(req.Media) < 2 || len(req.Media) > 10 {
		return nil, badRequest(descMediaGroupSize)
	}
	for _, item := range req.Media {
		switch item.Type {
		case model.KindPhoto, model.KindVideo, model.KindAudio, model.KindDocument:
		default:
			return nil, badRequest(descMediaGroupItemKind, item.Type)
		}
	}
	groupID := uuid.NewString()

	h.mu.Lock()
	msgs, err := h.sendMediaGroupLocked(req, groupID)
	h.mu.Unlock()

	if err != nil {
		h.logCall("sendMediaGroup", model.Message{}, err)
		return nil, err
	}
	for _, m := range msgs {
		h.logCall("sendMediaGroup", m, nil)
	}
	return msgs, nil
}

func (h *MessageHandler) sendMediaGroupLocked(req model.SendMediaGroupRequest, groupID string) ([]model.Message, error) {
	chat, err := h.resolveChatLocked(req.ChatID)
	if err != nil {
		return nil, err
	}
	if id := req.ReplyTo(); id != 0 {
		if _, err := h.messageInChatLocked(replyChat(req.SendOptions, chat), id); err != nil {
			return nil, badRequest(descReplyNotFound)
		}
	}

	files := make([]model.InputFile, len(req.Media))
	for i, item := range req.Media {
		files[i] = item.File
		if files[i].IsZero() {
			files[i] = model.InputFile{FileID: item.Media}
		}
		if files[i].IsZero() {
			return nil, badRequest(descMissingMedia, item.Type)
		}
	}

	// Files are registered only once every item is known to be valid.
	drafts := make([]model.Message, 0, len(req.Media))
	for i, item := range req.Media {
		file := files[i]
		meta := h.storeFileLocked(item.Type, file)
		draft, err := mediaDraft(item.Type, meta, mediaParams{
			caption:   item.Caption,
			entities:  item.CaptionEntities,
			spoiler:   item.HasSpoiler,
			width:     item.Width,
			height:    item.Height,
			duration:  item.Duration,
			performer: item.Performer,
			title:     item.Title,
			fileName:  file.FileName,
		})
		if err != nil {
			return nil, err
		}
		draft.MediaGroupID = groupID
		drafts = append(drafts, draft)
	}

	opts := req.SendOptions
	opts.ReplyMarkup = nil
	msgs := make([]model.Message, 0, len(drafts))
	for _, d := range drafts {
		msg, err := h.sendLocked(opts, d)
		if err != nil {
			panic(err)
		}
		msgs = append(msgs, msg)
	}
	h.log.SentMediaGroup.Append(responses.GroupRecord{Messages: msgs, Request: req})
	return msgs, nil
}
