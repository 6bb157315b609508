package model

type Kind string

const (
	KindText            Kind = "text"
	KindPhoto           Kind = "photo"
	KindVideo           Kind = "video"
	KindAudio           Kind = "audio"
	KindVoice           Kind = "voice"
	KindDocument        Kind = "document"
	KindAnimation       Kind = "animation"
	KindSticker         Kind = "sticker"
	KindContact         Kind = "contact"
	KindLocation        Kind = "location"
	KindVenue           Kind = "venue"
	KindPoll            Kind = "poll"
	KindDice            Kind = "dice"
	KindGame            Kind = "game"
	KindVideoNote       Kind = "video_note"
	KindMigrateToChat   Kind = "migrate_to_chat_id"
	KindMigrateFromChat Kind = "migrate_from_chat_id"
)

// Payload is the kind-specific part of a message. Exactly one is set on a
// stored message.
type Payload interface {
	Kind() Kind
}

type TextPayload struct {
	Text     string          `json:"text"`
	Entities []MessageEntity `json:"entities,omitempty"`
}

type PhotoPayload struct {
	Photo           []PhotoSize     `json:"photo"`
	Caption         string          `json:"caption,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	HasMediaSpoiler bool            `json:"has_media_spoiler,omitempty"`
}

type VideoPayload struct {
	Video           Video           `json:"video"`
	Caption         string          `json:"caption,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	HasMediaSpoiler bool            `json:"has_media_spoiler,omitempty"`
}

type AudioPayload struct {
	Audio           Audio           `json:"audio"`
	Caption         string          `json:"caption,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
}

type VoicePayload struct {
	Voice           Voice           `json:"voice"`
	Caption         string          `json:"caption,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
}

type DocumentPayload struct {
	Document        Document        `json:"document"`
	Caption         string          `json:"caption,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
}

type AnimationPayload struct {
	Animation       Animation       `json:"animation"`
	Caption         string          `json:"caption,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	HasMediaSpoiler bool            `json:"has_media_spoiler,omitempty"`
}

type StickerPayload struct {
	Sticker Sticker `json:"sticker"`
}

type ContactPayload struct {
	Contact Contact `json:"contact"`
}

type LocationPayload struct {
	Location Location `json:"location"`
}

type VenuePayload struct {
	Venue Venue `json:"venue"`
}

type PollPayload struct {
	Poll Poll `json:"poll"`
}

type DicePayload struct {
	Dice Dice `json:"dice"`
}

type GamePayload struct {
	Game Game `json:"game"`
}

type VideoNotePayload struct {
	VideoNote VideoNote `json:"video_note"`
}

type MigrateToChatPayload struct {
	ChatID int64 `json:"migrate_to_chat_id"`
}

type MigrateFromChatPayload struct {
	ChatID int64 `json:"migrate_from_chat_id"`
}

func (TextPayload) Kind() Kind            { return KindText }
func (PhotoPayload) Kind() Kind           { return KindPhoto }
func (VideoPayload) Kind() Kind           { return KindVideo }
func (AudioPayload) Kind() Kind           { return KindAudio }
func (VoicePayload) Kind() Kind           { return KindVoice }
func (DocumentPayload) Kind() Kind        { return KindDocument }
func (AnimationPayload) Kind() Kind       { return KindAnimation }
func (StickerPayload) Kind() Kind         { return KindSticker }
func (ContactPayload) Kind() Kind         { return KindContact }
func (LocationPayload) Kind() Kind        { return KindLocation }
func (VenuePayload) Kind() Kind           { return KindVenue }
func (PollPayload) Kind() Kind            { return KindPoll }
func (DicePayload) Kind() Kind            { return KindDice }
func (GamePayload) Kind() Kind            { return KindGame }
func (VideoNotePayload) Kind() Kind       { return KindVideoNote }
func (MigrateToChatPayload) Kind() Kind   { return KindMigrateToChat }
func (MigrateFromChatPayload) Kind() Kind { return KindMigrateFromChat }

// Caption returns the caption of p and whether p is a captioned kind.
func Caption(p Payload) (string, []MessageEntity, bool) {
	switch v := p.(type) {
	case PhotoPayload:
		return v.Caption, v.CaptionEntities, true
	case VideoPayload:
		return v.Caption, v.CaptionEntities, true
	case AudioPayload:
		return v.Caption, v.CaptionEntities, true
	case VoicePayload:
		return v.Caption, v.CaptionEntities, true
	case DocumentPayload:
		return v.Caption, v.CaptionEntities, true
	case AnimationPayload:
		return v.Caption, v.CaptionEntities, true
	default:
		return "", nil, false
	}
}

// WithCaption returns p with its caption replaced. The second result is
// false when p has no caption field.
func WithCaption(p Payload, caption string, entities []MessageEntity) (Payload, bool) {
	switch v := p.(type) {
	case PhotoPayload:
		v.Caption, v.CaptionEntities = caption, entities
		return v, true
	case VideoPayload:
		v.Caption, v.CaptionEntities = caption, entities
		return v, true
	case AudioPayload:
		v.Caption, v.CaptionEntities = caption, entities
		return v, true
	case VoicePayload:
		v.Caption, v.CaptionEntities = caption, entities
		return v, true
	case DocumentPayload:
		v.Caption, v.CaptionEntities = caption, entities
		return v, true
	case AnimationPayload:
		v.Caption, v.CaptionEntities = caption, entities
		return v, true
	default:
		return p, false
	}
}

// Files lists the downloadable files referenced by p.
func Files(p Payload) []FileMeta {
	switch v := p.(type) {
	case PhotoPayload:
		out := make([]FileMeta, 0, len(v.Photo))
		for _, s := range v.Photo {
			out = append(out, s.FileMeta)
		}
		return out
	case VideoPayload:
		return []FileMeta{v.Video.FileMeta}
	case AudioPayload:
		return []FileMeta{v.Audio.FileMeta}
	case VoicePayload:
		return []FileMeta{v.Voice.FileMeta}
	case DocumentPayload:
		return []FileMeta{v.Document.FileMeta}
	case AnimationPayload:
		return []FileMeta{v.Animation.FileMeta}
	case StickerPayload:
		return []FileMeta{v.Sticker.FileMeta}
	case VideoNotePayload:
		return []FileMeta{v.VideoNote.FileMeta}
	default:
		return nil
	}
}
