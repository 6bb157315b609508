package fixture

import (
	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

type PhotoBuilder struct {
	Common[PhotoBuilder]
	captioned[PhotoBuilder]
	sizes   []model.PhotoSize
	spoiler bool
}

func NewPhoto() *PhotoBuilder {
	b := &PhotoBuilder{spoiler: DefaultHasMediaSpoiler}
	b.Common = newCommon(b)
	b.captioned = captioned[PhotoBuilder]{self: b}
	return b
}

// Photo replaces the default single size with the given sizes.
func (b *PhotoBuilder) Photo(sizes ...model.PhotoSize) *PhotoBuilder {
	b.sizes = sizes
	return b
}

func (b *PhotoBuilder) HasMediaSpoiler(v bool) *PhotoBuilder {
	b.spoiler = v
	return b
}

func (b *PhotoBuilder) Build() model.Message {
	sizes := b.sizes
	if sizes == nil {
		sizes = []model.PhotoSize{NewPhotoSize().Build()}
	}
	return b.finish(model.PhotoPayload{
		Photo:           sizes,
		Caption:         b.caption,
		CaptionEntities: b.entities,
		HasMediaSpoiler: b.spoiler,
	})
}

type VideoBuilder struct {
	Common[VideoBuilder]
	captioned[VideoBuilder]
	video   *model.Video
	spoiler bool
}

func NewVideo() *VideoBuilder {
	b := &VideoBuilder{spoiler: DefaultHasMediaSpoiler}
	b.Common = newCommon(b)
	b.captioned = captioned[VideoBuilder]{self: b}
	return b
}

func (b *VideoBuilder) Video(v model.Video) *VideoBuilder {
	b.video = &v
	return b
}

func (b *VideoBuilder) HasMediaSpoiler(v bool) *VideoBuilder {
	b.spoiler = v
	return b
}

func (b *VideoBuilder) Build() model.Message {
	video := b.video
	if video == nil {
		v := NewVideoFile().Build()
		video = &v
	}
	return b.finish(model.VideoPayload{
		Video:           *video,
		Caption:         b.caption,
		CaptionEntities: b.entities,
		HasMediaSpoiler: b.spoiler,
	})
}

type AudioBuilder struct {
	Common[AudioBuilder]
	captioned[AudioBuilder]
	fileFields[AudioBuilder]
	duration  int
	performer string
	title     string
	fileName  string
	mimeType  string
}

func NewAudio() *AudioBuilder {
	b := &AudioBuilder{duration: DefaultAudioDuration}
	b.Common = newCommon(b)
	b.captioned = captioned[AudioBuilder]{self: b}
	b.fileFields = newFileFields(b, DefaultAudioFileID, DefaultAudioFileSize)
	return b
}

func (b *AudioBuilder) Duration(d int) *AudioBuilder {
	b.duration = d
	return b
}

func (b *AudioBuilder) Performer(s string) *AudioBuilder {
	b.performer = s
	return b
}

func (b *AudioBuilder) Title(s string) *AudioBuilder {
	b.title = s
	return b
}

func (b *AudioBuilder) FileName(s string) *AudioBuilder {
	b.fileName = s
	return b
}

func (b *AudioBuilder) MimeType(s string) *AudioBuilder {
	b.mimeType = s
	return b
}

func (b *AudioBuilder) Build() model.Message {
	return b.finish(model.AudioPayload{
		Audio: model.Audio{
			FileMeta:  b.meta,
			Duration:  b.duration,
			Performer: b.performer,
			Title:     b.title,
			FileName:  b.fileName,
			MimeType:  b.mimeType,
		},
		Caption:         b.caption,
		CaptionEntities: b.entities,
	})
}

type VoiceBuilder struct {
	Common[VoiceBuilder]
	captioned[VoiceBuilder]
	fileFields[VoiceBuilder]
	duration int
	mimeType string
}

func NewVoice() *VoiceBuilder {
	b := &VoiceBuilder{duration: DefaultVoiceDuration}
	b.Common = newCommon(b)
	b.captioned = captioned[VoiceBuilder]{self: b}
	b.fileFields = newFileFields(b, DefaultVoiceFileID, DefaultVoiceFileSize)
	return b
}

func (b *VoiceBuilder) Duration(d int) *VoiceBuilder {
	b.duration = d
	return b
}

func (b *VoiceBuilder) MimeType(s string) *VoiceBuilder {
	b.mimeType = s
	return b
}

func (b *VoiceBuilder) Build() model.Message {
	return b.finish(model.VoicePayload{
		Voice:           model.Voice{FileMeta: b.meta, Duration: b.duration, MimeType: b.mimeType},
		Caption:         b.caption,
		CaptionEntities: b.entities,
	})
}

type DocumentBuilder struct {
	Common[DocumentBuilder]
	captioned[DocumentBuilder]
	fileFields[DocumentBuilder]
	fileName string
	mimeType string
}

func NewDocument() *DocumentBuilder {
	b := &DocumentBuilder{}
	b.Common = newCommon(b)
	b.captioned = captioned[DocumentBuilder]{self: b}
	b.fileFields = newFileFields(b, DefaultDocumentFileID, DefaultDocumentFileSize)
	return b
}

func (b *DocumentBuilder) FileName(s string) *DocumentBuilder {
	b.fileName = s
	return b
}

func (b *DocumentBuilder) MimeType(s string) *DocumentBuilder {
	b.mimeType = s
	return b
}

func (b *DocumentBuilder) Build() model.Message {
	return b.finish(model.DocumentPayload{
		Document:        model.Document{FileMeta: b.meta, FileName: b.fileName, MimeType: b.mimeType},
		Caption:         b.caption,
		CaptionEntities: b.entities,
	})
}

type AnimationBuilder struct {
	Common[AnimationBuilder]
	captioned[AnimationBuilder]
	fileFields[AnimationBuilder]
	width, height int
	duration      int
	fileName      string
	mimeType      string
	spoiler       bool
}

func NewAnimation() *AnimationBuilder {
	b := &AnimationBuilder{
		width:    DefaultAnimationWidth,
		height:   DefaultAnimationHeight,
		duration: DefaultAnimationDuration,
		spoiler:  DefaultHasMediaSpoiler,
	}
	b.Common = newCommon(b)
	b.captioned = captioned[AnimationBuilder]{self: b}
	b.fileFields = newFileFields(b, DefaultAnimationFileID, DefaultAnimationFileSize)
	return b
}

func (b *AnimationBuilder) Width(w int) *AnimationBuilder {
	b.width = w
	return b
}

func (b *AnimationBuilder) Height(h int) *AnimationBuilder {
	b.height = h
	return b
}

func (b *AnimationBuilder) Duration(d int) *AnimationBuilder {
	b.duration = d
	return b
}

func (b *AnimationBuilder) FileName(s string) *AnimationBuilder {
	b.fileName = s
	return b
}

func (b *AnimationBuilder) MimeType(s string) *AnimationBuilder {
	b.mimeType = s
	return b
}

func (b *AnimationBuilder) HasMediaSpoiler(v bool) *AnimationBuilder {
	b.spoiler = v
	return b
}

func (b *AnimationBuilder) Build() model.Message {
	return b.finish(model.AnimationPayload{
		Animation: model.Animation{
			FileMeta: b.meta,
			Width:    b.width,
			Height:   b.height,
			Duration: b.duration,
			FileName: b.fileName,
			MimeType: b.mimeType,
		},
		Caption:         b.caption,
		CaptionEntities: b.entities,
		HasMediaSpoiler: b.spoiler,
	})
}

type StickerBuilder struct {
	Common[StickerBuilder]
	fileFields[StickerBuilder]
	kind          model.StickerType
	width, height int
	isAnimated    bool
	isVideo       bool
	emoji         string
	setName       string
}

func NewSticker() *StickerBuilder {
	b := &StickerBuilder{
		kind:   model.StickerTypeRegular,
		width:  DefaultStickerWidth,
		height: DefaultStickerHeight,
	}
	b.Common = newCommon(b)
	b.fileFields = newFileFields(b, DefaultStickerFileID, DefaultStickerFileSize)
	return b
}

func (b *StickerBuilder) Type(t model.StickerType) *StickerBuilder {
	b.kind = t
	return b
}

func (b *StickerBuilder) Width(w int) *StickerBuilder {
	b.width = w
	return b
}

func (b *StickerBuilder) Height(h int) *StickerBuilder {
	b.height = h
	return b
}

func (b *StickerBuilder) IsAnimated(v bool) *StickerBuilder {
	b.isAnimated = v
	return b
}

func (b *StickerBuilder) IsVideo(v bool) *StickerBuilder {
	b.isVideo = v
	return b
}

func (b *StickerBuilder) Emoji(s string) *StickerBuilder {
	b.emoji = s
	return b
}

func (b *StickerBuilder) SetName(s string) *StickerBuilder {
	b.setName = s
	return b
}

func (b *StickerBuilder) Build() model.Message {
	return b.finish(model.StickerPayload{Sticker: model.Sticker{
		FileMeta:   b.meta,
		Type:       b.kind,
		Width:      b.width,
		Height:     b.height,
		IsAnimated: b.isAnimated,
		IsVideo:    b.isVideo,
		Emoji:      b.emoji,
		SetName:    b.setName,
	}})
}

type VideoNoteBuilder struct {
	Common[VideoNoteBuilder]
	fileFields[VideoNoteBuilder]
	length   int
	duration int
}

func NewVideoNote() *VideoNoteBuilder {
	b := &VideoNoteBuilder{length: DefaultVideoNoteLength, duration: DefaultVideoNoteDuration}
	b.Common = newCommon(b)
	b.fileFields = newFileFields(b, DefaultVideoNoteFileID, DefaultVideoNoteFileSize)
	return b
}

func (b *VideoNoteBuilder) Length(n int) *VideoNoteBuilder {
	b.length = n
	return b
}

func (b *VideoNoteBuilder) Duration(d int) *VideoNoteBuilder {
	b.duration = d
	return b
}

func (b *VideoNoteBuilder) Build() model.Message {
	return b.finish(model.VideoNotePayload{VideoNote: model.VideoNote{
		FileMeta: b.meta,
		Length:   b.length,
		Duration: b.duration,
	}})
}
