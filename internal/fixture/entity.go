package fixture

import (
	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

type UserBuilder struct {
	user model.User
}

func NewUser() *UserBuilder {
	return &UserBuilder{user: model.User{
		ID:           DefaultUserID,
		FirstName:    DefaultUserFirstName,
		LastName:     DefaultUserLastName,
		Username:     DefaultUsername,
		LanguageCode: DefaultLanguageCode,
	}}
}

func (b *UserBuilder) ID(id int64) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) IsBot(v bool) *UserBuilder {
	b.user.IsBot = v
	return b
}

func (b *UserBuilder) FirstName(s string) *UserBuilder {
	b.user.FirstName = s
	return b
}

func (b *UserBuilder) LastName(s string) *UserBuilder {
	b.user.LastName = s
	return b
}

func (b *UserBuilder) Username(s string) *UserBuilder {
	b.user.Username = s
	return b
}

func (b *UserBuilder) LanguageCode(s string) *UserBuilder {
	b.user.LanguageCode = s
	return b
}

func (b *UserBuilder) IsPremium(v bool) *UserBuilder {
	b.user.IsPremium = v
	return b
}

func (b *UserBuilder) Build() model.User {
	return b.user
}

// ChatBuilder builds chats of every type; the constructor picks the type
// and its defaults.
type ChatBuilder struct {
	chat model.Chat
}

// NewPrivateChat returns a builder for the private chat with the default
// user. A private chat shares its id with the user on the other side.
func NewPrivateChat() *ChatBuilder {
	return &ChatBuilder{chat: model.Chat{
		ID:        DefaultUserID,
		Type:      model.ChatTypePrivate,
		FirstName: DefaultUserFirstName,
		LastName:  DefaultUserLastName,
	}}
}

func NewGroup() *ChatBuilder {
	return &ChatBuilder{chat: model.Chat{
		ID:    DefaultGroupID,
		Type:  model.ChatTypeGroup,
		Title: DefaultGroupTitle,
	}}
}

func NewSupergroup() *ChatBuilder {
	return &ChatBuilder{chat: model.Chat{
		ID:    DefaultSupergroupID,
		Type:  model.ChatTypeSupergroup,
		Title: DefaultGroupTitle,
	}}
}

func NewChannel() *ChatBuilder {
	return &ChatBuilder{chat: model.Chat{
		ID:       DefaultChannelID,
		Type:     model.ChatTypeChannel,
		Title:    DefaultChannelTitle,
		Username: DefaultChannelName,
	}}
}

func (b *ChatBuilder) ID(id int64) *ChatBuilder {
	b.chat.ID = id
	return b
}

func (b *ChatBuilder) Title(s string) *ChatBuilder {
	b.chat.Title = s
	return b
}

func (b *ChatBuilder) Username(s string) *ChatBuilder {
	b.chat.Username = s
	return b
}

func (b *ChatBuilder) FirstName(s string) *ChatBuilder {
	b.chat.FirstName = s
	return b
}

func (b *ChatBuilder) LastName(s string) *ChatBuilder {
	b.chat.LastName = s
	return b
}

func (b *ChatBuilder) IsForum(v bool) *ChatBuilder {
	b.chat.IsForum = v
	return b
}

func (b *ChatBuilder) Build() model.Chat {
	return b.chat
}

type PhotoSizeBuilder struct {
	size model.PhotoSize
}

func NewPhotoSize() *PhotoSizeBuilder {
	return &PhotoSizeBuilder{size: model.PhotoSize{
		FileMeta: model.FileMeta{
			FileID:       DefaultPhotoFileID,
			FileUniqueID: DefaultFileUniqueID,
			FileSize:     DefaultPhotoFileSize,
		},
		Width:  DefaultPhotoWidth,
		Height: DefaultPhotoHeight,
	}}
}

func (b *PhotoSizeBuilder) FileID(id string) *PhotoSizeBuilder {
	b.size.FileID = id
	return b
}

func (b *PhotoSizeBuilder) FileUniqueID(id string) *PhotoSizeBuilder {
	b.size.FileUniqueID = id
	return b
}

func (b *PhotoSizeBuilder) FileSize(n int64) *PhotoSizeBuilder {
	b.size.FileSize = n
	return b
}

func (b *PhotoSizeBuilder) Width(w int) *PhotoSizeBuilder {
	b.size.Width = w
	return b
}

func (b *PhotoSizeBuilder) Height(h int) *PhotoSizeBuilder {
	b.size.Height = h
	return b
}

func (b *PhotoSizeBuilder) Build() model.PhotoSize {
	return b.size
}

// VideoFileBuilder builds the video object carried by a video message.
type VideoFileBuilder struct {
	video model.Video
}

func NewVideoFile() *VideoFileBuilder {
	return &VideoFileBuilder{video: model.Video{
		FileMeta: model.FileMeta{
			FileID:       DefaultVideoFileID,
			FileUniqueID: DefaultFileUniqueID,
			FileSize:     DefaultVideoFileSize,
		},
		Width:    DefaultVideoWidth,
		Height:   DefaultVideoHeight,
		Duration: DefaultVideoDuration,
		MimeType: DefaultVideoMimeType,
	}}
}

func (b *VideoFileBuilder) FileID(id string) *VideoFileBuilder {
	b.video.FileID = id
	return b
}

func (b *VideoFileBuilder) FileUniqueID(id string) *VideoFileBuilder {
	b.video.FileUniqueID = id
	return b
}

func (b *VideoFileBuilder) FileSize(n int64) *VideoFileBuilder {
	b.video.FileSize = n
	return b
}

func (b *VideoFileBuilder) Width(w int) *VideoFileBuilder {
	b.video.Width = w
	return b
}

func (b *VideoFileBuilder) Height(h int) *VideoFileBuilder {
	b.video.Height = h
	return b
}

func (b *VideoFileBuilder) Duration(d int) *VideoFileBuilder {
	b.video.Duration = d
	return b
}

func (b *VideoFileBuilder) FileName(s string) *VideoFileBuilder {
	b.video.FileName = s
	return b
}

func (b *VideoFileBuilder) MimeType(s string) *VideoFileBuilder {
	b.video.MimeType = s
	return b
}

func (b *VideoFileBuilder) Build() model.Video {
	return b.video
}

// PointBuilder builds a bare location, as used by location and venue
// messages.
type PointBuilder struct {
	location model.Location
}

func NewPoint() *PointBuilder {
	return &PointBuilder{location: model.Location{
		Latitude:  DefaultLatitude,
		Longitude: DefaultLongitude,
	}}
}

func (b *PointBuilder) Latitude(v float64) *PointBuilder {
	b.location.Latitude = v
	return b
}

func (b *PointBuilder) Longitude(v float64) *PointBuilder {
	b.location.Longitude = v
	return b
}

func (b *PointBuilder) HorizontalAccuracy(v float64) *PointBuilder {
	b.location.HorizontalAccuracy = v
	return b
}

func (b *PointBuilder) LivePeriod(seconds int) *PointBuilder {
	b.location.LivePeriod = seconds
	return b
}

func (b *PointBuilder) Build() model.Location {
	return b.location
}
