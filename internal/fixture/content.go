package fixture

import (
	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

type ContactBuilder struct {
	Common[ContactBuilder]
	contact model.Contact
}

func NewContact() *ContactBuilder {
	b := &ContactBuilder{contact: model.Contact{
		PhoneNumber: DefaultPhoneNumber,
		FirstName:   DefaultContactFirstName,
	}}
	b.Common = newCommon(b)
	return b
}

func (b *ContactBuilder) PhoneNumber(s string) *ContactBuilder {
	b.contact.PhoneNumber = s
	return b
}

func (b *ContactBuilder) FirstName(s string) *ContactBuilder {
	b.contact.FirstName = s
	return b
}

func (b *ContactBuilder) LastName(s string) *ContactBuilder {
	b.contact.LastName = s
	return b
}

func (b *ContactBuilder) UserID(id int64) *ContactBuilder {
	b.contact.UserID = id
	return b
}

func (b *ContactBuilder) VCard(s string) *ContactBuilder {
	b.contact.VCard = s
	return b
}

func (b *ContactBuilder) Build() model.Message {
	return b.finish(model.ContactPayload{Contact: b.contact})
}

type LocationBuilder struct {
	Common[LocationBuilder]
	location *PointBuilder
}

func NewLocation() *LocationBuilder {
	b := &LocationBuilder{location: NewPoint()}
	b.Common = newCommon(b)
	return b
}

func (b *LocationBuilder) Latitude(v float64) *LocationBuilder {
	b.location.Latitude(v)
	return b
}

func (b *LocationBuilder) Longitude(v float64) *LocationBuilder {
	b.location.Longitude(v)
	return b
}

func (b *LocationBuilder) HorizontalAccuracy(v float64) *LocationBuilder {
	b.location.HorizontalAccuracy(v)
	return b
}

func (b *LocationBuilder) LivePeriod(seconds int) *LocationBuilder {
	b.location.LivePeriod(seconds)
	return b
}

func (b *LocationBuilder) Build() model.Message {
	return b.finish(model.LocationPayload{Location: b.location.Build()})
}

type VenueBuilder struct {
	Common[VenueBuilder]
	location     *model.Location
	title        string
	address      string
	foursquareID string
}

func NewVenue() *VenueBuilder {
	b := &VenueBuilder{title: DefaultVenueTitle, address: DefaultVenueAddress}
	b.Common = newCommon(b)
	return b
}

func (b *VenueBuilder) Location(l model.Location) *VenueBuilder {
	b.location = &l
	return b
}

func (b *VenueBuilder) Title(s string) *VenueBuilder {
	b.title = s
	return b
}

func (b *VenueBuilder) Address(s string) *VenueBuilder {
	b.address = s
	return b
}

func (b *VenueBuilder) FoursquareID(s string) *VenueBuilder {
	b.foursquareID = s
	return b
}

func (b *VenueBuilder) Build() model.Message {
	loc := b.location
	if loc == nil {
		l := NewPoint().Build()
		loc = &l
	}
	return b.finish(model.VenuePayload{Venue: model.Venue{
		Location:     *loc,
		Title:        b.title,
		Address:      b.address,
		FoursquareID: b.foursquareID,
	}})
}

type PollBuilder struct {
	Common[PollBuilder]
	poll model.Poll
}

func NewPoll() *PollBuilder {
	b := &PollBuilder{poll: model.Poll{
		ID:                    DefaultPollID,
		Question:              DefaultPollQuestion,
		TotalVoterCount:       DefaultPollTotalVoterCount,
		IsClosed:              DefaultPollIsClosed,
		IsAnonymous:           DefaultPollIsAnonymous,
		Type:                  model.PollTypeRegular,
		AllowsMultipleAnswers: DefaultPollAllowsMultipleAnswers,
	}}
	b.Common = newCommon(b)
	return b
}

func (b *PollBuilder) PollID(id string) *PollBuilder {
	b.poll.ID = id
	return b
}

func (b *PollBuilder) Question(s string) *PollBuilder {
	b.poll.Question = s
	return b
}

func (b *PollBuilder) Options(opts ...model.PollOption) *PollBuilder {
	b.poll.Options = opts
	return b
}

func (b *PollBuilder) TotalVoterCount(n int) *PollBuilder {
	b.poll.TotalVoterCount = n
	return b
}

func (b *PollBuilder) IsClosed(v bool) *PollBuilder {
	b.poll.IsClosed = v
	return b
}

func (b *PollBuilder) IsAnonymous(v bool) *PollBuilder {
	b.poll.IsAnonymous = v
	return b
}

func (b *PollBuilder) Type(t model.PollType) *PollBuilder {
	b.poll.Type = t
	return b
}

func (b *PollBuilder) AllowsMultipleAnswers(v bool) *PollBuilder {
	b.poll.AllowsMultipleAnswers = v
	return b
}

func (b *PollBuilder) CorrectOptionID(id int) *PollBuilder {
	b.poll.CorrectOptionID = &id
	return b
}

func (b *PollBuilder) Explanation(s string) *PollBuilder {
	b.poll.Explanation = s
	return b
}

func (b *PollBuilder) Build() model.Message {
	poll := b.poll
	if poll.Options == nil {
		poll.Options = []model.PollOption{}
	}
	return b.finish(model.PollPayload{Poll: poll})
}

type DiceBuilder struct {
	Common[DiceBuilder]
	dice model.Dice
}

func NewDice() *DiceBuilder {
	b := &DiceBuilder{dice: model.Dice{Emoji: DefaultDiceEmoji, Value: DefaultDiceValue}}
	b.Common = newCommon(b)
	return b
}

func (b *DiceBuilder) Emoji(s string) *DiceBuilder {
	b.dice.Emoji = s
	return b
}

func (b *DiceBuilder) Value(v int) *DiceBuilder {
	b.dice.Value = v
	return b
}

func (b *DiceBuilder) Build() model.Message {
	return b.finish(model.DicePayload{Dice: b.dice})
}

type GameBuilder struct {
	Common[GameBuilder]
	title       string
	description string
	photo       []model.PhotoSize
	text        string
	entities    []model.MessageEntity
}

func NewGame() *GameBuilder {
	b := &GameBuilder{title: DefaultGameTitle, description: DefaultGameDescription}
	b.Common = newCommon(b)
	return b
}

func (b *GameBuilder) Title(s string) *GameBuilder {
	b.title = s
	return b
}

func (b *GameBuilder) Description(s string) *GameBuilder {
	b.description = s
	return b
}

func (b *GameBuilder) Photo(sizes ...model.PhotoSize) *GameBuilder {
	b.photo = sizes
	return b
}

func (b *GameBuilder) Text(s string, entities ...model.MessageEntity) *GameBuilder {
	b.text = s
	b.entities = entities
	return b
}

func (b *GameBuilder) Build() model.Message {
	photo := b.photo
	if photo == nil {
		photo = []model.PhotoSize{NewPhotoSize().Build()}
	}
	return b.finish(model.GamePayload{Game: model.Game{
		Title:        b.title,
		Description:  b.description,
		Photo:        photo,
		Text:         b.text,
		TextEntities: b.entities,
	}})
}

// MigrationToChatBuilder builds the service message left in a group that
// was upgraded to a supergroup.
type MigrationToChatBuilder struct {
	Common[MigrationToChatBuilder]
	chatID int64
}

func NewMigrationToChat() *MigrationToChatBuilder {
	b := &MigrationToChatBuilder{chatID: DefaultMigrateToChatID}
	b.Common = newCommon(b)
	return b
}

func (b *MigrationToChatBuilder) MigrateToChatID(id int64) *MigrationToChatBuilder {
	b.chatID = id
	return b
}

func (b *MigrationToChatBuilder) Build() model.Message {
	return b.finish(model.MigrateToChatPayload{ChatID: b.chatID})
}

// MigrationFromChatBuilder builds the first service message of a
// supergroup created from a group.
type MigrationFromChatBuilder struct {
	Common[MigrationFromChatBuilder]
	chatID int64
}

func NewMigrationFromChat() *MigrationFromChatBuilder {
	b := &MigrationFromChatBuilder{chatID: DefaultMigrateFromChatID}
	b.Common = newCommon(b)
	return b
}

func (b *MigrationFromChatBuilder) MigrateFromChatID(id int64) *MigrationFromChatBuilder {
	b.chatID = id
	return b
}

func (b *MigrationFromChatBuilder) Build() model.Message {
	return b.finish(model.MigrateFromChatPayload{ChatID: b.chatID})
}
