package fixture

import (
	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

type CallbackQueryBuilder struct {
	query   model.CallbackQuery
	from    *model.User
	message *model.Message
}

func NewCallbackQuery() *CallbackQueryBuilder {
	return &CallbackQueryBuilder{query: model.CallbackQuery{
		ID:           DefaultCallbackQueryID,
		ChatInstance: DefaultChatInstance,
		Data:         DefaultCallbackData,
	}}
}

func (b *CallbackQueryBuilder) ID(id string) *CallbackQueryBuilder {
	b.query.ID = id
	return b
}

func (b *CallbackQueryBuilder) From(u model.User) *CallbackQueryBuilder {
	b.from = &u
	return b
}

// Message sets the message whose inline keyboard was pressed.
func (b *CallbackQueryBuilder) Message(m model.Message) *CallbackQueryBuilder {
	b.message = &m
	return b
}

func (b *CallbackQueryBuilder) InlineMessageID(id string) *CallbackQueryBuilder {
	b.query.InlineMessageID = id
	return b
}

func (b *CallbackQueryBuilder) ChatInstance(s string) *CallbackQueryBuilder {
	b.query.ChatInstance = s
	return b
}

func (b *CallbackQueryBuilder) Data(s string) *CallbackQueryBuilder {
	b.query.Data = s
	return b
}

func (b *CallbackQueryBuilder) GameShortName(s string) *CallbackQueryBuilder {
	b.query.GameShortName = s
	return b
}

func (b *CallbackQueryBuilder) Build() model.CallbackQuery {
	q := b.query
	if b.from != nil {
		q.From = *b.from
	} else {
		q.From = NewUser().Build()
	}
	q.Message = b.message
	return q
}

// MessageUpdate wraps a message into an update. The harness assigns the
// update id on dispatch.
func MessageUpdate(m model.Message) model.Update {
	return model.Update{Message: &m}
}

func EditedMessageUpdate(m model.Message) model.Update {
	return model.Update{EditedMessage: &m}
}

func ChannelPostUpdate(m model.Message) model.Update {
	return model.Update{ChannelPost: &m}
}

func CallbackQueryUpdate(q model.CallbackQuery) model.Update {
	return model.Update{CallbackQuery: &q}
}
