package fixture

import (
	"github.com/gotd/td/telegram/message/entity"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

type TextBuilder struct {
	Common[TextBuilder]
	text     string
	entities []model.MessageEntity
}

func NewText() *TextBuilder {
	b := &TextBuilder{text: DefaultText}
	b.Common = newCommon(b)
	return b
}

func (b *TextBuilder) Text(s string) *TextBuilder {
	b.text = s
	return b
}

func (b *TextBuilder) Entities(e ...model.MessageEntity) *TextBuilder {
	b.entities = e
	return b
}

// Formatted sets text and entities from an entity builder callback.
func (b *TextBuilder) Formatted(format func(*entity.Builder)) *TextBuilder {
	b.text, b.entities = Format(format)
	return b
}

func (b *TextBuilder) Build() model.Message {
	return b.finish(model.TextPayload{Text: b.text, Entities: b.entities})
}
