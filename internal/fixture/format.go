package fixture

import (
	"strconv"

	"github.com/gotd/td/telegram/message/entity"
	"github.com/gotd/td/tg"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

// Format renders formatted text with gotd's entity builder and returns the
// text with Bot API entities. Offsets are in UTF-16 code units.
//
//	text, entities := fixture.Format(func(b *entity.Builder) {
//		b.Bold("bold").Plain(" text")
//	})
func Format(format func(*entity.Builder)) (string, []model.MessageEntity) {
	var b entity.Builder
	format(&b)
	text, entities := b.Complete()
	return text, EntitiesFromTG(entities)
}

// Bold returns a bold entity over [offset, offset+length).
func Bold(offset, length int) model.MessageEntity {
	return model.MessageEntity{Type: "bold", Offset: offset, Length: length}
}

// EntitiesFromTG converts MTProto entities into Bot API entities. Entity
// kinds without a Bot API counterpart are skipped.
func EntitiesFromTG(entities []tg.MessageEntityClass) []model.MessageEntity {
	out := make([]model.MessageEntity, 0, len(entities))
	for _, e := range entities {
		me := model.MessageEntity{Offset: e.GetOffset(), Length: e.GetLength()}
		switch v := e.(type) {
		case *tg.MessageEntityBold:
			me.Type = "bold"
		case *tg.MessageEntityItalic:
			me.Type = "italic"
		case *tg.MessageEntityUnderline:
			me.Type = "underline"
		case *tg.MessageEntityStrike:
			me.Type = "strikethrough"
		case *tg.MessageEntitySpoiler:
			me.Type = "spoiler"
		case *tg.MessageEntityCode:
			me.Type = "code"
		case *tg.MessageEntityPre:
			me.Type = "pre"
			me.Language = v.Language
		case *tg.MessageEntityTextURL:
			me.Type = "text_link"
			me.URL = v.URL
		case *tg.MessageEntityURL:
			me.Type = "url"
		case *tg.MessageEntityMention:
			me.Type = "mention"
		case *tg.MessageEntityMentionName:
			me.Type = "text_mention"
			me.User = &model.User{ID: v.UserID}
		case *tg.MessageEntityHashtag:
			me.Type = "hashtag"
		case *tg.MessageEntityCashtag:
			me.Type = "cashtag"
		case *tg.MessageEntityBotCommand:
			me.Type = "bot_command"
		case *tg.MessageEntityEmail:
			me.Type = "email"
		case *tg.MessageEntityPhone:
			me.Type = "phone_number"
		case *tg.MessageEntityCustomEmoji:
			me.Type = "custom_emoji"
			me.CustomEmojiID = strconv.FormatInt(v.DocumentID, 10)
		default:
			continue
		}
		out = append(out, me)
	}
	return out
}
