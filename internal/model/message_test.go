package model

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageWireShape(t *testing.T) {
	msg := Message{
		ID:   3,
		Date: 1700000000,
		Chat: Chat{ID: 42, Type: ChatTypePrivate},
		Payload: PhotoPayload{
			Photo:   []PhotoSize{{FileMeta: FileMeta{FileID: "f", FileUniqueID: "u"}, Width: 1, Height: 1}},
			Caption: "test",
		},
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.EqualValues(t, 3, raw["message_id"])
	assert.Equal(t, "test", raw["caption"])
	assert.Contains(t, raw, "photo")
	assert.NotContains(t, raw, "Payload")
	assert.NotContains(t, raw, "edit_date")

	var back Message
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, msg, back)
}

func TestUnmarshalPicksPayloadKind(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind Kind
	}{
		{"animation wins over document", `{"message_id":1,"date":0,"chat":{"id":1,"type":"private"},"animation":{"file_id":"a","file_unique_id":"b","width":1,"height":1,"duration":1},"document":{"file_id":"a","file_unique_id":"b"}}`, KindAnimation},
		{"venue wins over location", `{"message_id":1,"date":0,"chat":{"id":1,"type":"private"},"venue":{"location":{"latitude":1,"longitude":2},"title":"t","address":"a"},"location":{"latitude":1,"longitude":2}}`, KindVenue},
		{"text", `{"message_id":1,"date":0,"chat":{"id":1,"type":"private"},"text":"hi"}`, KindText},
		{"dice", `{"message_id":1,"date":0,"chat":{"id":1,"type":"private"},"dice":{"emoji":"🎲","value":3}}`, KindDice},
		{"migration", `{"message_id":1,"date":0,"chat":{"id":1,"type":"group"},"migrate_to_chat_id":-100}`, KindMigrateToChat},
		{"no payload", `{"message_id":1,"date":0,"chat":{"id":1,"type":"private"}}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Message
			require.NoError(t, json.Unmarshal([]byte(tt.body), &m))
			assert.Equal(t, tt.kind, m.Kind())
		})
	}
}

func TestReplyMarkupUnion(t *testing.T) {
	var inline ReplyMarkup
	require.NoError(t, json.Unmarshal([]byte(`{"inline_keyboard":[[{"text":"a","callback_data":"b"}]]}`), &inline))
	require.NotNil(t, inline.InlineKeyboard())
	assert.Equal(t, "b", inline.InlineKeyboard().InlineKeyboard[0][0].CallbackData)

	var remove ReplyMarkup
	require.NoError(t, json.Unmarshal([]byte(`{"remove_keyboard":true}`), &remove))
	assert.Nil(t, remove.InlineKeyboard())
	require.NotNil(t, remove.Remove)

	var nilMarkup *ReplyMarkup
	assert.Nil(t, nilMarkup.InlineKeyboard())

	var unknown ReplyMarkup
	assert.Error(t, json.Unmarshal([]byte(`{"foo":1}`), &unknown))

	data, err := json.Marshal(InlineMarkup(NewInlineKeyboard([]InlineKeyboardButton{CallbackButton("x", "y")})))
	require.NoError(t, err)
	assert.JSONEq(t, `{"inline_keyboard":[[{"text":"x","callback_data":"y"}]]}`, string(data))
}

func TestChatID(t *testing.T) {
	var req DeleteMessageRequest
	require.NoError(t, json.Unmarshal([]byte(`{"chat_id":"@news","message_id":2}`), &req))
	assert.Equal(t, ChatID{Username: "news"}, req.ChatID)

	require.NoError(t, json.Unmarshal([]byte(`{"chat_id":-100123,"message_id":2}`), &req))
	assert.Equal(t, ChatIDOf(-100123), req.ChatID)

	require.NoError(t, json.Unmarshal([]byte(`{"chat_id":"77","message_id":2}`), &req))
	assert.Equal(t, ChatIDOf(77), req.ChatID)

	assert.Equal(t, "@news", ParseChatID("@news").String())
	data, err := json.Marshal(ParseChatID("@news"))
	require.NoError(t, err)
	assert.Equal(t, `"@news"`, string(data))
}

func TestSendOptionsReplyTo(t *testing.T) {
	assert.Equal(t, 3, SendOptions{ReplyToMessageID: 3}.ReplyTo())
	assert.Equal(t, 4, SendOptions{ReplyToMessageID: 3, ReplyParameters: &ReplyParameters{MessageID: 4}}.ReplyTo())
	assert.Zero(t, SendOptions{}.ReplyTo())
}

func TestCaptionHelpers(t *testing.T) {
	p, ok := WithCaption(DocumentPayload{Caption: "a"}, "b", nil)
	require.True(t, ok)
	caption, _, ok := Caption(p)
	require.True(t, ok)
	assert.Equal(t, "b", caption)

	_, ok = WithCaption(TextPayload{Text: "x"}, "b", nil)
	assert.False(t, ok)
}
