package responses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/fixture"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

func TestRecordsOrder(t *testing.T) {
	var r Records[int]
	_, ok := r.Last()
	assert.False(t, ok)

	r.Append(1)
	r.Append(2)
	r.Append(3)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 1, r.At(0))
	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, 3, last)
	assert.Equal(t, []int{1, 2, 3}, r.All())
}

func TestCloneIsSnapshot(t *testing.T) {
	var l Log
	l.SentMessages.Append(fixture.NewText().Build())

	snap := l.Clone()
	l.SentMessages.Append(fixture.NewText().ID(2).Build())

	assert.Equal(t, 1, snap.SentMessages.Len())
	assert.Equal(t, 2, l.SentMessages.Len())
}

func TestMediaLists(t *testing.T) {
	var l Log
	l.Media(model.KindVoice).Append(Record[model.SendMediaRequest]{Message: fixture.NewVoice().Build()})

	assert.Equal(t, 1, l.SentVoices.Len())
	assert.Nil(t, l.Media(model.KindText))
}

func TestEntries(t *testing.T) {
	var l Log
	l.SentMessages.Append(fixture.NewText().Text("hello").Build())
	l.SentMessages.Append(fixture.NewPhoto().ID(2).Caption("cap").Build())
	l.DeletedMessages.Append(DeletedMessage{Message: fixture.NewText().Build()})

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{
		Action:    "send",
		MessageID: 1,
		ChatID:    fixture.DefaultUserID,
		Kind:      model.KindText,
		Date:      entries[0].Date,
		Text:      "hello",
	}, entries[0])
	assert.Equal(t, "cap", entries[1].Text)
	assert.Equal(t, "delete", entries[2].Action)
}
