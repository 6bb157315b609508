package repository

import (
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/fixture"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

func TestAddAssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryRepository()
	assert.Equal(t, 0, repo.MaxID())

	for want := 1; want <= 5; want++ {
		msg := repo.Add(fixture.NewText().ID(99).Build())
		assert.Equal(t, want, msg.ID)
	}
	assert.Equal(t, 5, repo.MaxID())
	assert.Equal(t, 5, repo.Len())
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Add(fixture.NewText().Build())
	last := repo.Add(fixture.NewText().Build())

	_, err := repo.Delete(last.ID)
	require.NoError(t, err)

	_, err = repo.Get(last.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	next := repo.Add(fixture.NewText().Build())
	assert.Equal(t, 3, next.ID)
}

func TestMissingMessage(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Get(1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Delete(1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Update(fixture.NewText().Build()), ErrNotFound)
}

func TestUpdateReplacesStoredCopy(t *testing.T) {
	repo := NewMemoryRepository()
	msg := repo.Add(fixture.NewText().Text("before").Build())

	msg.Payload = model.TextPayload{Text: "after"}
	require.NoError(t, repo.Update(msg))

	got, err := repo.Get(msg.ID)
	require.NoError(t, err)
	text, _ := got.Text()
	assert.Equal(t, "after", text)
}

func TestListByChat(t *testing.T) {
	repo := NewMemoryRepository()
	group := fixture.NewGroup().Build()
	repo.Add(fixture.NewText().Chat(group).Build())
	repo.Add(fixture.NewText().Build())
	repo.Add(fixture.NewText().Chat(group).Build())

	got := repo.List(group.ID)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestConcurrentAdd(t *testing.T) {
	repo := NewMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Add(fixture.NewText().Build())
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, repo.MaxID())
	for id := 1; id <= 50; id++ {
		_, err := repo.Get(id)
		assert.NoError(t, err)
	}
}
