package dialogue

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type state struct {
	Step string `json:"step"`
	Name string `json:"name,omitempty"`
}

func testStorage(t *testing.T, s Storage[state]) {
	ctx := context.Background()

	_, err := s.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNoState)

	got, err := GetOrDefault(ctx, s, 1, state{Step: "start"})
	require.NoError(t, err)
	assert.Equal(t, "start", got.Step)

	require.NoError(t, s.Update(ctx, 1, state{Step: "ask_name"}))
	require.NoError(t, s.Update(ctx, 2, state{Step: "done", Name: "bob"}))

	got, err = s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, state{Step: "ask_name"}, got)

	require.NoError(t, s.Remove(ctx, 1))
	assert.ErrorIs(t, s.Remove(ctx, 1), ErrNoState)

	got, err = s.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Name)
}

func TestMemoryStorage(t *testing.T) {
	testStorage(t, NewMemoryStorage[state]())
}

func TestBoltStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dialogues.db")
	s, err := OpenBolt[state](path)
	require.NoError(t, err)
	testStorage(t, s)
	require.NoError(t, s.Close())

	reopened, err := OpenBolt[state](path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, state{Step: "done", Name: "bob"}, got)
}
