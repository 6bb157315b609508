// Package dialogue keeps per-chat conversation state for bot logic driven
// through the mock server.
package dialogue

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
)

// ErrNoState is returned by Get when a chat has no stored state.
var ErrNoState = errors.New("no dialogue state")

// Storage stores one state value per chat.
type Storage[S any] interface {
	Get(ctx context.Context, chatID int64) (S, error)
	Update(ctx context.Context, chatID int64, state S) error
	Remove(ctx context.Context, chatID int64) error
}

type MemoryStorage[S any] struct {
	mu     sync.Mutex
	states map[int64]S
}

func NewMemoryStorage[S any]() *MemoryStorage[S] {
	return &MemoryStorage[S]{states: make(map[int64]S)}
}

func (m *MemoryStorage[S]) Get(_ context.Context, chatID int64) (S, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.states[chatID]
	if !ok {
		return s, ErrNoState
	}
	return s, nil
}

func (m *MemoryStorage[S]) Update(_ context.Context, chatID int64, state S) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[chatID] = state
	return nil
}

func (m *MemoryStorage[S]) Remove(_ context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.states[chatID]; !ok {
		return ErrNoState
	}
	delete(m.states, chatID)
	return nil
}

// GetOrDefault returns the stored state or def when there is none.
func GetOrDefault[S any](ctx context.Context, s Storage[S], chatID int64, def S) (S, error) {
	state, err := s.Get(ctx, chatID)
	if errors.Is(err, ErrNoState) {
		return def, nil
	}
	return state, err
}
