package repository

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-faster/errors"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

type MemoryRepository struct {
	mu       sync.RWMutex
	messages map[int]model.Message
	maxID    int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{messages: make(map[int]model.Message)}
}

func (r *MemoryRepository) Add(msg model.Message) model.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.maxID + 1
	if _, ok := r.messages[id]; ok {
		panic(fmt.Sprintf("message id %d allocated twice", id))
	}
	msg.ID = id
	r.maxID = id
	r.messages[id] = msg.Clone()
	return msg
}

func (r *MemoryRepository) Get(id int) (model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msg, ok := r.messages[id]
	if !ok {
		return model.Message{}, errors.Wrapf(ErrNotFound, "get %d", id)
	}
	return msg.Clone(), nil
}

func (r *MemoryRepository) Update(msg model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.messages[msg.ID]; !ok {
		return errors.Wrapf(ErrNotFound, "update %d", msg.ID)
	}
	r.messages[msg.ID] = msg.Clone()
	return nil
}

func (r *MemoryRepository) Delete(id int) (model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg, ok := r.messages[id]
	if !ok {
		return model.Message{}, errors.Wrapf(ErrNotFound, "delete %d", id)
	}
	delete(r.messages, id)
	return msg, nil
}

func (r *MemoryRepository) MaxID() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.maxID
}

func (r *MemoryRepository) List(chatID int64) []model.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Message
	for _, msg := range r.messages {
		if msg.Chat.ID == chatID {
			out = append(out, msg.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages)
}
