package repository

import (
	"github.com/go-faster/errors"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

// ErrNotFound is returned when a message id is not in the store.
var ErrNotFound = errors.New("message not found")

// MessageRepository stores the messages the mock server knows about.
type MessageRepository interface {
	// Add assigns the next id to msg, stores it and returns the stored copy.
	Add(msg model.Message) model.Message
	Get(id int) (model.Message, error)
	// Update replaces a stored message with the same id.
	Update(msg model.Message) error
	Delete(id int) (model.Message, error)
	// MaxID returns the highest id ever assigned, or 0.
	MaxID() int
	// List returns the stored messages of a chat ordered by id.
	List(chatID int64) []model.Message
	Len() int
}
