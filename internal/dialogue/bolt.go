package dialogue

import (
	"context"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/goccy/go-json"
	"go.etcd.io/bbolt"
)

var bucketName = []byte("dialogues")

// BoltStorage keeps states as JSON in a bbolt bucket, so a dialogue
// survives a restart of the bot under test.
type BoltStorage[S any] struct {
	db *bbolt.DB
}

// OpenBolt opens or creates a bbolt file at path.
func OpenBolt[S any](path string) (*BoltStorage[S], error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open bolt storage")
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}
	return &BoltStorage[S]{db: db}, nil
}

func key(chatID int64) []byte {
	return []byte(strconv.FormatInt(chatID, 10))
}

func (b *BoltStorage[S]) Get(ctx context.Context, chatID int64) (S, error) {
	var state S
	if err := ctx.Err(); err != nil {
		return state, err
	}
	err := b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketName).Get(key(chatID))
		if data == nil {
			return ErrNoState
		}
		return json.Unmarshal(data, &state)
	})
	if err != nil && !errors.Is(err, ErrNoState) {
		return state, errors.Wrap(err, "get state")
	}
	return state, err
}

func (b *BoltStorage[S]) Update(ctx context.Context, chatID int64, state S) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "marshal state")
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put(key(chatID), data)
	})
}

func (b *BoltStorage[S]) Remove(ctx context.Context, chatID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket.Get(key(chatID)) == nil {
			return ErrNoState
		}
		return bucket.Delete(key(chatID))
	})
}

func (b *BoltStorage[S]) Close() error {
	return b.db.Close()
}
