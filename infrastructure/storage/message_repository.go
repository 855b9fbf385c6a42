//go:generate go run go.uber.org/mock/mockgen -source=message_repository.go -destination=../../mocks/mock_message_repository.go -package=mocks
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IMessageRepository interface {
	Store(message StoredMessage) error
	Recent(team string, cursor *string) ([]StoredMessage, *string, error)
}

// StoredMessage is the durable form of an ingested chat message. It is the
// source of truth behind the full-text index.
type StoredMessage struct {
	ID       uuid.UUID `json:"id"`
	Team     string    `json:"team"`
	Channel  string    `json:"channel"`
	Author   string    `json:"author"`
	Content  string    `json:"content"`
	Language string    `json:"language,omitempty"`
	At       time.Time `json:"at"`
}

type MessageRepository struct {
	db    *badger.DB
	log   *slog.Logger
	limit *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limit *int) MessageRepository {
	return MessageRepository{db: db, log: log, limit: limit}
}

// Store persists a message in BadgerDB.
// The key is formatted as "msg:{team}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using the UUID as a collision disconnector when
//     two messages arrive at the same nanosecond.
func (m MessageRepository) Store(message StoredMessage) error {
	key := fmt.Sprintf("msg:%s:%019d:%s",
		message.Team,
		message.At.UnixNano(),
		message.ID,
	)
	bytes, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// Recent retrieves messages for a team, newest first, using a reverse
// prefix scan. The padded timestamp in the key gives the ordering for
// free. Collection stops at the configured limit; the returned cursor
// resumes the scan on the next call.
func (m MessageRepository) Recent(team string, cursor *string) ([]StoredMessage, *string, error) {
	var rawMessages [][]byte
	var lastKey string

	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("msg:%s:", team)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Seek past the newest possible key, then walk backwards.
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limit != nil && len(rawMessages) == *m.limit {
				m.log.Debug(fmt.Sprintf("Maximum of %d messages reached", *m.limit))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[prefixLen:])
			err := item.Value(func(value []byte) error {
				rawMessages = append(rawMessages, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	messages := make([]StoredMessage, 0, len(rawMessages))
	for _, raw := range rawMessages {
		var message StoredMessage
		if err = json.Unmarshal(raw, &message); err != nil {
			return nil, nil, err
		}
		messages = append(messages, message)
	}
	if len(messages) == 0 {
		return nil, nil, nil
	}
	return messages, &lastKey, nil
}
