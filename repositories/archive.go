//go:generate go run go.uber.org/mock/mockgen -source=archive.go -destination=../mocks/mock_archive.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type IChatRepository interface {
	StoreChat(chat DiskChat) error
	MarkDeleted(room, chatID string, deletion Deletion) error
	GetChats(room string, cursor *string) ([]DiskChat, *string, error)
}

type IPlayRepository interface {
	StorePlay(play DiskPlay) error
	GetPlays(room string, cursor *string) ([]DiskPlay, *string, error)
}

type IChatIndex interface {
	Index(chat DiskChat) error
	Remove(room, chatID string) error
	Search(ctx context.Context, room, text string, limit int) ([]SearchHit, error)
}

// Keys are "{kind}:{room}:{timestamp_padded}:{uuid}".
// The 19 digit zero padding keeps lexicographical order chronological and
// the uuid separates two records written at the same nanosecond.
func recordKey(kind, room string, unixNano int64, id fmt.Stringer) string {
	return fmt.Sprintf("%s:%s:%019d:%s", kind, room, unixNano, id)
}

func roomPrefix(kind, room string) string {
	return fmt.Sprintf("%s:%s:", kind, room)
}

func put(txn *badger.Txn, key string, v any) error {
	bytes, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set([]byte(key), bytes)
}

// page walks a room prefix from newest to oldest, starting right after cursor.
// It returns the records and the cursor of the last one read.
func page[T any](db *badger.DB, log *slog.Logger, prefixStr string, cursor *string, limit *int) ([]T, *string, error) {
	var records []T
	var lastKey string
	err := db.View(func(txn *badger.Txn) error {
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Newest possible position, then walk back in time
			seekKey = append([]byte(prefixStr), []byte("9999999999999999999")...)
		default:
			seekKey = append([]byte(prefixStr), []byte(*cursor)...)
		}
		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if limit != nil && len(records) == *limit {
				log.Debug(fmt.Sprintf("Maximum of %d records reached", *limit))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])
			var record T
			if err := item.Value(func(value []byte) error {
				return json.Unmarshal(value, &record)
			}); err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return records, &lastKey, nil
}
