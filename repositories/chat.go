package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"room-bot/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type DiskChat struct {
	ID        uuid.UUID `json:"id"`
	Room      string    `json:"room"`
	ChatID    string    `json:"chat_id"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	At        time.Time `json:"at"`
	Deleted   bool      `json:"deleted"`
	DeletedBy int       `json:"deleted_by,omitempty"`
	DeletedAt time.Time `json:"deleted_at,omitempty"`
}

type Deletion struct {
	By int
	At time.Time
}

type ChatRepository struct {
	db        *badger.DB
	log       *slog.Logger
	limitChat *int
}

func NewChatRepository(db *badger.DB, log *slog.Logger, limitChat *int) ChatRepository {
	return ChatRepository{db: db, log: log, limitChat: limitChat}
}

func chatIndexKey(room, chatID string) []byte {
	return []byte(fmt.Sprintf("chatidx:%s:%s", room, chatID))
}

// StoreChat persists a chat line and indexes its upstream id, so that a later
// deletion can find it.
func (r ChatRepository) StoreChat(chat DiskChat) error {
	key := recordKey("chat", chat.Room, chat.At.UnixNano(), chat.ID)
	return r.db.Update(func(txn *badger.Txn) error {
		if err := put(txn, key, chat); err != nil {
			return err
		}
		return txn.Set(chatIndexKey(chat.Room, chat.ChatID), []byte(key))
	})
}

// MarkDeleted soft deletes an archived chat line. Deleting twice keeps the
// first deletion.
func (r ChatRepository) MarkDeleted(room, chatID string, deletion Deletion) error {
	return r.db.Update(func(txn *badger.Txn) error {
		idx, err := txn.Get(chatIndexKey(room, chatID))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s", errors.ErrChatNotArchived, chatID)
		}
		if err != nil {
			return err
		}
		key, err := idx.ValueCopy(nil)
		if err != nil {
			return err
		}
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		var chat DiskChat
		if err = item.Value(func(val []byte) error { return json.Unmarshal(val, &chat) }); err != nil {
			return err
		}
		if chat.Deleted {
			return nil
		}
		chat.Deleted = true
		chat.DeletedBy = deletion.By
		chat.DeletedAt = deletion.At
		return put(txn, string(key), chat)
	})
}

// GetChats returns the archived chat of a room, newest first.
func (r ChatRepository) GetChats(room string, cursor *string) ([]DiskChat, *string, error) {
	return page[DiskChat](r.db, r.log, roomPrefix("chat", room), cursor, r.limitChat)
}
