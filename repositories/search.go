package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blugelabs/bluge"
)

const (
	fieldRoom     = "room"
	fieldChatID   = "chat_id"
	fieldUsername = "username"
	fieldMessage  = "message"
)

type SearchHit struct {
	ChatID   string
	Username string
	Message  string
	Score    float64
}

// ChatIndex is a full text index over archived chat lines.
// Documents are keyed "{room}:{chatID}", so indexing the same line twice
// replaces it.
type ChatIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewChatIndex(writer *bluge.Writer, log *slog.Logger) ChatIndex {
	return ChatIndex{writer: writer, log: log}
}

func documentID(room, chatID string) string {
	return fmt.Sprintf("%s:%s", room, chatID)
}

func (i ChatIndex) Index(chat DiskChat) error {
	doc := bluge.NewDocument(documentID(chat.Room, chat.ChatID)).
		AddField(bluge.NewKeywordField(fieldRoom, chat.Room)).
		AddField(bluge.NewKeywordField(fieldChatID, chat.ChatID).StoreValue()).
		AddField(bluge.NewKeywordField(fieldUsername, chat.Username).StoreValue()).
		AddField(bluge.NewTextField(fieldMessage, chat.Message).StoreValue())
	return i.writer.Update(doc.ID(), doc)
}

// Remove drops a deleted chat line from the index.
func (i ChatIndex) Remove(room, chatID string) error {
	doc := bluge.NewDocument(documentID(room, chatID))
	return i.writer.Delete(doc.ID())
}

func (i ChatIndex) Search(ctx context.Context, room, text string, limit int) ([]SearchHit, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return SearchReader(ctx, reader, room, text, limit)
}

// SearchReader runs a room scoped match query, best hits first.
func SearchReader(ctx context.Context, reader *bluge.Reader, room, text string, limit int) ([]SearchHit, error) {
	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(room).SetField(fieldRoom)).
		AddMust(bluge.NewMatchQuery(text).SetField(fieldMessage))
	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var hits []SearchHit
	match, err := matches.Next()
	for err == nil && match != nil {
		hit := SearchHit{Score: match.Score}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case fieldChatID:
				hit.ChatID = string(value)
			case fieldUsername:
				hit.Username = string(value)
			case fieldMessage:
				hit.Message = string(value)
			}
			return true
		})
		if err != nil {
			break
		}
		hits = append(hits, hit)
		match, err = matches.Next()
	}
	return hits, err
}
