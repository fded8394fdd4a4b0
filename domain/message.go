// Package domain contains the core concepts tracked for a room:
// users and their roles, chat entries, plays and their votes.
package domain

import "time"

type ChatID string

type ChatType int

const (
	ChatMessage ChatType = iota
	ChatEmote
	ChatCommand
)

func (t ChatType) String() string {
	switch t {
	case ChatEmote:
		return "EMOTE"
	case ChatCommand:
		return "COMMAND"
	default:
		return "MESSAGE"
	}
}

// ChatEntry is one chat line as seen by the bot.
// Entries are never removed from history, a moderator deletion only flags them.
type ChatEntry struct {
	ChatID          ChatID
	UserID          UserID
	Username        string
	Message         string
	Type            ChatType
	Timestamp       time.Time // receipt time, upstream does not provide one
	IsDeleted       bool
	DeletedByUserID UserID
	DeletionTime    time.Time
}
