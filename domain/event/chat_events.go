package event

import (
	"room-bot/domain"
	"time"
)

type Chat struct {
	ChatID     domain.ChatID
	UserID     domain.UserID
	Username   string
	Message    string
	Type       domain.ChatType
	ReceivedAt time.Time
}

// Command is derived from a chat line of type COMMAND.
// Trigger is the first token without the prefix, Args the remaining tokens.
type Command struct {
	ChatID     domain.ChatID
	UserID     domain.UserID
	Username   string
	Message    string
	Trigger    string
	Args       []string
	ReceivedAt time.Time
}

type ChatDelete struct {
	ChatID      domain.ChatID
	ModeratorID domain.UserID
}

type ModBan struct {
	Moderator string
	Username  string
	Duration  domain.BanDuration
	Reason    domain.BanReason
}

type ModMute struct {
	Moderator string
	UserID    domain.UserID
	Username  string
	Duration  domain.MuteDuration
	Reason    domain.MuteReason
}

// ModRemoveDJ only names the users, upstream does not send IDs for it.
type ModRemoveDJ struct {
	Moderator string
	Username  string
}

type ModSkip struct {
	Moderator string
}

func (Chat) Kind() Kind        { return KindChat }
func (Command) Kind() Kind     { return KindCommand }
func (ChatDelete) Kind() Kind  { return KindChatDelete }
func (ModBan) Kind() Kind      { return KindModBan }
func (ModMute) Kind() Kind     { return KindModMute }
func (ModRemoveDJ) Kind() Kind { return KindModRemoveDJ }
func (ModSkip) Kind() Kind     { return KindModSkip }
