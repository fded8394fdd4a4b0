// Package event holds the internal representation of everything that happens
// in a room. Shapes here are stable, whatever upstream sends is translated
// into them before anyone else sees it.
package event

import "github.com/samber/lo"

type Kind string

const (
	KindAdvance      Kind = "ADVANCE"
	KindChat         Kind = "CHAT"
	KindCommand      Kind = "COMMAND"
	KindChatDelete   Kind = "CHAT_DELETE"
	KindDJListUpdate Kind = "DJ_LIST_UPDATE"
	KindGrab         Kind = "GRAB"
	KindModBan       Kind = "MOD_BAN"
	KindModMute      Kind = "MOD_MUTE"
	KindModRemoveDJ  Kind = "MOD_REMOVE_DJ"
	KindModSkip      Kind = "MOD_SKIP"
	KindUserJoin     Kind = "USER_JOIN"
	KindUserLeave    Kind = "USER_LEAVE"
	KindUserUpdate   Kind = "USER_UPDATE"
	KindVote         Kind = "VOTE"
)

var kinds = []Kind{
	KindAdvance, KindChat, KindCommand, KindChatDelete, KindDJListUpdate,
	KindGrab, KindModBan, KindModMute, KindModRemoveDJ, KindModSkip,
	KindUserJoin, KindUserLeave, KindUserUpdate, KindVote,
}

// Kinds lists every kind the dispatcher knows how to deliver.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

func (k Kind) Known() bool {
	return lo.Contains(kinds, k)
}

// Event is implemented by every translated event.
type Event interface {
	Kind() Kind
}
