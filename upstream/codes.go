package upstream

// Chat types as classified upstream.
const (
	ChatTypeMessage = "message"
	ChatTypeEmote   = "emote"
	ChatTypeMention = "mention"
	ChatTypeCommand = "command"
)

// Ban duration codes.
const (
	BanHour    = "h"
	BanDay     = "d"
	BanForever = "f"
)

// Mute duration codes.
const (
	MuteShort  = "s"
	MuteMedium = "m"
	MuteLong   = "l"
)

// Vote directions.
const (
	VoteWoot = 1
	VoteMeh  = -1
)
