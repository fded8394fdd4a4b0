// Package upstream describes the boundary with the real-time room service:
// the raw event shapes it sends and the client the bot drives.
// Field names mirror the wire, they are intentionally terse.
package upstream

import "encoding/json"

type Kind string

const (
	KindAdvance      Kind = "advance"
	KindChat         Kind = "chat"
	KindChatDelete   Kind = "chatDelete"
	KindDJListUpdate Kind = "djListUpdate"
	KindGrab         Kind = "grab"
	KindModBan       Kind = "modBan"
	KindModMute      Kind = "modMute"
	KindModRemoveDJ  Kind = "modRemoveDJ"
	KindModSkip      Kind = "modSkip"
	KindUserJoin     Kind = "userJoin"
	KindUserLeave    Kind = "userLeave"
	KindUserUpdate   Kind = "userUpdate"
	KindVote         Kind = "vote"
)

// DateLayout is the upstream timestamp format, always UTC without a zone suffix.
const DateLayout = "2006-01-02 15:04:05.000000"

// Event is one raw occurrence as delivered by the client.
// Payload is an object for most kinds but a bare scalar for some (grab).
type Event struct {
	Kind    Kind
	Payload json.RawMessage
}

type User struct {
	ID       *int   `json:"id"`
	Username string `json:"username"`
	AvatarID string `json:"avatarID"`
	Joined   string `json:"joined"`
	Level    int    `json:"level"`
	Role     *int   `json:"role"`
	// Only set in roster snapshots.
	Grab bool `json:"grab,omitempty"`
	Vote int  `json:"vote,omitempty"`
}

type Media struct {
	ID       int    `json:"id"`
	CID      string `json:"cid"`
	Author   string `json:"author"`
	Title    string `json:"title"`
	Duration int    `json:"duration"`
	Format   int    `json:"format"`
}

type Score struct {
	Positive  int `json:"positive"`
	Negative  int `json:"negative"`
	Grabs     int `json:"grabs"`
	Listeners int `json:"listeners"`
	Skipped   int `json:"skipped"`
}

type LastPlay struct {
	DJ    *User  `json:"dj"`
	Media *Media `json:"media"`
	Score *Score `json:"score"`
}

type Advance struct {
	C *User     `json:"c"`
	D []User    `json:"d"`
	H string    `json:"h"`
	M *Media    `json:"m"`
	T string    `json:"t"`
	L *LastPlay `json:"l"`
}

type Chat struct {
	CID     string `json:"cid"`
	UID     *int   `json:"uid"`
	UN      string `json:"un"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type ChatDelete struct {
	C  string `json:"c"`
	MI int    `json:"mi"`
}

type ModBan struct {
	M string `json:"m"`
	T string `json:"t"`
	D string `json:"d"`
	R int    `json:"r"`
}

type ModMute struct {
	M string `json:"m"`
	I int    `json:"i"`
	T string `json:"t"`
	D string `json:"d"`
	R int    `json:"r"`
}

type ModRemoveDJ struct {
	M string `json:"m"`
	T string `json:"t"`
}

type ModSkip struct {
	M string `json:"m"`
}

type UserUpdate struct {
	I        *int    `json:"i"`
	Username *string `json:"username"`
	AvatarID *string `json:"avatarID"`
	Level    *int    `json:"level"`
	Role     *int    `json:"role"`
}

type Vote struct {
	I *int `json:"i"`
	V int  `json:"v"`
}

type HistoryEntry struct {
	ID        string `json:"id"`
	Media     *Media `json:"media"`
	User      *User  `json:"user"`
	Timestamp string `json:"timestamp"`
	Score     *Score `json:"score"`
}
