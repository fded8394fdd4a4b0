package wsclient

import (
	"encoding/json"
	"room-bot/upstream"
)

const (
	frameEvent  = "event"
	frameRoom   = "room"
	frameReply  = "reply"
	frameAction = "action"
)

// Inbound frame, one of event, room snapshot or reply to an action.
type frame struct {
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	Kind    upstream.Kind   `json:"kind,omitempty"`
	OK      bool            `json:"ok,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type request struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Action string `json:"action"`
	Params any    `json:"params,omitempty"`
}

// Snapshot is the room as last pushed by the server.
type Snapshot struct {
	Media    *upstream.Media `json:"media"`
	DJ       *upstream.User  `json:"dj"`
	Users    []upstream.User `json:"users"`
	WaitList []upstream.User `json:"waitList"`
	Elapsed  int             `json:"elapsed"`
}

type banParams struct {
	UserID   int    `json:"userID"`
	Reason   int    `json:"reason"`
	Duration string `json:"duration"`
}
