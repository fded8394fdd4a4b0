//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks
package upstream

import "context"

// Callback receives the outcome of an outbound action.
type Callback func(ok bool)

type Handler func(evt Event)

type HistoryCallback func(entries []HistoryEntry, err error)

// Client is the real-time connection to the room service.
//
// Every action taking a Callback returns whether the request was queued at
// all. When it was not, the client never invokes the callback.
type Client interface {
	OnEvent(handler Handler)
	Connect(ctx context.Context, room string) error
	Close() error

	SendChat(message string) bool
	Ban(userID int, reason int, duration string, cb Callback) bool
	ForceSkip(cb Callback) bool
	Grab(cb Callback) bool
	JoinWaitList(cb Callback) bool
	LeaveWaitList(cb Callback) bool
	Woot(cb Callback) bool
	Meh(cb Callback) bool

	// Point in time accessors, backed by the client's own room cache.
	Media() *Media
	DJ() *User
	Users() []User
	WaitList() []User
	TimeElapsed() int
	History(cb HistoryCallback)
}
