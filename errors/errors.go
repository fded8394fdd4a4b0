package errors

import "fmt"

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrListenerPanic    = fmt.Errorf("listener panic")
	ErrInvalidPayload   = fmt.Errorf("invalid payload")
	ErrUnknownKind      = fmt.Errorf("unknown event kind")
	ErrNilListener      = fmt.Errorf("listener is nil")
	ErrInvalidBanReason = fmt.Errorf("invalid ban reason")
	ErrInvalidBanTime   = fmt.Errorf("invalid ban duration")
	ErrInvalidCommand   = fmt.Errorf("invalid command definition")
	ErrNotConnected     = fmt.Errorf("upstream not connected")
	ErrAlreadyStarted   = fmt.Errorf("bot already started")
	ErrInvalidConfig    = fmt.Errorf("invalid configuration")
	ErrChatNotArchived  = fmt.Errorf("chat not archived")
	ErrActionRejected   = fmt.Errorf("action rejected by upstream")
)
