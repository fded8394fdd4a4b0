package runtime

import (
	"fmt"
	"log/slog"
	"room-bot/domain"
	"room-bot/errors"
	"room-bot/translator"
	"room-bot/upstream"
)

// Actions sends requests to the room. Requests are fire once and never block
// the event loop: the outcome arrives later through the callback, on the
// client's goroutine. Misuse such as an unknown ban reason is returned as an
// error and nothing is sent.
type Actions struct {
	log    *slog.Logger
	client upstream.Client
}

func NewActions(log *slog.Logger, client upstream.Client) *Actions {
	return &Actions{log: log, client: client}
}

func (a *Actions) SendChat(message string) bool {
	return a.client.SendChat(message)
}

func (a *Actions) Ban(userID domain.UserID, reason domain.BanReason, duration domain.BanDuration, cb upstream.Callback) (bool, error) {
	if !reason.Valid() {
		return false, fmt.Errorf("%w: %d", errors.ErrInvalidBanReason, reason)
	}
	code, ok := translator.BanDurationCode(duration)
	if !ok {
		return false, fmt.Errorf("%w: %q", errors.ErrInvalidBanTime, duration)
	}
	return a.queued("ban", a.client.Ban(int(userID), int(reason), code, safe(cb)), cb), nil
}

func (a *Actions) ForceSkip(cb upstream.Callback) bool {
	return a.queued("forceSkip", a.client.ForceSkip(safe(cb)), cb)
}

func (a *Actions) Grab(cb upstream.Callback) bool {
	return a.queued("grab", a.client.Grab(safe(cb)), cb)
}

func (a *Actions) JoinWaitList(cb upstream.Callback) bool {
	return a.queued("joinWaitList", a.client.JoinWaitList(safe(cb)), cb)
}

func (a *Actions) LeaveWaitList(cb upstream.Callback) bool {
	return a.queued("leaveWaitList", a.client.LeaveWaitList(safe(cb)), cb)
}

func (a *Actions) Woot(cb upstream.Callback) bool {
	return a.queued("woot", a.client.Woot(safe(cb)), cb)
}

func (a *Actions) Meh(cb upstream.Callback) bool {
	return a.queued("meh", a.client.Meh(safe(cb)), cb)
}

// queued reports the failure itself when the client did not take the
// request, since the client will never call back in that case.
func (a *Actions) queued(action string, ok bool, cb upstream.Callback) bool {
	if !ok {
		a.log.Warn("Action not queued", "action", action)
		if cb != nil {
			cb(false)
		}
	}
	return ok
}

func safe(cb upstream.Callback) upstream.Callback {
	if cb == nil {
		return func(bool) {}
	}
	return cb
}
