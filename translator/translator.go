// Package translator turns raw upstream payloads into internal events.
// It never fails: malformed input is logged and either defaulted or dropped.
package translator

import (
	"encoding/json"
	"log/slog"
	"room-bot/domain"
	"room-bot/domain/event"
	"room-bot/errors"
	"room-bot/upstream"
	"time"
)

// Defaults are used when upstream sends a moderation code we do not know.
type Defaults struct {
	BanReason    domain.BanReason
	BanDuration  domain.BanDuration
	MuteReason   domain.MuteReason
	MuteDuration domain.MuteDuration
}

// DefaultFallbacks picks the least severe value for every code.
func DefaultFallbacks() Defaults {
	return Defaults{
		BanReason:    domain.BanReasonSpamming,
		BanDuration:  domain.BanDurationHour,
		MuteReason:   domain.MuteReasonViolatingRules,
		MuteDuration: domain.MuteDurationMedium,
	}
}

type Translator struct {
	log           *slog.Logger
	defaults      Defaults
	commandPrefix string
	now           func() time.Time
}

func New(log *slog.Logger, defaults Defaults, commandPrefix string, now func() time.Time) *Translator {
	if now == nil {
		now = time.Now
	}
	return &Translator{log: log, defaults: defaults, commandPrefix: commandPrefix, now: now}
}

// Translate maps one raw occurrence to the events to dispatch, in order.
// An empty result means the occurrence is suppressed.
func (t *Translator) Translate(raw upstream.Event) []event.Event {
	switch raw.Kind {
	case upstream.KindAdvance:
		evt, ok := t.Advance(raw.Payload)
		return one(evt, ok)
	case upstream.KindChat:
		chat, ok := t.Chat(raw.Payload)
		if !ok {
			return nil
		}
		out := []event.Event{chat}
		if cmd, ok := t.Command(chat); ok {
			out = append(out, cmd)
		}
		return out
	case upstream.KindChatDelete:
		evt, ok := t.ChatDelete(raw.Payload)
		return one(evt, ok)
	case upstream.KindDJListUpdate:
		evt, ok := t.DJListUpdate(raw.Payload)
		return one(evt, ok)
	case upstream.KindGrab:
		evt, ok := t.Grab(raw.Payload)
		return one(evt, ok)
	case upstream.KindModBan:
		evt, ok := t.ModBan(raw.Payload)
		return one(evt, ok)
	case upstream.KindModMute:
		evt, ok := t.ModMute(raw.Payload)
		return one(evt, ok)
	case upstream.KindModRemoveDJ:
		evt, ok := t.ModRemoveDJ(raw.Payload)
		return one(evt, ok)
	case upstream.KindModSkip:
		evt, ok := t.ModSkip(raw.Payload)
		return one(evt, ok)
	case upstream.KindUserJoin:
		evt, ok := t.UserJoin(raw.Payload)
		return one(evt, ok)
	case upstream.KindUserLeave:
		evt, ok := t.UserLeave(raw.Payload)
		return one(evt, ok)
	case upstream.KindUserUpdate:
		evt, ok := t.UserUpdate(raw.Payload)
		return one(evt, ok)
	case upstream.KindVote:
		evt, ok := t.Vote(raw.Payload)
		return one(evt, ok)
	default:
		t.log.Warn("No translator for raw event", "kind", raw.Kind, "error", errors.ErrUnknownKind)
		return nil
	}
}

func one[E event.Event](evt E, ok bool) []event.Event {
	if !ok {
		return nil
	}
	return []event.Event{evt}
}

// decode reports false and logs when the payload is not valid JSON for out.
func (t *Translator) decode(kind upstream.Kind, payload json.RawMessage, out any) bool {
	if len(payload) == 0 {
		t.log.Error("Empty raw payload", "kind", kind)
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		t.log.Error("Malformed raw payload", "kind", kind, "error", err)
		return false
	}
	return true
}
