package runtime

import (
	"fmt"
	"log/slog"
	"room-bot/domain/event"
	"room-bot/errors"
	"room-bot/upstream"
	"sync/atomic"
)

// Applier folds an event into the room state.
// It runs before any listener sees the event.
type Applier interface {
	Apply(e event.Event)
}

type Translator interface {
	Translate(raw upstream.Event) []event.Event
}

// Dispatcher translates raw events and delivers them synchronously:
// applier first, then every listener of the kind in subscription order.
type Dispatcher struct {
	log        *slog.Logger
	translator Translator
	applier    Applier
	registry   *Registry
	dispatched atomic.Int64
	suppressed atomic.Int64
	failures   atomic.Int64
}

func NewDispatcher(log *slog.Logger, translator Translator, applier Applier, registry *Registry) *Dispatcher {
	return &Dispatcher{log: log, translator: translator, applier: applier, registry: registry}
}

// Dispatch handles one raw occurrence to completion.
func (d *Dispatcher) Dispatch(c *Context, raw upstream.Event) {
	events := d.translator.Translate(raw)
	if len(events) == 0 {
		d.suppressed.Add(1)
		d.log.Debug("Raw event suppressed", "kind", raw.Kind)
		return
	}
	for _, evt := range events {
		d.applier.Apply(evt)
		for _, l := range d.registry.Listeners(evt.Kind()) {
			if err := d.deliver(l, evt, c); err != nil {
				d.failures.Add(1)
				d.log.Error("Listener failed", "kind", evt.Kind(), "error", err)
			}
		}
		d.dispatched.Add(1)
	}
}

func (d *Dispatcher) deliver(l Listener, evt event.Event, c *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrListenerPanic, r)
		}
	}()
	return l.Handle(evt, c)
}

func (d *Dispatcher) Stats() map[string]any {
	return map[string]any{
		"dispatched":        d.dispatched.Load(),
		"suppressed":        d.suppressed.Load(),
		"listener_failures": d.failures.Load(),
	}
}
