package runtime

import (
	"log/slog"
	"room-bot/domain/event"
	"room-bot/errors"
	"sync"
)

// Listener receives every translated event of the kinds it subscribed to,
// after the room state already reflects it.
type Listener interface {
	Handle(e event.Event, c *Context) error
}

type ListenerFunc func(e event.Event, c *Context) error

func (f ListenerFunc) Handle(e event.Event, c *Context) error { return f(e, c) }

type subscription struct {
	kind     event.Kind
	listener Listener
}

// Registry keeps, per event kind, listeners in subscription order.
type Registry struct {
	mu        sync.RWMutex
	log       *slog.Logger
	listeners map[event.Kind][]Listener
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:       log,
		listeners: make(map[event.Kind][]Listener),
	}
}

// Subscribe appends l to the listeners of kind.
// An unknown kind is only logged, so listeners written against newer kinds
// keep loading.
func (r *Registry) Subscribe(kind event.Kind, l Listener) error {
	if l == nil {
		return errors.ErrNilListener
	}
	if !kind.Known() {
		r.log.Warn("Ignoring subscription to unknown event kind", "kind", kind)
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners[kind] = append(r.listeners[kind], l)
	return nil
}

func (r *Registry) commit(subs []subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range subs {
		r.listeners[s.kind] = append(r.listeners[s.kind], s.listener)
	}
}

// Listeners returns a snapshot, safe to range over while others subscribe.
func (r *Registry) Listeners(kind event.Kind) []Listener {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Listener(nil), r.listeners[kind]...)
}

// Count returns the number of listeners per kind.
func (r *Registry) Count() map[event.Kind]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make(map[event.Kind]int, len(r.listeners))
	for k, ls := range r.listeners {
		res[k] = len(ls)
	}
	return res
}
