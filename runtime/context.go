package runtime

import (
	"log/slog"
	"room-bot/domain/event"
	"room-bot/errors"
	"room-bot/internal"
	"room-bot/projection"
)

// Context is handed to plugins at registration and to listeners with every
// event. It is the only door to configuration, room state and actions.
type Context struct {
	cfg      internal.Config
	room     *projection.RoomState
	actions  *Actions
	registry *Registry
	log      *slog.Logger
	staged   *[]subscription
}

func NewContext(log *slog.Logger, cfg internal.Config, room *projection.RoomState, actions *Actions, registry *Registry) *Context {
	return &Context{cfg: cfg, room: room, actions: actions, registry: registry, log: log}
}

// Config returns a copy, mutating it has no effect on the bot.
func (c *Context) Config() internal.Config { return c.cfg }

func (c *Context) Room() *projection.RoomState { return c.room }

func (c *Context) Actions() *Actions { return c.actions }

func (c *Context) Logger() *slog.Logger { return c.log }

func (c *Context) Subscribe(kind event.Kind, l Listener) error {
	if c.staged == nil {
		return c.registry.Subscribe(kind, l)
	}
	if l == nil {
		return errors.ErrNilListener
	}
	if !kind.Known() {
		c.log.Warn("Ignoring subscription to unknown event kind", "kind", kind)
		return nil
	}
	*c.staged = append(*c.staged, subscription{kind: kind, listener: l})
	return nil
}

// staging returns a view whose subscriptions are held back until commit.
func (c *Context) staging(log *slog.Logger) (*Context, func()) {
	var subs []subscription
	view := *c
	view.log = log
	view.staged = &subs
	return &view, func() { c.registry.commit(subs) }
}
