// Package command routes chat commands to the handlers registered for their
// trigger, gated by the invoker's role.
package command

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"room-bot/domain"
	"room-bot/domain/event"
	"room-bot/errors"
	"room-bot/runtime"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

type Handler func(cmd event.Command, c *runtime.Context) error

type Definition struct {
	Name     string      `validate:"required"`
	Triggers []string    `validate:"min=1,dive,required"`
	MinRole  domain.Role `validate:"gte=0,lte=5"`
	Handler  Handler     `validate:"required"`
	// OnDenied is called instead of Handler when the invoker's role is too low.
	OnDenied Handler
}

var _ runtime.Plugin = (*Router)(nil)

// Router is the COMMAND listener. Several definitions may share a trigger:
// every permitted one fires, in registration order.
type Router struct {
	mu              sync.RWMutex
	log             *slog.Logger
	validate        *validator.Validate
	caseInsensitive bool
	commands        []Definition
}

func NewRouter(log *slog.Logger, caseInsensitive bool) *Router {
	return &Router{log: log, validate: validator.New(), caseInsensitive: caseInsensitive}
}

// Add validates every definition first and adds none if one is invalid.
func (r *Router) Add(defs ...Definition) error {
	for _, def := range defs {
		if err := r.validate.Struct(def); err != nil {
			return fmt.Errorf("%w: %q: %w", errors.ErrInvalidCommand, def.Name, err)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, def := range defs {
		def.Triggers = lo.Map(def.Triggers, func(t string, _ int) string { return r.normalize(t) })
		r.commands = append(r.commands, def)
	}
	return nil
}

func (r *Router) Name() string { return "commands" }

func (r *Router) Register(c *runtime.Context) error {
	return c.Subscribe(event.KindCommand, runtime.ListenerFunc(r.Handle))
}

func (r *Router) Handle(e event.Event, c *runtime.Context) error {
	cmd, ok := e.(event.Command)
	if !ok {
		return nil
	}
	trigger := r.normalize(cmd.Trigger)
	role := invokerRole(cmd, c)

	var errs []error
	matched := 0
	for _, def := range r.matching(trigger) {
		matched++
		handler := def.Handler
		if !role.AtLeast(def.MinRole) {
			r.log.Debug("Command denied", "command", def.Name, "user", cmd.Username, "role", role, "required", def.MinRole)
			if def.OnDenied == nil {
				continue
			}
			handler = def.OnDenied
		}
		if err := run(handler, cmd, c); err != nil {
			errs = append(errs, fmt.Errorf("command %q: %w", def.Name, err))
		}
	}
	if matched == 0 {
		r.log.Debug("No command for trigger", "trigger", trigger)
	}
	return goerrors.Join(errs...)
}

// Triggers lists the triggers usable with role, sorted.
func (r *Router) Triggers(role domain.Role) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []string
	for _, def := range r.commands {
		if role.AtLeast(def.MinRole) {
			res = append(res, def.Triggers...)
		}
	}
	res = lo.Uniq(res)
	sort.Strings(res)
	return res
}

func (r *Router) matching(trigger string) []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Filter(r.commands, func(def Definition, _ int) bool {
		return lo.Contains(def.Triggers, trigger)
	})
}

func (r *Router) normalize(trigger string) string {
	if r.caseInsensitive {
		return strings.ToLower(trigger)
	}
	return trigger
}

// invokerRole reads the role from the room, unknown users have none.
func invokerRole(cmd event.Command, c *runtime.Context) domain.Role {
	if c == nil || c.Room() == nil {
		return domain.RoleNone
	}
	if u, ok := c.Room().FindUserInRoom(cmd.UserID); ok {
		return u.Role
	}
	return domain.RoleNone
}

// run isolates handlers from each other so one panic does not skip the rest.
func run(h Handler, cmd event.Command, c *runtime.Context) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", errors.ErrListenerPanic, p)
		}
	}()
	return h(cmd, c)
}
