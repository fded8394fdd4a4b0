package runtime

import (
	"fmt"
	"room-bot/domain/event"
)

// Plugin is the unit of bot behaviour. Register subscribes listeners and may
// read the room or send actions. If it fails, none of its subscriptions stay.
type Plugin interface {
	Name() string
	Register(c *Context) error
}

// ListenerPlugin wires a single listener to a set of event kinds.
type ListenerPlugin struct {
	PluginName string
	Kinds      []event.Kind
	Listener   Listener
}

func (p ListenerPlugin) Name() string { return p.PluginName }

func (p ListenerPlugin) Register(c *Context) error {
	for _, k := range p.Kinds {
		if err := c.Subscribe(k, p.Listener); err != nil {
			return fmt.Errorf("subscribe %s: %w", k, err)
		}
	}
	return nil
}

// RegisterPlugins registers every plugin in order. A failing plugin is
// logged and skipped. It returns the names of the registered ones.
func RegisterPlugins(c *Context, plugins ...Plugin) []string {
	var registered []string
	for _, p := range plugins {
		log := c.log.With("plugin", p.Name())
		view, commit := c.staging(log)
		if err := p.Register(view); err != nil {
			log.Error("Plugin registration failed, skipping", "error", err)
			continue
		}
		commit()
		registered = append(registered, p.Name())
		log.Info("Plugin registered")
	}
	return registered
}
