package command

import (
	"fmt"
	"room-bot/domain"
	"room-bot/domain/event"
	"room-bot/runtime"
	"strings"
)

// Help answers with the triggers the invoker is allowed to use.
func Help(r *Router, triggers ...string) Definition {
	if len(triggers) == 0 {
		triggers = []string{"help", "commands"}
	}
	return Definition{
		Name:     "help",
		Triggers: triggers,
		MinRole:  domain.RoleNone,
		Handler: func(cmd event.Command, c *runtime.Context) error {
			prefix := c.Config().CommandPrefix
			available := r.Triggers(invokerRole(cmd, c))
			for i, t := range available {
				available[i] = prefix + t
			}
			if !c.Actions().SendChat(fmt.Sprintf("@%s commands: %s", cmd.Username, strings.Join(available, " "))) {
				c.Logger().Warn("Help reply not queued", "user", cmd.Username)
			}
			return nil
		},
	}
}
