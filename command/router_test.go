package command

import (
	"fmt"
	"log/slog"
	"room-bot/domain"
	"room-bot/domain/event"
	"room-bot/errors"
	"room-bot/internal"
	"room-bot/mocks"
	"room-bot/projection"
	"room-bot/runtime"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newContext builds a room where user 1 is a bouncer and user 2 a plain member.
func newContext(t *testing.T, actions *runtime.Actions) *runtime.Context {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	tracker := projection.NewTracker(log, projection.NewRoomState(), 0, time.Now)
	tracker.Apply(event.UserJoin{User: domain.User{ID: 1, Username: "bob", Role: domain.RoleBouncer}})
	tracker.Apply(event.UserJoin{User: domain.User{ID: 2, Username: "eve", Role: domain.RoleNone}})
	return runtime.NewContext(log, internal.Config{CommandPrefix: "!"}, tracker.State(), actions, runtime.NewRegistry(log))
}

func command(userID domain.UserID, trigger string, args ...string) event.Command {
	return event.Command{UserID: userID, Username: fmt.Sprintf("user%d", userID), Trigger: trigger, Args: args}
}

func recordTo(trail *[]string, name string) Handler {
	return func(cmd event.Command, _ *runtime.Context) error {
		*trail = append(*trail, name)
		return nil
	}
}

func TestRouter_All_Matching_Commands_Fire_In_Order(t *testing.T) {
	req := require.New(t)
	router := NewRouter(logs.GetLoggerFromLevel(slog.LevelDebug), true)
	var trail []string

	// Given two commands sharing the "skip" trigger and one unrelated
	req.NoError(router.Add(
		Definition{Name: "skip-log", Triggers: []string{"skip"}, Handler: recordTo(&trail, "log")},
		Definition{Name: "other", Triggers: []string{"woot"}, Handler: recordTo(&trail, "other")},
		Definition{Name: "skip", Triggers: []string{"Skip", "next"}, Handler: recordTo(&trail, "skip")},
	))

	// When the trigger is used with another case
	req.NoError(router.Handle(command(2, "SKIP"), newContext(t, nil)))

	// Then both skip commands fired, in registration order
	req.Equal([]string{"log", "skip"}, trail)
}

func TestRouter_Case_Sensitive(t *testing.T) {
	req := require.New(t)
	router := NewRouter(logs.GetLoggerFromLevel(slog.LevelDebug), false)
	var trail []string
	req.NoError(router.Add(Definition{Name: "skip", Triggers: []string{"skip"}, Handler: recordTo(&trail, "skip")}))

	req.NoError(router.Handle(command(2, "SKIP"), newContext(t, nil)))
	req.Empty(trail)

	req.NoError(router.Handle(command(2, "skip"), newContext(t, nil)))
	req.Equal([]string{"skip"}, trail)
}

func TestRouter_Role_Gating(t *testing.T) {
	req := require.New(t)
	router := NewRouter(logs.GetLoggerFromLevel(slog.LevelDebug), true)
	var trail []string

	req.NoError(router.Add(
		Definition{Name: "ban", Triggers: []string{"ban"}, MinRole: domain.RoleBouncer,
			Handler: recordTo(&trail, "ban"), OnDenied: recordTo(&trail, "denied")},
		Definition{Name: "silent", Triggers: []string{"ban"}, MinRole: domain.RoleManager,
			Handler: recordTo(&trail, "manager-ban")},
	))
	c := newContext(t, nil)

	// When a plain member uses it, the denial callback fires
	req.NoError(router.Handle(command(2, "ban", "bob"), c))
	req.Equal([]string{"denied"}, trail)

	// When a bouncer uses it, only the bouncer command fires
	trail = nil
	req.NoError(router.Handle(command(1, "ban", "eve"), c))
	req.Equal([]string{"ban"}, trail)

	// When someone not in the room uses it, they have no role
	trail = nil
	req.NoError(router.Handle(command(99, "ban", "eve"), c))
	req.Equal([]string{"denied"}, trail)
}

func TestRouter_Handler_Failures_Are_Joined(t *testing.T) {
	req := require.New(t)
	router := NewRouter(logs.GetLoggerFromLevel(slog.LevelDebug), true)
	var trail []string

	req.NoError(router.Add(
		Definition{Name: "panics", Triggers: []string{"go"}, Handler: func(event.Command, *runtime.Context) error { panic("boom") }},
		Definition{Name: "fails", Triggers: []string{"go"}, Handler: func(event.Command, *runtime.Context) error { return fmt.Errorf("nope") }},
		Definition{Name: "works", Triggers: []string{"go"}, Handler: recordTo(&trail, "works")},
	))

	err := router.Handle(command(2, "go"), newContext(t, nil))

	req.ErrorIs(err, errors.ErrListenerPanic)
	req.ErrorContains(err, "nope")
	req.Equal([]string{"works"}, trail)
}

func TestRouter_Add_Rejects_Invalid_Definitions(t *testing.T) {
	req := require.New(t)
	router := NewRouter(logs.GetLoggerFromLevel(slog.LevelDebug), true)
	ok := func(event.Command, *runtime.Context) error { return nil }

	tests := []Definition{
		{Name: "no-triggers", Handler: ok},
		{Name: "empty-trigger", Triggers: []string{""}, Handler: ok},
		{Name: "no-handler", Triggers: []string{"x"}},
		{Triggers: []string{"x"}, Handler: ok},
		{Name: "bad-role", Triggers: []string{"x"}, MinRole: domain.Role(9), Handler: ok},
	}
	for _, def := range tests {
		req.ErrorIs(router.Add(Definition{Name: "valid", Triggers: []string{"v"}, Handler: ok}, def), errors.ErrInvalidCommand)
	}
	// Nothing was added by the failed calls
	req.Empty(router.Triggers(domain.RoleHost))
}

func TestRouter_As_Plugin(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry(log)
	c := runtime.NewContext(log, internal.Config{}, projection.NewRoomState(), nil, registry)
	router := NewRouter(log, true)

	req.Equal([]string{"commands"}, runtime.RegisterPlugins(c, router))
	req.Len(registry.Listeners(event.KindCommand), 1)
}

func TestHelp_Lists_Permitted_Triggers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ok := func(event.Command, *runtime.Context) error { return nil }

	router := NewRouter(log, true)
	req.NoError(router.Add(
		Definition{Name: "ban", Triggers: []string{"ban"}, MinRole: domain.RoleBouncer, Handler: ok},
		Definition{Name: "woot", Triggers: []string{"woot"}, Handler: ok},
		Help(router),
	))

	// Then a plain member only sees what they may use
	client.EXPECT().SendChat("@user2 commands: !commands !help !woot").Return(true)
	req.NoError(router.Handle(command(2, "help"), newContext(t, runtime.NewActions(log, client))))
}
