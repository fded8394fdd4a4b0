package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"room-bot/command"
	"room-bot/domain/event"
	"room-bot/internal"
	"room-bot/repositories"
	"room-bot/runtime"
	"room-bot/runtime/workers"
	"room-bot/sink"
	"room-bot/upstream/wsclient"
	"syscall"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until the bot stops.
// Returning an error instead of exiting lets the deferred cleanups run.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Bot & built-in plugins
	client := wsclient.New(log, config.UpstreamURL, config.PingInterval)
	sup := workers.NewSupervisor(log, config.RestartInterval)
	bot := runtime.NewBot(log, config, client, sup)

	router := command.NewRouter(log, config.CaseInsensitiveTriggers)
	if err = router.Add(command.Help(router)); err != nil {
		return fmt.Errorf("command registration failed: %w", err)
	}
	bot.Use(router, moderationLog())

	// 3. Archive (BadgerDB), only when a path is configured
	var db *badger.DB
	if config.BadgerFilepath != "" {
		db, err = badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.INFO))
		if err != nil {
			return fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}()
		archive := sink.NewArchiveSink(
			repositories.NewChatRepository(db, log, nil),
			repositories.NewPlayRepository(db, log, nil),
			log,
		)
		if config.BlugeFilepath != "" {
			blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
			if err != nil {
				return fmt.Errorf("search index opening failed: %w", err)
			}
			defer func() {
				log.Info("Closing Bluge...")
				_ = blugeWriter.Close()
			}()
			archive = archive.WithIndex(repositories.NewChatIndex(blugeWriter, log))
		}
		bot.Use(archive)
	}
	if config.DebugPort > 0 {
		bot.AddWorkers(internal.NewDebugServer(log, db, config.DebugPort, nil, bot.Stats))
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Run until a signal arrives
	if err = bot.Run(ctx); err != nil {
		return fmt.Errorf("bot failed: %w", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}

// moderationLog records every moderator action in the bot's log.
func moderationLog() runtime.Plugin {
	return runtime.ListenerPlugin{
		PluginName: "moderation-log",
		Kinds:      []event.Kind{event.KindModBan, event.KindModMute, event.KindModRemoveDJ, event.KindModSkip},
		Listener: runtime.ListenerFunc(func(e event.Event, c *runtime.Context) error {
			c.Logger().Info("Moderation", "kind", e.Kind(), "event", fmt.Sprintf("%+v", e))
			return nil
		}),
	}
}
