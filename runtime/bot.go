// Package runtime connects the upstream client to the translated event
// stream: it owns the event loop, the listener registry and the shared
// Context handed to plugins. It holds no bot behaviour of its own.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"room-bot/contract"
	"room-bot/errors"
	"room-bot/internal"
	"room-bot/projection"
	"room-bot/runtime/workers"
	"room-bot/translator"
	"room-bot/upstream"
	"sync/atomic"
	"time"
)

type Bot struct {
	log        *slog.Logger
	cfg        internal.Config
	client     upstream.Client
	translator *translator.Translator
	tracker    *projection.Tracker
	registry   *Registry
	dispatcher *Dispatcher
	ctx        *Context
	supervisor contract.ISupervisor
	events     chan upstream.Event
	done       chan struct{}
	plugins    []Plugin
	extra      []contract.Worker
	started    atomic.Bool
}

func NewBot(log *slog.Logger, cfg internal.Config, client upstream.Client, supervisor contract.ISupervisor) *Bot {
	tr := translator.New(log, cfg.Fallbacks(), cfg.CommandPrefix, time.Now)
	tracker := projection.NewTracker(log, projection.NewRoomState(), cfg.ChatHistoryLimit, time.Now)
	registry := NewRegistry(log)
	actions := NewActions(log, client)
	return &Bot{
		log:        log,
		cfg:        cfg,
		client:     client,
		translator: tr,
		tracker:    tracker,
		registry:   registry,
		dispatcher: NewDispatcher(log, tr, tracker, registry),
		ctx:        NewContext(log, cfg, tracker.State(), actions, registry),
		supervisor: supervisor,
		events:     make(chan upstream.Event, cfg.EventBufferSize),
		done:       make(chan struct{}),
	}
}

// Use queues plugins, registered in order once the room is synchronized.
func (b *Bot) Use(plugins ...Plugin) *Bot {
	b.plugins = append(b.plugins, plugins...)
	return b
}

// AddWorkers supervises extra workers alongside the event loop.
func (b *Bot) AddWorkers(ws ...contract.Worker) *Bot {
	b.extra = append(b.extra, ws...)
	return b
}

func (b *Bot) Context() *Context { return b.ctx }

// Run connects, synchronizes the room, registers plugins and then processes
// events until ctx is cancelled or Stop is called.
// Events received before the sync completes are buffered, not lost.
func (b *Bot) Run(ctx context.Context) error {
	if !b.started.CompareAndSwap(false, true) {
		return errors.ErrAlreadyStarted
	}
	defer close(b.done)

	b.client.OnEvent(b.enqueue)
	if err := b.client.Connect(ctx, b.cfg.Room); err != nil {
		return fmt.Errorf("connect to room %q: %w", b.cfg.Room, err)
	}
	defer func() {
		if err := b.client.Close(); err != nil {
			b.log.Warn("Failed to close upstream client", "error", err)
		}
	}()

	if err := b.tracker.Sync(ctx, b.client, b.translator, b.cfg.SyncTimeout); err != nil {
		return fmt.Errorf("room synchronization failed: %w", err)
	}

	registered := RegisterPlugins(b.ctx, b.plugins...)
	b.log.Info("Plugins ready", "registered", registered, "skipped", len(b.plugins)-len(registered))

	b.supervisor.Add(workers.NewEventLoopWorker(b.log, b.events, b.handle))
	if b.cfg.HeartbeatInterval > 0 {
		b.supervisor.Add(workers.NewHeartbeatWorker(b.log, b.cfg.HeartbeatInterval, b.Stats))
	}
	b.supervisor.Add(b.extra...)

	b.log.Info("Starting bot", "room", b.cfg.Room)
	b.supervisor.Run(ctx)
	b.log.Info("Bot stopped", "room", b.cfg.Room)
	return nil
}

func (b *Bot) Stop() {
	b.supervisor.Stop()
}

// enqueue runs on the client's goroutine. It blocks while the buffer is full
// so that no event is ever dropped.
func (b *Bot) enqueue(evt upstream.Event) {
	select {
	case b.events <- evt:
	case <-b.done:
	}
}

func (b *Bot) handle(raw upstream.Event) {
	b.dispatcher.Dispatch(b.ctx, raw)
}

func (b *Bot) Stats() map[string]any {
	room := b.tracker.State()
	stats := b.dispatcher.Stats()
	stats["users"] = len(room.UsersInRoom())
	stats["wait_list"] = len(room.WaitList())
	stats["plays"] = len(room.PlayHistory())
	stats["chats"] = len(room.ChatHistory())
	stats["buffered"] = len(b.events)
	return stats
}
