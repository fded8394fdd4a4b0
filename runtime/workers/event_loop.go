package workers

import (
	"context"
	"log/slog"
	"room-bot/contract"
	"room-bot/upstream"
)

var _ contract.Worker = (*EventLoopWorker)(nil)

// EventLoopWorker drains raw events one at a time. Being the only consumer of
// the channel is what guarantees ordered, non-overlapping delivery.
type EventLoopWorker struct {
	log    *slog.Logger
	events <-chan upstream.Event
	handle func(upstream.Event)
}

func NewEventLoopWorker(log *slog.Logger, events <-chan upstream.Event, handle func(upstream.Event)) *EventLoopWorker {
	return &EventLoopWorker{log: log, events: events, handle: handle}
}

func (w *EventLoopWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping event loop")
			return ctx.Err()
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.handle(evt)
		}
	}
}
