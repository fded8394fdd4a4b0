package workers

import (
	"context"
	"log/slog"
	"os"
	"room-bot/contract"
	"time"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*HeartbeatWorker)(nil)

// HeartbeatWorker periodically logs process health next to the bot's own stats.
type HeartbeatWorker struct {
	log      *slog.Logger
	interval time.Duration
	stats    contract.StatsProvider
}

func NewHeartbeatWorker(log *slog.Logger, interval time.Duration, stats contract.StatsProvider) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, interval: interval, stats: stats}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.beat(p)
		}
	}
}

func (w *HeartbeatWorker) beat(p *process.Process) {
	attrs := make([]any, 0, 8)
	if rss, cpu, err := selfStats(p); err != nil {
		w.log.Error("Failed to collect self stats", "error", err)
	} else {
		attrs = append(attrs, "rss_bytes", rss, "cpu_percent", cpu)
	}
	if w.stats != nil {
		for k, v := range w.stats() {
			attrs = append(attrs, k, v)
		}
	}
	w.log.Info("heartbeat", attrs...)
}

// selfStats retrieves memory and CPU usage of the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
