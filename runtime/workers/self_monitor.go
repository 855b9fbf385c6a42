package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// SelfMonitorWorker periodically samples the bot's own CPU, RSS and status
// and writes them to the log. There is no metrics backend: the log line is
// the whole telemetry surface.
type SelfMonitorWorker struct {
	log      *slog.Logger
	interval time.Duration
}

func NewSelfMonitorWorker(log *slog.Logger, interval time.Duration) *SelfMonitorWorker {
	return &SelfMonitorWorker{log: log, interval: interval}
}

func (w *SelfMonitorWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping self monitor")
			return nil
		case <-ticker.C:
			status, err := p.Status()
			if err != nil {
				w.log.Error("Error while finding process status", "err", err)
				continue
			}
			cpu, err := p.CPUPercent()
			if err != nil {
				w.log.Error("Error while finding process cpu usage", "err", err)
				continue
			}
			mem, err := p.MemoryInfo()
			if err != nil {
				w.log.Error("Error while finding process memory usage", "err", err)
				continue
			}
			w.log.Info("Self stats",
				"status", status,
				"cpu_percent", cpu,
				"rss_bytes", mem.RSS,
			)
		}
	}
}
