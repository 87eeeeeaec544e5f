// Package watchdog periodically scans for submissions that have sat in
// PENDING or RUNNING past a threshold. It only reports them; a stuck
// status can mean a judging pass is merely slow, so the watchdog never
// rewrites verdicts on its own.
package watchdog

import (
	"context"
	"time"

	"gitlab.com/shodh-oj.net/internal/core/ports/primary"
	"gitlab.com/shodh-oj.net/internal/core/ports/secondary"
)

type Watchdog struct {
	submissionRepo secondary.SubmissionRepository
	interval       time.Duration
	threshold      time.Duration
	logger         primary.Logger
}

func New(submissionRepo secondary.SubmissionRepository, interval, threshold time.Duration, logger primary.Logger) *Watchdog {
	return &Watchdog{
		submissionRepo: submissionRepo,
		interval:       interval,
		threshold:      threshold,
		logger:         logger,
	}
}

// Start launches the periodic scan. It returns immediately; the scan
// stops when ctx is cancelled.
func (w *Watchdog) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.scan(ctx)
			}
		}
	}()
}

func (w *Watchdog) scan(ctx context.Context) {
	cutoff := time.Now().Add(-w.threshold)
	stuck, err := w.submissionRepo.ListUnfinished(ctx, cutoff)
	if err != nil {
		w.logger.Error("Watchdog scan failed", "error", err)
		return
	}

	for _, sub := range stuck {
		w.logger.Warn("Submission stuck without verdict",
			"submissionId", sub.ID,
			"status", sub.Status,
			"submittedAt", sub.SubmittedAt,
		)
	}
}
