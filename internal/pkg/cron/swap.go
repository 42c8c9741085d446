package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/shiftwise/roster-backend-go/internal/domain/swap"
)

type SwapJobs struct {
	swapService swap.Service
	maxAge      time.Duration
	interval    time.Duration
}

func NewSwapJobs(swapService swap.Service, maxAge, interval time.Duration) *SwapJobs {
	return &SwapJobs{
		swapService: swapService,
		maxAge:      maxAge,
		interval:    interval,
	}
}

func (j *SwapJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("expire_stale_swap_requests", j.interval, j.ExpireStaleSwapRequests)
}

// ExpireStaleSwapRequests closes OPEN swap requests older than the
// configured max age.
func (j *SwapJobs) ExpireStaleSwapRequests(ctx context.Context) error {
	expired, err := j.swapService.ExpireStale(ctx, j.maxAge)
	if err != nil {
		return err
	}
	if expired > 0 {
		slog.Info("expired stale swap requests", "count", expired)
	}
	return nil
}
