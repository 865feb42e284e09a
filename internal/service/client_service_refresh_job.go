package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-statement-list/internal/logger"
)

const defaultRefreshInterval = time.Minute

type refreshJob struct {
	lists  ListService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that calls lists.RefreshIfProcessing on
// a ticker. The job is idle until Start is called.
func NewRefreshJob(lists ListService, logger *logger.Logger) RefreshJob {
	return &refreshJob{lists: lists, logger: logger}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a goroutine that asks for a refresh every interval. The goroutine
// exits when ctx is cancelled, Stop is called or the list session is gone.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.lists.RefreshIfProcessing(); err != nil {
					j.logger.Debug().Err(err).
						Str("func", "refreshJob.Start").
						Msg("list session is not accepting commands, refresh job exits")
					return
				}
			}
		}
	}()
}

// Stop implements RefreshJob. Safe to call when the job is not running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
