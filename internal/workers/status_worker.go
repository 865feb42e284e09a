package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-statement-list/internal/config"
	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/internal/service"
)

// StatusWorker simulates the back office: on every tick it moves the
// documents that have not changed for StatusDelay one step forward. Each
// move is pushed to the websocket subscribers by the document service.
type StatusWorker struct {
	documents service.DocumentService
	interval  time.Duration
	delay     time.Duration
	now       func() time.Time

	logger *logger.Logger
}

func NewStatusWorker(documents service.DocumentService, cfg config.Workers, logger *logger.Logger) *StatusWorker {
	return &StatusWorker{
		documents: documents,
		interval:  cfg.StatusInterval,
		delay:     cfg.StatusDelay,
		now:       time.Now,
		logger:    logger,
	}
}

// Run ticks until ctx is cancelled. A failed pass is logged and retried on
// the next tick.
func (s *StatusWorker) Run(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.interval).
		Dur("delay", s.delay).
		Msg("status worker started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("status worker stopped")
			return nil
		case <-ticker.C:
			s.advance(ctx)
		}
	}
}

func (s *StatusWorker) advance(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	moved, err := s.documents.AdvanceStatuses(ctx, s.now().Add(-s.delay))
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Err(err).Str("func", "StatusWorker.advance").Msg("advancing statuses failed")
		return
	}
	if moved > 0 {
		s.logger.Debug().Int("moved", moved).Msg("statuses advanced")
	}
}
