package sweeper

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"tradex-backend/internal/models"
)

// Sweeper periodically approves pending orders in bulk. It owns its lifecycle:
// Start launches the loop, Stop blocks until it has drained.
type Sweeper struct {
	DB       *gorm.DB
	Interval time.Duration

	stop chan struct{}
	done chan struct{}
}

// Start launches the sweep loop. Safe to call once.
func (s *Sweeper) Start(ctx context.Context) {
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(ctx)
	log.Info().Dur("interval", s.Interval).Msg("approval sweeper started")
}

// Stop terminates the loop and waits for the in-flight sweep to finish.
func (s *Sweeper) Stop() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	log.Info().Msg("approval sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.sweepOnce(ctx)
			if err != nil {
				log.Error().Err(err).Msg("approval sweep failed")
				continue
			}
			if n > 0 {
				log.Info().Int64("approved", n).Msg("approval sweep")
			}
		}
	}
}

// sweepOnce flips every unapproved order to approved. No per-order logic.
func (s *Sweeper) sweepOnce(ctx context.Context) (int64, error) {
	res := s.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("approved = ?", false).
		Update("approved", true)
	return res.RowsAffected, res.Error
}
