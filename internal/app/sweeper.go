package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lingualive/coordinator/internal/core"
)

// Sweeper periodically reclaims rooms that are empty and older than
// IdleTTL. It only scans the room store; live rooms are untouched.
type Sweeper struct {
	Rooms    core.RoomStore
	Interval time.Duration
	IdleTTL  time.Duration
}

func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()
	log.Info().Str("module", "app.sweeper").Dur("interval", s.Interval).Dur("idle_ttl", s.IdleTTL).Msg("sweeper started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "app.sweeper").Msg("sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
			if n := s.Rooms.SweepIdle(s.IdleTTL); n > 0 {
				log.Info().Str("module", "app.sweeper").Int("swept", n).Msg("reclaimed idle rooms")
			}
		}
	}
}
