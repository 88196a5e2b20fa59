package show

import (
	"context"
	"time"

	"github.com/cory-johannsen/montyhall/internal/config"
)

// Pacing holds the dramatic delays of a narrated playthrough.
type Pacing struct {
	Enabled  bool
	Beat     time.Duration
	Suspense time.Duration
	Drumroll time.Duration
}

// NewPacing builds Pacing from configuration.
func NewPacing(cfg config.PacingConfig) Pacing {
	return Pacing{
		Enabled:  cfg.Enabled,
		Beat:     cfg.Beat,
		Suspense: cfg.Suspense,
		Drumroll: cfg.Drumroll,
	}
}

// NoPacing never sleeps.
var NoPacing = Pacing{}

// Pause blocks for d, or until ctx is done.
//
// Postcondition: Returns ctx.Err() if ctx ended before or during the pause, nil otherwise.
func (p Pacing) Pause(ctx context.Context, d time.Duration) error {
	if !p.Enabled || d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
