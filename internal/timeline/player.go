package timeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bietkhonhungvandi212/pagesim/internal/replacement"
)

// Speed is an auto-play rate.
type Speed string

const (
	SpeedSlow   Speed = "SLOW"
	SpeedNormal Speed = "NORMAL"
	SpeedFast   Speed = "FAST"
)

var speedIntervals = map[Speed]time.Duration{
	SpeedSlow:   1000 * time.Millisecond,
	SpeedNormal: 500 * time.Millisecond,
	SpeedFast:   200 * time.Millisecond,
}

func ParseSpeed(raw string) (Speed, error) {
	s := Speed(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := speedIntervals[s]; !ok {
		return "", fmt.Errorf("[timeline] [ParseSpeed] unknown speed %q", raw)
	}
	return s, nil
}

func (s Speed) Interval() time.Duration {
	if d, ok := speedIntervals[s]; ok {
		return d
	}
	return speedIntervals[SpeedNormal]
}

// Player steps a cursor forward at a fixed interval, the way a UI auto-plays a run.
type Player struct {
	interval time.Duration
}

func NewPlayer(speed Speed) *Player {
	return &Player{interval: speed.Interval()}
}

// NewPlayerWithInterval is used when the caller wants a custom rate.
func NewPlayerWithInterval(interval time.Duration) *Player {
	if interval <= 0 {
		interval = SpeedNormal.Interval()
	}
	return &Player{interval: interval}
}

func (p *Player) Interval() time.Duration {
	return p.interval
}

// Play advances c once per tick and passes each new step to onStep.
// It returns nil once the cursor reaches the last step, or ctx.Err() if cancelled first.
func (p *Player) Play(ctx context.Context, c *Cursor, onStep func(replacement.Step)) error {
	if c.AtEnd() {
		return nil
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !c.StepForward() {
				return nil
			}
			if onStep != nil {
				onStep(c.Current())
			}
			if c.AtEnd() {
				return nil
			}
		}
	}
}
