// Package cycle sweeps the strip around the hue wheel.
package cycle

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/moodlight/model"
)

const (
	DFLT_PERIOD = 50 * time.Millisecond
	DFLT_STEP   = 2.0
)

type Shower interface {
	ShowColor(model.Color) error
}

type Looper struct {
	Strip      Shower
	Period     time.Duration
	Step       float64 // degrees per tick
	Saturation float64
	Luminosity float64
	Log        zerolog.Logger

	hue float64
}

func New(s Shower) *Looper {
	return &Looper{
		Strip:      s,
		Period:     DFLT_PERIOD,
		Step:       DFLT_STEP,
		Saturation: model.MaxSaturation,
		Luminosity: 50,
		Log:        zerolog.Nop(),
	}
}

// Hue is the hue the next tick will show.
func (l *Looper) Hue() float64 {
	return l.hue
}

// Tick shows the current hue and advances it.
func (l *Looper) Tick() error {
	c := model.FromHSL(l.hue, l.Saturation, l.Luminosity)
	if err := l.Strip.ShowColor(c); err != nil {
		return err
	}
	l.hue = math.Mod(l.hue+l.Step, 360)
	if l.hue < 0 {
		l.hue += 360
	}
	return nil
}

// Run ticks every Period until ctx is done, which is not an error, or a
// frame fails to send.
func (l *Looper) Run(ctx context.Context) error {
	period := l.Period
	if period <= 0 {
		period = DFLT_PERIOD
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	l.Log.Info().Dur("period", period).Float64("step", l.Step).Msg("hue cycle started")
	for {
		select {
		case <-ticker.C:
			if err := l.Tick(); err != nil {
				l.Log.Error().Err(err).Float64("hue", l.hue).Msg("hue cycle stopped")
				return err
			}
		case <-ctx.Done():
			l.Log.Info().Msg("hue cycle done")
			return nil
		}
	}
}
