package engine

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer throttles frame generation in real time. It has no effect on the
// frames produced.
type Pacer interface {
	Wait(ctx context.Context) error
}

// NoopPacer never blocks.
type NoopPacer struct{}

func (NoopPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}

// RatePacer lets one frame through per delay.
type RatePacer struct {
	limiter *rate.Limiter
}

func NewRatePacer(delay time.Duration) *RatePacer {
	return &RatePacer{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

func (p *RatePacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// NewPacer picks a RatePacer for a positive delay and a NoopPacer otherwise.
func NewPacer(delay time.Duration) Pacer {
	if delay <= 0 {
		return NoopPacer{}
	}
	return NewRatePacer(delay)
}
