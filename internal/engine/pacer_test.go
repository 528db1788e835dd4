package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewPacer(t *testing.T) {
	if _, ok := NewPacer(0).(NoopPacer); !ok {
		t.Error("Expected NoopPacer for zero delay")
	}
	if _, ok := NewPacer(-time.Second).(NoopPacer); !ok {
		t.Error("Expected NoopPacer for negative delay")
	}
	if _, ok := NewPacer(10 * time.Millisecond).(*RatePacer); !ok {
		t.Error("Expected RatePacer for positive delay")
	}
}

func TestRatePacerSpacing(t *testing.T) {
	const delay = 20 * time.Millisecond
	p := NewRatePacer(delay)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 4; i++ {
		if err := p.Wait(ctx); err != nil {
			t.Fatalf("Wait failed: %v", err)
		}
	}
	// The first wait passes immediately, the remaining three are spaced.
	if elapsed := time.Since(start); elapsed < 3*delay-5*time.Millisecond {
		t.Errorf("Pacer too fast: %v for 4 waits", elapsed)
	}
}

func TestPacerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := (NoopPacer{}).Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("NoopPacer: expected context.Canceled, got %v", err)
	}

	p := NewRatePacer(time.Hour)
	p.Wait(context.Background())
	if err := p.Wait(ctx); err == nil {
		t.Error("RatePacer: expected error on cancelled context")
	}
}
