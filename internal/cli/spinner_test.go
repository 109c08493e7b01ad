package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStops(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "Composing tile...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if s.Cancelled() {
		t.Error("running spinner should not read as cancelled")
	}
	s.Stop()
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Composing tile...")
	s.Start()
	cancel()

	// Give the goroutine time to notice.
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report cancellation after context cancel")
	}
}

func TestSpinnerContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinnerWithContext(ctx, "Converting to png...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report cancellation after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "Composing tile...")
	s.Start()

	// Repeated stops must not panic.
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithOutcome(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "Composing tile...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithSuccess("Render complete")

	s = newSpinnerWithContext(context.Background(), "Composing tile...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("Render failed")
}
