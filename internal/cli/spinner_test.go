package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerWritesAndClears(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerWithContext(context.Background(), "Building graph...")
	s.out = &buf

	s.Start()
	time.Sleep(3 * spinnerInterval)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Building graph...") {
		t.Errorf("spinner never wrote its message:\n%q", out)
	}
	// The line must end cleared so the next print starts at column zero.
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner left the line dirty:\n%q", out)
	}
}

func TestSpinnerCancelledByContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Building graph...")
	s.out = &bytes.Buffer{}
	s.Start()

	cancel()
	time.Sleep(2 * spinnerInterval)

	if !s.Cancelled() {
		t.Error("Cancelled() = false after context cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "Packing levels...")
	s.out = &bytes.Buffer{}
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithStatus(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "Rendering...")
	s.out = &bytes.Buffer{}
	s.Start()
	time.Sleep(spinnerInterval)
	s.StopWithSuccess("Done")

	s = newSpinnerWithContext(context.Background(), "Rendering...")
	s.out = &bytes.Buffer{}
	s.Start()
	time.Sleep(spinnerInterval)
	s.StopWithError("Failed")
}
