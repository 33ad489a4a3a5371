package sim

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FPS <= 0 {
		t.Error("DefaultConfig has invalid FPS")
	}
	if cfg.Duration <= 0 {
		t.Error("DefaultConfig has invalid Duration")
	}
	if cfg.Frames() != 600 {
		t.Errorf("expected 600 frames, got %d", cfg.Frames())
	}
}

func TestSimError(t *testing.T) {
	err := SimError{Time: 1.5, Frame: 90, Strip: 3, Wrapped: ErrInvalidState}
	expected := "frame 90 (t=1.5000) strip 3: sim: invalid strip state (NaN or Inf detected)"
	if err.Error() != expected {
		t.Errorf("SimError.Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, ErrInvalidState) {
		t.Error("SimError should unwrap to ErrInvalidState")
	}
}
