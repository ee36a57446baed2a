package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Theme persists the light/dark flag alongside the data slots. Only the
// flag is owned here; applying it is the client's concern.
type Theme struct {
	mu    sync.Mutex
	blobs Blobs
	dark  bool
}

func NewTheme(blobs Blobs) *Theme {
	return &Theme{blobs: blobs}
}

// Load reads the flag; absent or unreadable means light mode.
func (t *Theme) Load(ctx context.Context) error {
	payload, ok, err := t.blobs.Load(ctx, SlotDarkMode)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dark = false
	if !ok {
		return nil
	}
	var dark bool
	if err := decodeSlot(payload, &dark); err != nil {
		slog.WarnContext(ctx, "Discarding unreadable theme payload", "error", err)
		return nil
	}
	t.dark = dark
	return nil
}

// Dark reports whether dark mode is on.
func (t *Theme) Dark() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dark
}

// SetDark stores the flag.
func (t *Theme) SetDark(ctx context.Context, dark bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dark = dark
	payload, err := encodeSlot(dark)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	if err := t.blobs.Save(ctx, SlotDarkMode, payload); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}
	return nil
}
