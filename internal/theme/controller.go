package theme

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/extman/internal/prefs"
)

// Controller owns the light/dark preference. The persisted value is the
// source of truth for toggling; Mode only mirrors the last applied state.
type Controller struct {
	store   prefs.Store
	current Mode
}

// NewController creates a controller backed by store. It starts in Light
// until Initialize runs.
func NewController(store prefs.Store) *Controller {
	return &Controller{store: store, current: Light}
}

// Mode returns the last applied mode.
func (c *Controller) Mode() Mode {
	return c.current
}

// Initialize reads the persisted preference and applies it. When nothing is
// stored yet, Light is applied, which also persists it.
func (c *Controller) Initialize(ctx context.Context) (Mode, error) {
	value, ok, err := c.store.Get(ctx, StorageKey)
	if err != nil {
		c.current = Light
		return c.current, fmt.Errorf("read theme preference: %w", err)
	}
	if !ok {
		return Light, c.Apply(ctx, Light)
	}
	mode := ParseMode(value)
	return mode, c.Apply(ctx, mode)
}

// Toggle flips the persisted preference. The current value is read from the
// store rather than from Mode, so a missing value counts as light and toggles
// to dark. Only when the read fails is the in-memory mode used.
func (c *Controller) Toggle(ctx context.Context) (Mode, error) {
	current := c.current
	value, _, err := c.store.Get(ctx, StorageKey)
	if err == nil {
		current = ParseMode(value)
	}

	next := current.Opposite()
	applyErr := c.Apply(ctx, next)
	if err != nil {
		return next, fmt.Errorf("read theme preference: %w", err)
	}
	return next, applyErr
}

// Apply records mode as current and persists it. The in-memory mode changes
// even when persisting fails.
func (c *Controller) Apply(ctx context.Context, mode Mode) error {
	if mode != Dark {
		mode = Light
	}
	c.current = mode
	if err := c.store.Set(ctx, StorageKey, string(mode)); err != nil {
		return fmt.Errorf("persist theme preference: %w", err)
	}
	return nil
}
