// Package autocomplete turns raw keystrokes into a throttled stream of
// address suggestion updates without flooding the network.
package autocomplete

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"blueace_booking_client/internal/api"
	"blueace_booking_client/platform/config"
	"blueace_booking_client/platform/logger"

	"github.com/bep/debounce"
)

// Fetcher issues the suggestion lookup. *api.Client satisfies this.
type Fetcher interface {
	Autocomplete(ctx context.Context, input string) ([]api.AddressSuggestion, error)
}

// Coordinator debounces text changes and keeps the current suggestion list.
// Fetch failures are swallowed; an empty list is an acceptable degraded state.
type Coordinator struct {
	fetcher   Fetcher
	log       *logger.Logger
	debounced func(func())
	minQuery  int

	// issued tags every executed fetch; responses from superseded fetches
	// are discarded so a slow older request cannot overwrite a newer one.
	issued atomic.Uint64

	mu          sync.Mutex
	suggestions []api.AddressSuggestion
	visible     bool
}

// New creates a coordinator with the configured quiet period and minimum
// query length.
func New(fetcher Fetcher, cfg config.AutocompleteConfig, log *logger.Logger) *Coordinator {
	interval := cfg.GetDebounceInterval()
	if interval <= 0 {
		interval = 300 * time.Millisecond
	}

	minQuery := cfg.GetMinQueryLength()
	if minQuery < 1 {
		minQuery = 3
	}

	return &Coordinator{
		fetcher:   fetcher,
		log:       log,
		debounced: debounce.New(interval),
		minQuery:  minQuery,
	}
}

// OnTextChanged schedules a suggestion fetch for the new text. Inputs shorter
// than the minimum clear the list immediately and schedule nothing; a shrink
// also supersedes any pending or in-flight fetch for earlier, longer text.
func (c *Coordinator) OnTextChanged(ctx context.Context, text string) {
	if len([]rune(text)) < c.minQuery {
		c.issued.Add(1)
		c.debounced(func() {})

		c.mu.Lock()
		c.suggestions = nil
		c.visible = false
		c.mu.Unlock()
		return
	}

	c.debounced(func() {
		c.fetch(ctx, text)
	})
}

func (c *Coordinator) fetch(ctx context.Context, text string) {
	seq := c.issued.Add(1)

	results, err := c.fetcher.Autocomplete(ctx, text)
	if err != nil {
		// Best-effort lookup: degrade silently, the field stays editable.
		c.log.Debug("autocomplete fetch failed", "error", err)
		return
	}

	if c.issued.Load() != seq {
		c.log.Debug("autocomplete response superseded", "seq", seq)
		return
	}

	c.mu.Lock()
	c.suggestions = results
	c.visible = true
	c.mu.Unlock()
}

// Suggestions returns the current suggestion list.
func (c *Coordinator) Suggestions() []api.AddressSuggestion {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suggestions
}

// Visible reports whether the suggestion list should be shown.
func (c *Coordinator) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Dismiss hides the suggestion list, used after a selection is made.
func (c *Coordinator) Dismiss() {
	c.mu.Lock()
	c.visible = false
	c.mu.Unlock()
}
