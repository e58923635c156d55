package usecase

import (
	"sync"
	"time"

	"web_estimate/internal/clock"
	"web_estimate/internal/domain/selection"
)

// SelectionCache holds live selections per session. Each entry has its own
// lock so one session never waits on another. Entries idle for longer than
// idleTTL are dropped on the next access; the persisted state rebuilds them.
type SelectionCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	idleTTL time.Duration
	clock   clock.Clock
}

type cacheEntry struct {
	mu       sync.Mutex
	sel      *selection.Selection
	lastUsed time.Time
}

func NewSelectionCache(idleTTL time.Duration, clk clock.Clock) *SelectionCache {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &SelectionCache{entries: map[string]*cacheEntry{}, idleTTL: idleTTL, clock: clk}
}

// Do runs fn with the session's selection locked. load builds the selection
// when the session has no live entry.
func (c *SelectionCache) Do(sessionID string, load func() *selection.Selection, fn func(*selection.Selection)) {
	e := c.entry(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sel == nil {
		e.sel = load()
	}
	fn(e.sel)
}

// Replace installs sel as the session's live selection.
func (c *SelectionCache) Replace(sessionID string, sel *selection.Selection) {
	e := c.entry(sessionID)
	e.mu.Lock()
	e.sel = sel
	e.mu.Unlock()
}

func (c *SelectionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *SelectionCache) entry(sessionID string) *cacheEntry {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.idleTTL > 0 {
		for id, e := range c.entries {
			if id != sessionID && now.Sub(e.lastUsed) > c.idleTTL {
				delete(c.entries, id)
			}
		}
	}
	e, ok := c.entries[sessionID]
	if !ok {
		e = &cacheEntry{}
		c.entries[sessionID] = e
	}
	e.lastUsed = now
	return e
}
