// SPDX-License-Identifier: EPL-2.0

package reload

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ik5/drumcore/kit"
	"github.com/ik5/drumcore/kitcell"
)

// DefaultDebounce is used when Config.Debounce is zero.
const DefaultDebounce = 250 * time.Millisecond

// Config configures a Coordinator.
type Config struct {
	// Dir is the kit directory to reload from.
	Dir string
	// SampleRate is the target rate samples are decoded to.
	SampleRate int
	// Debounce is how long Notify waits for filesystem events to settle
	// before triggering a rebuild. Zero selects DefaultDebounce.
	Debounce time.Duration
	// LoadOptions is passed through to kit.Load on every rebuild.
	LoadOptions kit.LoadOptions
	Logger      *slog.Logger
}

// Coordinator debounces reload requests and republishes a freshly
// decoded kit.Kit to a kitcell.Cell.
type Coordinator struct {
	dir        string
	sampleRate int
	debounce   time.Duration
	loadOpts   kit.LoadOptions
	logger     *slog.Logger
	cell       *kitcell.Cell

	mu    sync.Mutex
	timer *time.Timer

	succeeded atomic.Uint64
	failed    atomic.Uint64
}

// NewCoordinator creates a Coordinator that publishes to cell.
func NewCoordinator(cell *kitcell.Cell, cfg Config) *Coordinator {
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		cell:       cell,
		dir:        cfg.Dir,
		sampleRate: cfg.SampleRate,
		debounce:   debounce,
		loadOpts:   cfg.LoadOptions,
		logger:     logger,
	}
}

// Notify schedules a rebuild after the debounce interval, restarting the
// timer if one is already pending. Call this from a filesystem watcher
// once per event; a burst of events collapses into one rebuild.
func (c *Coordinator) Notify() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, c.rebuild)
}

// Manual cancels any pending debounced rebuild and runs one immediately,
// blocking until it completes.
func (c *Coordinator) Manual() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	c.rebuild()
}

// Close cancels any pending debounced rebuild. The Coordinator must not
// be used after Close.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Coordinator) rebuild() {
	k, errs := kit.Load(context.Background(), c.dir, c.sampleRate, c.loadOpts)
	if k == nil {
		c.failed.Add(1)
		c.logger.Error("kit reload failed", "dir", c.dir, "errors", errs)
		return
	}

	if len(errs) > 0 {
		c.logger.Warn("kit reload finished with per-file errors", "dir", c.dir, "error_count", len(errs))
	}

	c.cell.Store(k)
	c.succeeded.Add(1)
	c.logger.Info("kit reloaded", "dir", c.dir, "name", k.Name)
}

// Stats reports how many rebuilds have succeeded or failed since the
// Coordinator was created.
type Stats struct {
	Succeeded uint64
	Failed    uint64
}

func (c *Coordinator) Stats() Stats {
	return Stats{Succeeded: c.succeeded.Load(), Failed: c.failed.Load()}
}
