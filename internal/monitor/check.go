package monitor

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/firefly-engineering/berth-ctl/internal/audit"
	"github.com/firefly-engineering/berth-ctl/internal/health"
	"github.com/firefly-engineering/berth-ctl/internal/logging"
)

// DefaultConcurrency bounds the number of probes CheckAll runs at once.
const DefaultConcurrency = 8

// CheckResult holds the result of a single readiness check.
type CheckResult struct {
	Name   string
	URL    string
	Status health.Status
}

// CheckAll probes every monitor concurrently. Results keep the order of
// monitors.
func CheckAll(ctx context.Context, monitors []*Monitor, limit int) []CheckResult {
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	results := make([]CheckResult, len(monitors))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, m := range monitors {
		g.Go(func() error {
			res := CheckResult{Name: m.Name(), Status: health.StatusNotReady}
			if u, err := m.URL(); err == nil {
				res.URL = u
			}
			if m.IsRunning(gctx) {
				res.Status = health.StatusReady
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Watcher periodically checks a set of monitors.
type Watcher struct {
	interval time.Duration
	monitors []*Monitor
	auditLog *audit.Logger
	onResult func([]CheckResult)
	last     map[string]health.Status
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithAuditLogger sets the audit logger for recording readiness changes.
func WithAuditLogger(logger *audit.Logger) Option {
	return func(w *Watcher) {
		w.auditLog = logger
	}
}

// WithResultHandler sets a callback invoked after every round of checks.
func WithResultHandler(fn func([]CheckResult)) Option {
	return func(w *Watcher) {
		w.onResult = fn
	}
}

// DefaultInterval is the Watcher interval used when none is given.
const DefaultInterval = 10 * time.Second

// NewWatcher creates a Watcher. A non-positive interval means DefaultInterval.
func NewWatcher(interval time.Duration, monitors []*Monitor, opts ...Option) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	w := &Watcher{
		interval: interval,
		monitors: monitors,
		last:     make(map[string]health.Status),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run starts the watch loop. It blocks until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	logging.Debug("starting readiness watcher", "interval", w.interval, "containers", len(w.monitors))

	// Run an immediate check, then loop on interval.
	w.checkOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Debug("readiness watcher stopping")
			return ctx.Err()
		case <-ticker.C:
			w.checkOnce(ctx)
		}
	}
}

func (w *Watcher) checkOnce(ctx context.Context) []CheckResult {
	results := CheckAll(ctx, w.monitors, 0)

	for _, r := range results {
		prev, seen := w.last[r.Name]
		w.last[r.Name] = r.Status
		if seen && prev == r.Status {
			continue
		}
		if w.auditLog == nil {
			continue
		}
		if r.Status == health.StatusReady {
			_ = w.auditLog.LogEvent(audit.EventReady, r.Name, "", r.URL)
		} else if seen {
			_ = w.auditLog.LogEvent(audit.EventError, r.Name, "", "no longer ready: "+r.URL)
		}
	}

	if w.onResult != nil {
		w.onResult(results)
	}
	return results
}
