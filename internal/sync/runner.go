package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/bigspawn/kodi-bingebase-sync/internal/logger"
)

// DefaultCheckInterval is how often the runner checks whether a scheduled pass is due.
const DefaultCheckInterval = 5 * time.Minute

// ErrPassInProgress is returned when another process holds the pass lock.
var ErrPassInProgress = errors.New("another sync pass is in progress")

// PassFunc runs one pass. It reads a fresh configuration snapshot each time.
type PassFunc func(ctx context.Context) error

// Runner executes passes one at a time on a single goroutine. Triggers that
// arrive while a pass runs collapse into one follow-up pass.
type Runner struct {
	pass          PassFunc
	interval      func() time.Duration
	lock          *flock.Flock
	trigger       chan struct{}
	checkInterval time.Duration
	now           func() time.Time

	mu      sync.Mutex
	lastRun time.Time
}

// NewRunner returns a Runner. interval is consulted at every check; a zero
// result disables scheduled passes. lockPath, when set, names the file lock
// shared with other processes running passes.
func NewRunner(pass PassFunc, interval func() time.Duration, lockPath string) *Runner {
	r := &Runner{
		pass:          pass,
		interval:      interval,
		trigger:       make(chan struct{}, 1),
		checkInterval: DefaultCheckInterval,
		now:           time.Now,
	}
	if lockPath != "" {
		r.lock = flock.New(lockPath)
	}
	return r
}

// Trigger requests a pass without blocking.
func (r *Runner) Trigger() {
	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

// LastRun returns when the last pass finished.
func (r *Runner) LastRun() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastRun
}

// Run serves triggers and the schedule until ctx is cancelled. The schedule
// starts counting from the moment Run is called.
func (r *Runner) Run(ctx context.Context) error {
	r.mu.Lock()
	if r.lastRun.IsZero() {
		r.lastRun = r.now()
	}
	r.mu.Unlock()

	ticker := time.NewTicker(r.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.trigger:
			_ = r.RunOnce(ctx)
		case <-ticker.C:
			if r.due() {
				logger.Info(ctx, "Running scheduled sync...")
				_ = r.RunOnce(ctx)
			}
		}
	}
}

// RunOnce runs a single pass under the pass lock. Errors are logged and returned.
func (r *Runner) RunOnce(ctx context.Context) (err error) {
	if r.lock != nil {
		locked, lerr := r.lock.TryLock()
		if lerr != nil {
			logger.Error(ctx, "Sync lock %s: %v", r.lock.Path(), lerr)
			return fmt.Errorf("acquire sync lock: %w", lerr)
		}
		if !locked {
			logger.Warn(ctx, "Another sync pass is running, skipping")
			return ErrPassInProgress
		}
		defer r.lock.Unlock() //nolint:errcheck // released on process exit anyway
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("sync pass panicked: %v", rec)
			logger.Error(ctx, "%v", err)
		}
		r.mu.Lock()
		r.lastRun = r.now()
		r.mu.Unlock()
	}()

	if err = r.pass(ctx); err != nil {
		logger.Error(ctx, "Sync error: %v", err)
	}
	return err
}

func (r *Runner) due() bool {
	interval := r.interval()
	if interval <= 0 {
		return false
	}
	return r.now().Sub(r.LastRun()) >= interval
}
