package syncer

import (
	"errors"
	"fmt"
	"time"

	"github.com/bigspawn/kodi-bingebase-sync/internal/logger"
	"github.com/bigspawn/kodi-bingebase-sync/internal/media"
)

// PushResult is the outcome of the push phase.
type PushResult struct {
	Movies   int
	Episodes int
	// Skipped is set when the library had nothing watched to send.
	Skipped bool
	Err     error
}

// PullResult is the outcome of the pull phase.
type PullResult struct {
	Received       int
	Marked         int
	AlreadyWatched int
	Unmatched      int
	NoIDs          int
	WriteErrors    int
	Err            error
}

// ItemResult records one remote record the pull could not apply.
type ItemResult struct {
	Kind   media.Kind
	Title  string
	Reason string
	Error  error
}

// Report describes one pass. It is created by Engine.Run and not shared.
type Report struct {
	PassID    string
	StartTime time.Time
	EndTime   time.Time
	DryRun    bool

	PushEnabled bool
	Push        PushResult
	PullEnabled bool
	Pull        PullResult

	// Cursor is the value the pull used; NextCursor is the value written,
	// empty when the cursor was left alone.
	Cursor     string
	NextCursor string
	CursorErr  error

	LibraryErrors int
	ShowLookups   int

	Skipped []ItemResult
	Errors  []ItemResult
}

func (r *Report) recordSkip(kind media.Kind, title, reason string) {
	r.Skipped = append(r.Skipped, ItemResult{Kind: kind, Title: title, Reason: reason})
}

func (r *Report) recordError(kind media.Kind, title string, err error) {
	r.Errors = append(r.Errors, ItemResult{Kind: kind, Title: title, Error: err})
}

// Err joins the phase failures of the pass, or returns nil.
func (r *Report) Err() error {
	return errors.Join(r.Push.Err, r.Pull.Err, r.CursorErr)
}

// Summary is the one-line completion notice.
func (r *Report) Summary() string {
	if r.DryRun {
		return fmt.Sprintf("Dry run: %d movies, %d episodes", r.Push.Movies, r.Push.Episodes)
	}
	return fmt.Sprintf("Sync complete: %d movies, %d episodes", r.Push.Movies, r.Push.Episodes)
}

// Print writes the pass statistics to l.
func (r *Report) Print(l *logger.Logger) {
	l.Info("")
	l.Stage("=== Sync Complete ===")
	l.Info("Duration: %v", r.EndTime.Sub(r.StartTime).Round(time.Millisecond))

	switch {
	case !r.PushEnabled:
		l.Info("Push: disabled")
	case r.Push.Err != nil:
		l.Error("Push failed: %v", r.Push.Err)
	case r.Push.Skipped:
		l.Info("Push: nothing watched to send")
	default:
		l.InfoSuccess("Pushed: %d movies, %d episodes", r.Push.Movies, r.Push.Episodes)
	}

	switch {
	case !r.PullEnabled:
		l.Info("Pull: disabled")
	case r.Pull.Err != nil:
		l.Error("Pull failed: %v", r.Pull.Err)
	default:
		l.InfoSuccess("Marked watched: %d of %d received", r.Pull.Marked, r.Pull.Received)
		if r.Pull.AlreadyWatched > 0 {
			l.Info("Already watched: %d", r.Pull.AlreadyWatched)
		}
		if r.Pull.Unmatched > 0 {
			l.Info("Not in library: %d", r.Pull.Unmatched)
		}
		if r.Pull.NoIDs > 0 {
			l.Warn("Without identifiers: %d", r.Pull.NoIDs)
		}
	}

	if r.LibraryErrors > 0 {
		l.Warn("Library queries failed: %d", r.LibraryErrors)
	}

	if len(r.Errors) > 0 {
		l.Error("Failed updates:")
		for i, item := range r.Errors {
			l.Error("  %d. %s: %v", i+1, item.Title, item.Error)
		}
	}

	if len(r.Skipped) > 0 && l.Verbose() {
		l.Debug("Skipped items:")
		for i, item := range r.Skipped {
			l.Debug("  %d. [%s] %s: %s", i+1, item.Kind, item.Title, item.Reason)
		}
	}

	if r.CursorErr != nil {
		l.Error("Cursor not saved: %v", r.CursorErr)
	} else if r.NextCursor != "" {
		l.Info("Next sync from: %s", r.NextCursor)
	}
	l.Info("")
}
