package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bigspawn/kodi-bingebase-sync/internal/bingebase"
	"github.com/bigspawn/kodi-bingebase-sync/internal/logger"
	"github.com/bigspawn/kodi-bingebase-sync/internal/media"
	"github.com/bigspawn/kodi-bingebase-sync/internal/state"
)

// Notices shown to the user.
const (
	NoticeStart  = "Syncing..."
	NoticeFailed = "Sync failed"
)

// Options is the configuration snapshot a pass runs with.
type Options struct {
	Push   bool
	Pull   bool
	DryRun bool
}

// Engine runs reconciliation passes.
type Engine struct {
	library  Library
	remote   Remote
	cursor   CursorStore
	notifier Notifier
	now      func() time.Time
}

// NewEngine wires an engine. notifier may be nil.
func NewEngine(lib Library, remote Remote, cursor CursorStore, notifier Notifier) *Engine {
	return &Engine{
		library:  lib,
		remote:   remote,
		cursor:   cursor,
		notifier: notifier,
		now:      time.Now,
	}
}

// Run executes one pass: push, read cursor, pull, advance cursor. A phase
// failure is recorded and the next phase still runs; the cursor only moves
// when the pull succeeded. The returned error joins the phase failures.
func (e *Engine) Run(ctx context.Context, opts Options) (*Report, error) {
	report := &Report{
		PassID:      uuid.NewString(),
		StartTime:   e.now(),
		DryRun:      opts.DryRun,
		PushEnabled: opts.Push,
		PullEnabled: opts.Pull,
	}

	log := logger.FromContext(ctx)
	if log == nil {
		log = logger.Default()
	}
	ctx = log.WithPrefix(report.PassID[:8]).WithContext(ctx)

	logger.Stage(ctx, "Starting sync...")
	e.notify(ctx, NoticeStart, false)

	if opts.Push {
		report.Push = e.push(ctx, opts, report)
	}

	report.Cursor = e.readCursor(ctx)

	// Taken before the export so history recorded while the pull runs is
	// picked up by the next pass.
	next := media.CursorTimestamp(e.now())

	if opts.Pull {
		report.Pull = e.pull(ctx, report.Cursor, opts, report)
	}

	if report.Pull.Err == nil && !opts.DryRun {
		if err := e.cursor.Set(state.KeyLastSync, next); err != nil {
			report.CursorErr = fmt.Errorf("save cursor: %w", err)
		} else {
			report.NextCursor = next
		}
	}

	report.EndTime = e.now()

	if err := report.Err(); err != nil {
		e.notify(ctx, NoticeFailed, true)
		return report, err
	}

	e.notify(ctx, report.Summary(), false)
	return report, nil
}

func (e *Engine) notify(ctx context.Context, message string, isError bool) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.Notify(ctx, message, isError); err != nil {
		logger.Debug(ctx, "Notification %q not shown: %v", message, err)
	}
}

func (e *Engine) readCursor(ctx context.Context) string {
	cursor, err := e.cursor.Get(state.KeyLastSync)
	if err != nil {
		// The pull is idempotent, so starting over only costs bandwidth.
		logger.Warn(ctx, "Sync cursor unreadable, pulling full history: %v", err)
		return ""
	}
	return cursor
}

func (e *Engine) load(ctx context.Context, kind media.Kind, watchedOnly bool, report *Report) []media.WatchedItem {
	items, err := LoadAll(ctx, e.library, kind, watchedOnly)
	if err != nil {
		report.LibraryErrors++
		logger.Warn(ctx, "Kodi library query failed, treating as empty: %v", err)
	}
	return items
}

func (e *Engine) push(ctx context.Context, opts Options, report *Report) PushResult {
	logger.Stage(ctx, "Pushing Kodi history to Bingebase...")

	movies := e.load(ctx, media.KindMovie, true, report)
	episodes := e.load(ctx, media.KindEpisode, true, report)

	movieRecords := make([]bingebase.MovieRecord, 0, len(movies))
	for _, item := range movies {
		movieRecords = append(movieRecords, FormatMovie(item))
	}

	formatter := NewFormatter(e.library)
	episodeRecords := make([]bingebase.EpisodeRecord, 0, len(episodes))
	for _, item := range episodes {
		episodeRecords = append(episodeRecords, formatter.FormatEpisode(ctx, item))
	}
	report.ShowLookups = formatter.Lookups()

	if len(movieRecords) == 0 && len(episodeRecords) == 0 {
		logger.Info(ctx, "No watched items in Kodi, nothing to push")
		return PushResult{Skipped: true}
	}

	result := PushResult{Movies: len(movieRecords), Episodes: len(episodeRecords)}

	if opts.DryRun {
		logger.InfoDryRun(ctx, "Would import %d movies, %d episodes", result.Movies, result.Episodes)
		return result
	}

	if _, err := e.remote.ImportHistory(ctx, movieRecords, episodeRecords); err != nil {
		return PushResult{Err: fmt.Errorf("import history: %w", err)}
	}

	logger.InfoSuccess(ctx, "Imported %d movies, %d episodes", result.Movies, result.Episodes)
	return result
}

func (e *Engine) pull(ctx context.Context, since string, opts Options, report *Report) PullResult {
	var result PullResult

	if since == "" {
		logger.Stage(ctx, "Pulling full Bingebase history...")
	} else {
		logger.Stage(ctx, "Pulling Bingebase history since %s...", since)
	}

	export, err := e.remote.ExportHistory(ctx, since)
	if err != nil {
		result.Err = fmt.Errorf("export history: %w", err)
		return result
	}
	if export.Empty() {
		logger.Info(ctx, "No new history on Bingebase")
		return result
	}

	if len(export.Movies) > 0 {
		index := NewIndex(e.load(ctx, media.KindMovie, false, report))
		logger.Debug(ctx, "Matching %d remote movies against %d local", len(export.Movies), index.Len())
		e.apply(ctx, media.KindMovie, export.Movies, index, opts, report, &result)
	}
	if len(export.Episodes) > 0 {
		index := NewIndex(e.load(ctx, media.KindEpisode, false, report))
		logger.Debug(ctx, "Matching %d remote episodes against %d local", len(export.Episodes), index.Len())
		e.apply(ctx, media.KindEpisode, export.Episodes, index, opts, report, &result)
	}

	logger.InfoSuccess(ctx, "Marked %d items as watched in Kodi", result.Marked)
	return result
}

func (e *Engine) apply(
	ctx context.Context,
	kind media.Kind,
	records []media.Record,
	index *Index,
	opts Options,
	report *Report,
	result *PullResult,
) {
	for _, rec := range records {
		result.Received++
		title := rec.String(media.KeyTitle)

		ids := media.Normalize(rec)
		if ids.Empty() {
			result.NoIDs++
			report.recordSkip(kind, title, "no identifiers")
			logger.DebugDecision(ctx, "Remote %s %q has no identifiers, skipping", kind, title)
			continue
		}

		item, ok := index.Find(ids)
		if !ok {
			result.Unmatched++
			report.recordSkip(kind, title, "not in library: "+ids.String())
			logger.DebugDecision(ctx, "Remote %s %q (%s) not in Kodi library", kind, title, ids)
			continue
		}

		if item.Watched() {
			result.AlreadyWatched++
			logger.DebugDecision(ctx, "%s already watched in Kodi", item)
			continue
		}

		lastPlayed, ok := media.KodiTimestamp(rec.String(media.KeyWatchedAt))
		if !ok && rec.String(media.KeyWatchedAt) != "" {
			logger.Debug(ctx, "Ignoring unparseable watchedAt %q for %s", rec.String(media.KeyWatchedAt), item)
		}

		if opts.DryRun {
			result.Marked++
			logger.InfoDryRun(ctx, "Would mark %s as watched", item)
			continue
		}

		if err := e.markWatched(ctx, item, lastPlayed); err != nil {
			result.WriteErrors++
			report.recordError(kind, item.String(), err)
			logger.Warn(ctx, "Could not mark %s as watched: %v", item, err)
			continue
		}

		result.Marked++
		logger.Debug(ctx, "Marked %s as watched", item)
	}
}

func (e *Engine) markWatched(ctx context.Context, item media.WatchedItem, lastPlayed string) error {
	if item.Kind == media.KindEpisode {
		return e.library.MarkEpisodeWatched(ctx, item.LocalKey, lastPlayed)
	}
	return e.library.MarkMovieWatched(ctx, item.LocalKey, lastPlayed)
}
