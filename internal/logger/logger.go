// Package logger provides the leveled console logger used by every component
// of the sync tool. A Logger travels in the context so that per-pass prefixes
// reach the HTTP clients and the engine without extra parameters.
package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"

	"github.com/mattn/go-isatty"
)

// Level represents logging verbosity
type Level int

const (
	LevelError Level = iota // Always shown
	LevelWarn               // Always shown
	LevelInfo               // Normal mode
	LevelDebug              // Verbose mode only
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// Logger provides leveled logging with color support
type Logger struct {
	level     Level
	useColors bool
	prefix    string
	errorLog  *log.Logger
	warnLog   *log.Logger
	infoLog   *log.Logger
	debugLog  *log.Logger
}

// New creates a logger; verbose enables debug output.
func New(verbose bool) *Logger {
	level := LevelInfo
	if verbose {
		level = LevelDebug
	}

	return &Logger{
		level:     level,
		useColors: isTerminal(os.Stdout),
		errorLog:  log.New(os.Stderr, "", 0),
		warnLog:   log.New(os.Stdout, "", 0),
		infoLog:   log.New(os.Stdout, "", 0),
		debugLog:  log.New(os.Stdout, "", 0),
	}
}

// SetOutput sets the output for all levels. Colors are kept only when w is a terminal.
func (l *Logger) SetOutput(w io.Writer) {
	l.errorLog.SetOutput(w)
	l.warnLog.SetOutput(w)
	l.infoLog.SetOutput(w)
	l.debugLog.SetOutput(w)
	f, ok := w.(*os.File)
	l.useColors = ok && isTerminal(f)
}

// SetFlags sets the standard log flags (timestamps) for all levels.
func (l *Logger) SetFlags(flags int) {
	l.errorLog.SetFlags(flags)
	l.warnLog.SetFlags(flags)
	l.infoLog.SetFlags(flags)
	l.debugLog.SetFlags(flags)
}

// WithPrefix returns a logger sharing l's outputs that prepends "[prefix] ".
func (l *Logger) WithPrefix(prefix string) *Logger {
	clone := *l
	clone.prefix = "[" + prefix + "] "
	return &clone
}

// Verbose reports whether debug output is enabled.
func (l *Logger) Verbose() bool {
	return l.level >= LevelDebug
}

func (l *Logger) colorize(color, text string) string {
	if !l.useColors {
		return text
	}
	return color + text + colorReset
}

// Info logs informational messages
func (l *Logger) Info(format string, args ...any) {
	if l.level >= LevelInfo {
		l.infoLog.Print(l.prefix + fmt.Sprintf(format, args...))
	}
}

// InfoSuccess logs success with green checkmark
func (l *Logger) InfoSuccess(format string, args ...any) {
	if l.level >= LevelInfo {
		icon := l.colorize(colorGreen, "✓")
		l.infoLog.Printf("%s%s %s", l.prefix, icon, fmt.Sprintf(format, args...))
	}
}

// InfoDryRun logs what a dry run would have changed
func (l *Logger) InfoDryRun(format string, args ...any) {
	if l.level >= LevelInfo {
		icon := l.colorize(colorBlue, "→")
		l.infoLog.Printf("%s%s %s", l.prefix, icon, fmt.Sprintf(format, args...))
	}
}

// Warn logs warnings (always visible)
func (l *Logger) Warn(format string, args ...any) {
	if l.level >= LevelWarn {
		icon := l.colorize(colorYellow, "⚠")
		l.warnLog.Printf("%s%s %s", l.prefix, icon, fmt.Sprintf(format, args...))
	}
}

// Error logs errors (always visible)
func (l *Logger) Error(format string, args ...any) {
	if l.level >= LevelError {
		icon := l.colorize(colorRed, "✗")
		l.errorLog.Printf("%s%s %s", l.prefix, icon, fmt.Sprintf(format, args...))
	}
}

// Debug logs debug information (verbose mode only)
func (l *Logger) Debug(format string, args ...any) {
	if l.level >= LevelDebug {
		l.debugLog.Printf("%s[DEBUG] %s", l.prefix, fmt.Sprintf(format, args...))
	}
}

// DebugDecision logs matching and skip decisions (verbose mode only)
func (l *Logger) DebugDecision(format string, args ...any) {
	if l.level >= LevelDebug {
		l.debugLog.Printf("%s[DECISION] %s", l.prefix, fmt.Sprintf(format, args...))
	}
}

// DebugHTTP logs HTTP requests and responses (verbose mode only)
func (l *Logger) DebugHTTP(format string, args ...any) {
	if l.level >= LevelDebug {
		l.debugLog.Printf("%s[HTTP] %s", l.prefix, fmt.Sprintf(format, args...))
	}
}

// Stage logs a high-level stage (e.g., "Pulling history...")
func (l *Logger) Stage(format string, args ...any) {
	if l.level >= LevelInfo {
		colored := l.colorize(colorBold+colorCyan, fmt.Sprintf(format, args...))
		l.infoLog.Print(l.prefix + colored)
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type ctxKey struct{}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New(false))
}

// Default returns the process-wide logger used when a context carries none.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// WithContext stores l in ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, or nil.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return nil
	}
	l, _ := ctx.Value(ctxKey{}).(*Logger)
	return l
}

func from(ctx context.Context) *Logger {
	if l := FromContext(ctx); l != nil {
		return l
	}
	return Default()
}

func Info(ctx context.Context, format string, args ...any) {
	from(ctx).Info(format, args...)
}

func InfoSuccess(ctx context.Context, format string, args ...any) {
	from(ctx).InfoSuccess(format, args...)
}

func InfoDryRun(ctx context.Context, format string, args ...any) {
	from(ctx).InfoDryRun(format, args...)
}

func Warn(ctx context.Context, format string, args ...any) {
	from(ctx).Warn(format, args...)
}

func Error(ctx context.Context, format string, args ...any) {
	from(ctx).Error(format, args...)
}

func Debug(ctx context.Context, format string, args ...any) {
	from(ctx).Debug(format, args...)
}

func DebugDecision(ctx context.Context, format string, args ...any) {
	from(ctx).DebugDecision(format, args...)
}

func DebugHTTP(ctx context.Context, format string, args ...any) {
	from(ctx).DebugHTTP(format, args...)
}

func Stage(ctx context.Context, format string, args ...any) {
	from(ctx).Stage(format, args...)
}
