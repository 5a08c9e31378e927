// Package cli implements the geograph command-line interface.
//
// Each command loads one or more graph documents through pkg/algo, runs a
// query or a layout pass and prints the result with lipgloss styles. The CLI
// is built using cobra and logs with charmbracelet/log.
//
// # Commands
//
//   - info: Vertex, edge, modification and component counts per file
//   - path: Shortest path between two nodes
//   - scc: Strongly connected components
//   - layout: Assign positions to unplaced nodes and save
//   - convert: Rewrite any accepted schema as the canonical one
//   - render: Draw a graph as DOT or SVG
//   - cache: Manage the result cache
//
// # Configuration
//
// --config names a TOML file with [layout] and [cache] sections; see
// [Config]. --no-cache skips the cache for one invocation.
//
// # Logging
//
// Diagnostics go to stderr with timestamps; --verbose (-v) enables debug
// lines. Command output goes to stdout.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at level, with timestamps like
// "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// timer logs how long a command step took as a structured "elapsed" field.
type timer struct {
	logger  *log.Logger
	start   time.Time
	keyvals []any
}

// startTimer starts timing. keyvals are attached to every line the timer logs.
func startTimer(l *log.Logger, keyvals ...any) *timer {
	return &timer{logger: l, start: time.Now(), keyvals: keyvals}
}

func (t *timer) fields() []any {
	elapsed := time.Since(t.start).Round(time.Millisecond)
	return append(append([]any(nil), t.keyvals...), "elapsed", elapsed)
}

// info logs msg at info level.
func (t *timer) info(msg string) { t.logger.Info(msg, t.fields()...) }

// debug logs msg at debug level.
func (t *timer) debug(msg string) { t.logger.Debug(msg, t.fields()...) }

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for worker goroutines.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// fileLogger returns the context logger tagged with a file path.
func fileLogger(ctx context.Context, path string) *log.Logger {
	return loggerFromContext(ctx).With("file", path)
}
