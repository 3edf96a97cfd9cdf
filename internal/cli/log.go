// Package cli implements the graphsearch command-line interface.
//
// The CLI loads graphs from TOML descriptions and mazes from plain-text
// grids, then runs the library's traversal and shortest-path operations:
//
//   - dfs / bfs:  print the visit order from a start vertex
//   - cycle:      report whether the graph contains a cycle
//   - dijkstra:   print single-source shortest distances (directed graphs)
//   - maze:       solve a character-grid maze, optionally rendering it
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// built with charmbracelet/log and passed through context.Context.
//
// Exit codes follow shell convention: 0 on success, 1 on any error,
// 130 on interrupt.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w, filtered at level, with
// compact timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
// A distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default() so commands always have a usable logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
