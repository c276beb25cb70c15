// Package logging defines the minimal structured-logging contract shared by
// the server and the services. Implementations can wrap slog, zap, zerolog,
// etc.; this project ships the slog adapter.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "vault advanced", "vault_id", id, "status", st)
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value
	// pairs. Services use it to tag their module name once.
	With(args ...any) Logger
}
