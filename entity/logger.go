package entity

import "context"

// Logger specifies a contextual, structured logger.
// Satisfied by sabot, and by the no-op logger in tests.
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}
