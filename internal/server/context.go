package server

import (
	"context"
	"log/slog"
)

type ctxKey int

const (
	ctxKeyLogger ctxKey = iota
	ctxKeyWorker
)

// WithLogger returns a context carrying log.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger, log)
}

// LoggerFrom returns the logger stored in ctx, or one that discards.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKeyLogger).(*slog.Logger); ok && log != nil {
		return log
	}
	return discardLogger
}

// WithWorkerID returns a context carrying the key of the worker serving it.
func WithWorkerID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyWorker, id)
}

// WorkerIDFrom returns the worker key stored in ctx, or "".
func WorkerIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyWorker).(string)
	return id
}
