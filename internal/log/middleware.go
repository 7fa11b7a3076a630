package log

import (
	"context"
	"log/slog"
)

// ContextKey type for context keys
type ContextKey string

const (
	// LoggerContextKey is the context key for the logger
	LoggerContextKey ContextKey = "logger"
)

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, LoggerContextKey, logger)
}

// FromContext extracts a logger from the request context
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(LoggerContextKey).(*Logger); ok {
		return logger
	}
	return &Logger{
		Logger:    slog.Default(),
		component: "unknown",
	}
}

// StructuredLogger provides structured logging methods with context awareness
type StructuredLogger struct {
	logger *Logger
}

// NewStructuredLogger creates a new structured logger
func NewStructuredLogger(logger *Logger) *StructuredLogger {
	return &StructuredLogger{
		logger: logger,
	}
}

// LogTransactionAdded logs a successful transaction creation
func (sl *StructuredLogger) LogTransactionAdded(ctx context.Context, id, txType, date string, amount float64, category string) {
	fields := NewFields().
		WithTransaction(id, txType, date, amount, category).
		WithOperation(OpCreate)

	sl.from(ctx).InfoContext(ctx, "Transaction added", fields.ToSlice()...)
}

// LogTransactionDeleted logs a delete request and how many records it removed
func (sl *StructuredLogger) LogTransactionDeleted(ctx context.Context, id string, removed int) {
	sl.from(ctx).InfoContext(ctx, "Transaction deleted",
		FieldTxID, id,
		FieldRemoved, removed,
		FieldOperation, OpDelete)
}

// LogBudgetSet logs a budget upsert
func (sl *StructuredLogger) LogBudgetSet(ctx context.Context, category string, amount float64) {
	sl.from(ctx).InfoContext(ctx, "Budget set",
		FieldCategory, category,
		FieldAmount, amount,
		FieldOperation, OpSetBudget)
}

// LogError logs an error with structured context
func (sl *StructuredLogger) LogError(ctx context.Context, msg string, err error, operation string, fields LogFields) {
	if fields == nil {
		fields = NewFields()
	}
	allFields := fields.
		WithError(err).
		WithOperation(operation)

	sl.from(ctx).ErrorContext(ctx, msg, allFields.ToSlice()...)
}

// from prefers the request-scoped logger so records carry the request id.
func (sl *StructuredLogger) from(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(LoggerContextKey).(*Logger); ok {
		return logger.WithComponent(sl.logger.component)
	}
	return sl.logger
}
