package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(buf *bytes.Buffer, component string) *Logger {
	return New(Config{Level: slog.LevelDebug, Format: "text", Component: component, Output: buf})
}

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf, ComponentLedger)
	l.Info("hello", "k", "v")
	out := buf.String()
	if !strings.Contains(out, "component=ledger") || !strings.Contains(out, "k=v") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Format: "json", Component: ComponentApp, Output: &buf})
	l.Debug("hidden")
	l.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"msg":"shown"`) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	base := newBufferLogger(&buf, ComponentHTTP).With(FieldRequestID, "req-1")

	ctx := NewContext(context.Background(), base)
	FromContext(ctx).Info("inside")

	if !strings.Contains(buf.String(), "request_id=req-1") {
		t.Fatalf("request id not propagated: %q", buf.String())
	}
	if FromContext(context.Background()).Component() != "unknown" {
		t.Fatalf("expected fallback logger")
	}
}

func TestStructuredLoggerUsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	reqLogger := newBufferLogger(&buf, ComponentTrace).With(FieldRequestID, "req-2")
	sl := NewStructuredLogger(newBufferLogger(&bytes.Buffer{}, ComponentLedger))

	sl.LogBudgetSet(NewContext(context.Background(), reqLogger), "Dining", 10)

	out := buf.String()
	if !strings.Contains(out, "request_id=req-2") || !strings.Contains(out, "component=ledger") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestStructuredLoggerLedgerEvents(t *testing.T) {
	var buf bytes.Buffer
	sl := NewStructuredLogger(newBufferLogger(&buf, ComponentLedger))
	ctx := context.Background()

	sl.LogTransactionAdded(ctx, "id-1", "expense", "2024-03-05", 200.5, "Groceries")
	sl.LogTransactionDeleted(ctx, "id-1", 1)
	sl.LogBudgetSet(ctx, "Groceries", 300)
	sl.LogError(ctx, "save failed", errors.New("disk full"), OpSave, nil)

	out := buf.String()
	for _, want := range []string{"transaction_id=id-1", "removed=1", "operation=set_budget", "error=\"disk full\"", "component=ledger"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
