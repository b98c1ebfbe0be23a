package contract

import "context"

// Completer wraps one text-completion round trip. Implementations are
// fail-soft: any transport or service failure is absorbed and replaced with
// a fixed fallback string, so callers always receive usable text.
type Completer interface {
	Complete(ctx context.Context, turns []Turn, temperature float64) string
}

// ToolExecutor dispatches an extracted tool invocation. The returned value is
// JSON-marshalable; failures of any kind are reported as a structured
// {"error": ...} result, never as a panic or a Go error.
type ToolExecutor interface {
	Execute(ctx context.Context, inv ToolInvocation) any
}
