package concierge

import (
	"context"
	"errors"
	"strings"
	"testing"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

const testPrompt = "You are a restaurant concierge."

// scriptedCompleter replays canned outputs and records every request for
// later inspection.
type scriptedCompleter struct {
	outputs []string
	calls   [][]contractx.Turn
}

func (s *scriptedCompleter) Complete(ctx context.Context, turns []contractx.Turn, temperature float64) string {
	copied := make([]contractx.Turn, len(turns))
	copy(copied, turns)
	s.calls = append(s.calls, copied)

	if len(s.outputs) == 0 {
		return ""
	}
	out := s.outputs[0]
	s.outputs = s.outputs[1:]
	return out
}

type fakeExecutor struct {
	result any
	got    []contractx.ToolInvocation
}

func (f *fakeExecutor) Execute(ctx context.Context, inv contractx.ToolInvocation) any {
	f.got = append(f.got, inv)
	return f.result
}

func newTestConcierge(t *testing.T, completer contractx.Completer, tools contractx.ToolExecutor) *Concierge {
	t.Helper()

	c, err := New(completer, tools, testPrompt)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestRunStepDirectReply(t *testing.T) {
	t.Parallel()

	completer := &scriptedCompleter{outputs: []string{"We have many great options!"}}
	tools := &fakeExecutor{}
	c := newTestConcierge(t, completer, tools)

	step, err := c.RunStep(context.Background(), "any vegetarian places?", nil)
	if err != nil {
		t.Fatalf("RunStep: %v", err)
	}
	if step.Reply != "We have many great options!" {
		t.Fatalf("unexpected reply: %q", step.Reply)
	}
	if step.ToolResult != nil {
		t.Fatalf("no tool result expected, got %v", step.ToolResult)
	}
	if len(completer.calls) != 1 {
		t.Fatalf("direct replies must use a single completion call, got %d", len(completer.calls))
	}
	if len(tools.got) != 0 {
		t.Fatalf("no tool should run, got %v", tools.got)
	}
}

func TestRunStepToolPath(t *testing.T) {
	t.Parallel()

	completer := &scriptedCompleter{outputs: []string{
		`Let me check. {"tool": "search_restaurants", "args": {"area": "Downtown"}}`,
		"I found two places downtown.",
	}}
	tools := &fakeExecutor{result: map[string]any{"count": 2}}
	c := newTestConcierge(t, completer, tools)

	step, err := c.RunStep(context.Background(), "anything downtown?", nil)
	if err != nil {
		t.Fatalf("RunStep: %v", err)
	}
	if step.Reply != "I found two places downtown." {
		t.Fatalf("unexpected reply: %q", step.Reply)
	}
	result, ok := step.ToolResult.(map[string]any)
	if !ok || result["count"] != 2 {
		t.Fatalf("unexpected tool result: %v", step.ToolResult)
	}

	if len(tools.got) != 1 {
		t.Fatalf("expected one tool invocation, got %d", len(tools.got))
	}
	if tools.got[0].Tool != "search_restaurants" || tools.got[0].Args["area"] != "Downtown" {
		t.Fatalf("unexpected invocation: %+v", tools.got[0])
	}

	if len(completer.calls) != 2 {
		t.Fatalf("tool path must use two completion calls, got %d", len(completer.calls))
	}
}

func TestRunStepSummarizationRequestShape(t *testing.T) {
	t.Parallel()

	completer := &scriptedCompleter{outputs: []string{
		`{"tool": "check_availability", "args": {"restaurant_id": "R1"}}`,
		"That slot is free.",
	}}
	tools := &fakeExecutor{result: map[string]any{"available": true}}
	c := newTestConcierge(t, completer, tools)

	history := []contractx.Turn{
		{Role: contractx.RoleUser, Content: "hi"},
		{Role: contractx.RoleAssistant, Content: "hello"},
	}
	if _, err := c.RunStep(context.Background(), "is R1 free tonight?", history); err != nil {
		t.Fatalf("RunStep: %v", err)
	}

	summary := completer.calls[1]
	// system prompt + 2 history turns + user turn + assistant invocation +
	// system tool result
	if len(summary) != 6 {
		t.Fatalf("unexpected summarization turn count: %d", len(summary))
	}
	if summary[0].Role != contractx.RoleSystem || summary[0].Content != testPrompt {
		t.Fatalf("summarization must lead with the policy prompt: %+v", summary[0])
	}

	invTurn := summary[len(summary)-2]
	if invTurn.Role != contractx.RoleAssistant || !strings.Contains(invTurn.Content, "check_availability") {
		t.Fatalf("missing serialized invocation turn: %+v", invTurn)
	}

	resultTurn := summary[len(summary)-1]
	if resultTurn.Role != contractx.RoleSystem {
		t.Fatalf("tool result must arrive as a system turn: %+v", resultTurn)
	}
	if !strings.HasPrefix(resultTurn.Content, "TOOL_RESULT: ") {
		t.Fatalf("tool result turn is unlabeled: %q", resultTurn.Content)
	}
	if !strings.Contains(resultTurn.Content, `"available":true`) {
		t.Fatalf("tool result not serialized: %q", resultTurn.Content)
	}
}

func TestRunStepDoesNotMutateCallerHistory(t *testing.T) {
	t.Parallel()

	completer := &scriptedCompleter{outputs: []string{"sure"}}
	c := newTestConcierge(t, completer, &fakeExecutor{})

	history := make([]contractx.Turn, 0, 8)
	history = append(history, contractx.Turn{Role: contractx.RoleUser, Content: "hi"})
	snapshot := make([]contractx.Turn, len(history))
	copy(snapshot, history)

	if _, err := c.RunStep(context.Background(), "book me a table", history); err != nil {
		t.Fatalf("RunStep: %v", err)
	}

	if len(history) != len(snapshot) {
		t.Fatalf("caller history length changed: %d", len(history))
	}
	for i := range history {
		if history[i] != snapshot[i] {
			t.Fatalf("caller history mutated at %d: %+v", i, history[i])
		}
	}
	// The spare capacity of the caller's slice must also stay untouched.
	spare := history[:cap(history)]
	for i := len(history); i < len(spare); i++ {
		if spare[i] != (contractx.Turn{}) {
			t.Fatalf("caller slice capacity written at %d: %+v", i, spare[i])
		}
	}
}

func TestRunStepEmptyMessage(t *testing.T) {
	t.Parallel()

	c := newTestConcierge(t, &scriptedCompleter{}, &fakeExecutor{})

	if _, err := c.RunStep(context.Background(), "   ", nil); !errors.Is(err, ErrInvalidMessage) {
		t.Fatalf("expected ErrInvalidMessage, got %v", err)
	}
}

func TestRunStepUnknownToolStillSummarized(t *testing.T) {
	t.Parallel()

	completer := &scriptedCompleter{outputs: []string{
		`{"tool": "teleport_guest", "args": {}}`,
		"Sorry, I can't do that.",
	}}
	tools := &fakeExecutor{result: map[string]any{"error": "Unknown tool 'teleport_guest'"}}
	c := newTestConcierge(t, completer, tools)

	step, err := c.RunStep(context.Background(), "teleport me", nil)
	if err != nil {
		t.Fatalf("RunStep: %v", err)
	}
	if step.Reply != "Sorry, I can't do that." {
		t.Fatalf("unexpected reply: %q", step.Reply)
	}
	if !strings.Contains(completer.calls[1][len(completer.calls[1])-1].Content, "Unknown tool") {
		t.Fatal("error result must reach the summarization phase")
	}
}

func TestNewValidatesDependencies(t *testing.T) {
	t.Parallel()

	if _, err := New(nil, &fakeExecutor{}, testPrompt); err == nil {
		t.Fatal("expected an error for a nil completer")
	}
	if _, err := New(&scriptedCompleter{}, nil, testPrompt); err == nil {
		t.Fatal("expected an error for a nil executor")
	}
	if _, err := New(&scriptedCompleter{}, &fakeExecutor{}, "  "); err == nil {
		t.Fatal("expected an error for an empty prompt")
	}
}
