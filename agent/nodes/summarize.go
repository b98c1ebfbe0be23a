package conciergenode

import (
	"context"
	"encoding/json"
	"fmt"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

// Summarize runs the second completion call when a tool was executed: the
// same policy prompt, the working history, an assistant turn carrying the
// serialized invocation, and a system turn carrying the labeled tool result.
// Without an invocation the routing output already is the reply and no
// second call is made.
func Summarize(ctx context.Context, in *GraphState, completer contractx.Completer, policyPrompt string) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	if in.Invocation == nil {
		in.Reply = in.RouteOutput
		return in, nil
	}

	turns := make([]contractx.Turn, 0, len(in.History)+3)
	turns = append(turns, contractx.Turn{Role: contractx.RoleSystem, Content: policyPrompt})
	turns = append(turns, in.History...)
	turns = append(turns, contractx.Turn{
		Role:    contractx.RoleAssistant,
		Content: marshalForPrompt(in.Invocation),
	})
	turns = append(turns, contractx.Turn{
		Role:    contractx.RoleSystem,
		Content: "TOOL_RESULT: " + marshalForPrompt(in.ToolResult),
	})

	in.Reply = completer.Complete(ctx, turns, completionTemperature)
	return in, nil
}

func marshalForPrompt(v any) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(payload)
}
