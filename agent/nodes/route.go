package conciergenode

import (
	"context"
	"fmt"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

// Tool routing and summarization both run at temperature zero so the
// structured branches stay deterministic.
const completionTemperature = 0.0

// Route runs the first completion call: the unified policy prompt followed
// by the full working history. Its output either answers the user directly
// or embeds a tool invocation.
func Route(ctx context.Context, in *GraphState, completer contractx.Completer, policyPrompt string) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	turns := make([]contractx.Turn, 0, len(in.History)+1)
	turns = append(turns, contractx.Turn{Role: contractx.RoleSystem, Content: policyPrompt})
	turns = append(turns, in.History...)

	in.RouteOutput = completer.Complete(ctx, turns, completionTemperature)
	return in, nil
}
