package conciergenode

import (
	"context"
	"fmt"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

// ExecuteTool dispatches the extracted invocation, if any. The executor owns
// the error surface: unknown tools and tool failures come back as structured
// {"error": ...} results for the summarization phase to explain.
func ExecuteTool(ctx context.Context, in *GraphState, tools contractx.ToolExecutor) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if in.Invocation == nil {
		return in, nil
	}

	in.ToolResult = tools.Execute(ctx, *in.Invocation)
	return in, nil
}
