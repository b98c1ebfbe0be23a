package conciergenode

import (
	"fmt"

	contractx "github.com/nattawoot/maitre/agent/contract"
	extractx "github.com/nattawoot/maitre/agent/extract"
)

// ExtractToolCall looks for an embedded tool invocation in the routing
// output. Finding none just means the model answered directly.
func ExtractToolCall(in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	if inv, ok := extractx.ToolCall(in.RouteOutput); ok {
		in.Invocation = inv
	}
	return in, nil
}
