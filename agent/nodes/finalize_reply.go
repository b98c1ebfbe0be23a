package conciergenode

import (
	"fmt"
	"strings"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	return GraphOutput{
		Reply:      strings.TrimSpace(in.Reply),
		ToolResult: in.ToolResult,
	}, nil
}
