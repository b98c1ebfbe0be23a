package conciergenode

import (
	"errors"
	"strings"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

var ErrInvalidMessage = errors.New("user message is empty")

type GraphInput struct {
	UserMessage string
	History     []contractx.Turn
}

type GraphOutput struct {
	Reply string
	// ToolResult carries the raw tool result for optional UI use; nil when
	// the model answered directly.
	ToolResult any
}

// GraphState flows through the per-turn graph. History is a working copy
// ending with the incoming user turn; the caller's slice is never touched.
type GraphState struct {
	History []contractx.Turn

	RouteOutput string
	Invocation  *contractx.ToolInvocation
	ToolResult  any
	Reply       string
}

func ValidateRequest(in GraphInput) (*GraphState, error) {
	text := strings.TrimSpace(in.UserMessage)
	if text == "" {
		return nil, ErrInvalidMessage
	}

	history := make([]contractx.Turn, 0, len(in.History)+1)
	history = append(history, in.History...)
	history = append(history, contractx.Turn{Role: contractx.RoleUser, Content: text})

	return &GraphState{History: history}, nil
}
