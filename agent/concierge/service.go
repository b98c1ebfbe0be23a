// Package concierge drives the two-phase agent loop: a routing completion
// decides whether to invoke a tool, the tool runs against the catalog and
// the reservation store, and a summarization completion phrases the result.
package concierge

import (
	"context"
	"errors"
	"strings"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/nattawoot/maitre/agent/contract"
	nodex "github.com/nattawoot/maitre/agent/nodes"
)

var ErrInvalidMessage = nodex.ErrInvalidMessage

// Step is the outcome of one user turn. ToolResult is nil when the model
// answered directly without invoking a tool.
type Step struct {
	Reply      string
	ToolResult any
}

// Concierge is stateless across turns; history is owned by the caller and
// passed by value into every RunStep. The caller records both the user and
// the assistant turn after receiving the result.
type Concierge struct {
	completer    contractx.Completer
	tools        contractx.ToolExecutor
	policyPrompt string

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]
}

func New(completer contractx.Completer, tools contractx.ToolExecutor, policyPrompt string) (*Concierge, error) {
	if completer == nil {
		return nil, errors.New("completer is required")
	}
	if tools == nil {
		return nil, errors.New("tool executor is required")
	}
	if strings.TrimSpace(policyPrompt) == "" {
		return nil, errors.New("policy prompt is required")
	}

	c := &Concierge{
		completer:    completer,
		tools:        tools,
		policyPrompt: strings.TrimSpace(policyPrompt),
	}

	graphRunner, err := c.compileRunStepGraph(context.Background())
	if err != nil {
		return nil, err
	}
	c.graphRunner = graphRunner

	return c, nil
}

// RunStep handles one user turn. It never fails past input validation: a
// completion outage resolves to the fallback reply and tool failures resolve
// to structured error results, so the caller always gets a string back.
func (c *Concierge) RunStep(ctx context.Context, userMessage string, history []contractx.Turn) (Step, error) {
	out, err := c.graphRunner.Invoke(ctx, nodex.GraphInput{
		UserMessage: userMessage,
		History:     history,
	})
	if err != nil {
		return Step{}, err
	}
	return Step{Reply: out.Reply, ToolResult: out.ToolResult}, nil
}
