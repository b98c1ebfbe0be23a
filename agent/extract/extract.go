// Package extract finds structured tool invocations embedded in free-text
// model output.
package extract

import (
	"encoding/json"
	"strings"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

// ToolCall scans raw completion text for the first balanced brace-delimited
// JSON object, ignoring any surrounding prose or code fences, and decodes it
// as a tool invocation. A missing span or a parse failure means the model
// chose to answer directly; that is not an error condition.
func ToolCall(text string) (*contractx.ToolInvocation, bool) {
	span, ok := firstObjectSpan(text)
	if !ok {
		return nil, false
	}

	var inv contractx.ToolInvocation
	if err := json.Unmarshal([]byte(span), &inv); err != nil {
		return nil, false
	}
	if inv.Args == nil {
		inv.Args = map[string]any{}
	}
	return &inv, true
}

// firstObjectSpan returns the first balanced {...} span. Brace counting is
// string- and escape-aware so braces inside JSON string values do not skew
// the balance, and a second object later in the text is never swallowed.
func firstObjectSpan(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
