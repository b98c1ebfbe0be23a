package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/unified.txt
var unifiedRaw string

// Unified returns the single policy prompt used for both the routing and
// the summarization completion calls. It teaches the model the tool-call
// JSON convention and the available tool shapes; changing it changes agent
// behavior without code changes.
func Unified() string {
	return strings.TrimSpace(unifiedRaw)
}
