// Package llm wraps the upstream model provider behind a small interface so
// services can be tested against fakes and the unconfigured state is an
// explicit, typed condition instead of a package-level singleton.
package llm

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sashabaranov/go-openai"
)

var (
	// ErrNotConfigured means no upstream credential was supplied. Endpoints
	// decide per-contract whether this becomes a 500 or a fallback payload.
	ErrNotConfigured = errors.New("llm: client not configured, set GOALAURA_GEMINI_API_KEY")

	// ErrNoToolCall means the model answered with prose instead of invoking
	// the declared tool. This is a hard protocol failure, not a soft fallback.
	ErrNoToolCall = errors.New("llm: model did not call the declared tool")
)

// Request is a single completion request. JSONOnly forces the provider's
// JSON output mode.
type Request struct {
	System   string
	Prompt   string
	JSONOnly bool
}

// ToolRunner executes a locally registered tool with the model-supplied
// arguments and returns its textual result.
type ToolRunner func(name string, args json.RawMessage) (string, error)

// Client is the gateway to the model provider.
type Client interface {
	// Generate sends one prompt and returns the raw response text.
	Generate(ctx context.Context, req Request) (string, error)

	// GenerateWithTool runs the two-step tool protocol: the first completion
	// must contain a tool call (zero calls is ErrNoToolCall), the runner is
	// executed locally, and its output goes back as a tool-role message for
	// the final completion.
	GenerateWithTool(ctx context.Context, req Request, tool openai.Tool, run ToolRunner) (string, error)
}
