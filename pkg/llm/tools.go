package llm

import "context"

// ToolExecutor resolves a model tool call into a textual result.
type ToolExecutor interface {
	Definitions() []Tool
	Execute(ctx context.Context, call ToolCall) (string, error)
}

// ToolBinder is implemented by adapters that keep tools bound across calls.
type ToolBinder interface {
	BindTools(tools []Tool) LLMAdapter
}
