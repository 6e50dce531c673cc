package llm

import "context"

// Tool describes a capability the model may call. It carries no behavior;
// executable tools live in the tools package.
type Tool struct {
	Name        string
	Description string
	Schema      any
}

type Context struct {
	Messages []map[string]any
	Tools    []Tool
}

type Response struct {
	Text         string
	FinishReason string
	ToolCalls    []ToolCall
}

// LLMAdapter is a chat model with native tool calling.
type LLMAdapter interface {
	Generate(ctx context.Context, input Context) (Response, error)
	MapTools(tools []Tool) (providerTools any, err error)
	Name() string
}

type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// UserMessage wraps a bare prompt as a single chat message.
func UserMessage(content string) map[string]any {
	return map[string]any{"role": RoleUser, "content": content}
}

// LastContent returns the content of the final message, or "" when the
// context is empty or the content is not a string.
func LastContent(input Context) string {
	if len(input.Messages) == 0 {
		return ""
	}
	content, _ := input.Messages[len(input.Messages)-1]["content"].(string)
	return content
}

// MapFunctionTools renders descriptors in the OpenAI "function" tool format.
func MapFunctionTools(tools []Tool) []map[string]any {
	out := make([]map[string]any, 0, len(tools))
	for _, t := range tools {
		out = append(out, map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        t.Name,
				"description": t.Description,
				"parameters":  t.Schema,
			},
		})
	}
	return out
}
