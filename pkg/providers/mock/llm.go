package mock

import (
	"context"
	"strings"

	"github.com/harunnryd/toolcall/pkg/configutil"
	"github.com/harunnryd/toolcall/pkg/errorsx"
	"github.com/harunnryd/toolcall/pkg/llm"
)

const (
	DefaultModel        = "gpt-3.5-turbo"
	DefaultFallbackText = "I can help you with text length calculations!"

	lengthToolName = "get_text_length"
	unknownText    = "unknown"
)

// LLMConfig configures the mock chat model.
type LLMConfig struct {
	APIKey       string
	Model        string
	Temperature  float64
	FallbackText string
}

// LLMAdapter is a deterministic stand-in for a tool-calling chat model. It
// only understands requests about text length.
type LLMAdapter struct {
	cfg   LLMConfig
	tools []llm.Tool
}

func NewLLMAdapter(cfg LLMConfig) (*LLMAdapter, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errorsx.New(errorsx.ReasonMissingCredential, "mock llm: api key is required")
	}
	cfg.Model = configutil.StringValue(cfg.Model, DefaultModel)
	cfg.FallbackText = configutil.StringValue(cfg.FallbackText, DefaultFallbackText)
	return &LLMAdapter{cfg: cfg}, nil
}

func (a *LLMAdapter) Name() string { return "mock_llm" }

func (a *LLMAdapter) Model() string { return a.cfg.Model }

// BindTools returns a copy of the adapter with tools bound.
func (a *LLMAdapter) BindTools(tools []llm.Tool) llm.LLMAdapter {
	bound := make([]llm.Tool, len(tools))
	copy(bound, tools)
	return &LLMAdapter{cfg: a.cfg, tools: bound}
}

// BoundTools reports the tools attached with BindTools.
func (a *LLMAdapter) BoundTools() []llm.Tool {
	out := make([]llm.Tool, len(a.tools))
	copy(out, a.tools)
	return out
}

func (a *LLMAdapter) MapTools(tools []llm.Tool) (any, error) {
	return llm.MapFunctionTools(tools), nil
}

// Generate answers the last message. Prompts mentioning length yield one
// get_text_length call and no text; anything else yields the fallback answer.
func (a *LLMAdapter) Generate(ctx context.Context, input llm.Context) (llm.Response, error) {
	if err := ctx.Err(); err != nil {
		return llm.Response{}, errorsx.Wrap(err, errorsx.ReasonLLMGenerate)
	}
	prompt := llm.LastContent(input)
	lower := strings.ToLower(prompt)

	switch {
	case strings.Contains(lower, "length") && strings.Contains(lower, "dog"):
		return toolCallResponse("call_123", "DOG"), nil
	case strings.Contains(lower, "length"):
		text := unknownText
		if m := ExtractTarget(prompt); m.OK {
			text = m.Token
		}
		return toolCallResponse("call_124", text), nil
	default:
		return llm.Response{Text: a.cfg.FallbackText, FinishReason: "stop"}, nil
	}
}

func toolCallResponse(id, text string) llm.Response {
	return llm.Response{
		FinishReason: "tool_calls",
		ToolCalls: []llm.ToolCall{{
			ID:        id,
			Name:      lengthToolName,
			Arguments: map[string]any{"text": text},
		}},
	}
}

var (
	_ llm.LLMAdapter = (*LLMAdapter)(nil)
	_ llm.ToolBinder = (*LLMAdapter)(nil)
)
