package tools

import (
	"context"
	"fmt"

	"github.com/harunnryd/toolcall/pkg/configutil"
	"github.com/harunnryd/toolcall/pkg/errorsx"
	"github.com/harunnryd/toolcall/pkg/llm"
)

// Func is the capability behind a tool. input is either the scalar argument
// or the whole argument map, depending on Tool.ScalarArg.
type Func func(ctx context.Context, input any) (any, error)

// Tool is a named, invocable capability.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	// ScalarArg names the single argument passed to Func. Empty means Func
	// receives the full argument map.
	ScalarArg string
	Func      Func
}

// Definition is the descriptor bound to the model.
func (t Tool) Definition() llm.Tool {
	return llm.Tool{Name: t.Name, Description: t.Description, Schema: t.Parameters}
}

// Registry is an ordered, read-only list of tools.
type Registry struct {
	tools []Tool
}

func NewRegistry(tools ...Tool) *Registry {
	list := make([]Tool, len(tools))
	copy(list, tools)
	return &Registry{tools: list}
}

// Find returns the first tool whose name matches exactly.
func (r *Registry) Find(name string) (Tool, bool) {
	for _, t := range r.tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

func (r *Registry) Tools() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for _, t := range r.tools {
		names = append(names, t.Name)
	}
	return names
}

func (r *Registry) Definitions() []llm.Tool {
	defs := make([]llm.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		defs = append(defs, t.Definition())
	}
	return defs
}

// Execute runs call against the registry. An unknown tool is not an error:
// the result is a "Tool <name> not found" message for the caller to surface.
func (r *Registry) Execute(ctx context.Context, call llm.ToolCall) (string, error) {
	t, ok := r.Find(call.Name)
	if !ok {
		return NotFoundMessage(call.Name), nil
	}
	if t.Func == nil {
		return "", errorsx.New(errorsx.ReasonToolArgs, "tool %s has no implementation", t.Name)
	}

	var input any = call.Arguments
	if t.ScalarArg != "" {
		v, ok := call.Arguments[t.ScalarArg]
		if !ok {
			return "", errorsx.New(errorsx.ReasonToolArgs, "tool %s: missing argument %q", t.Name, t.ScalarArg)
		}
		input = v
	}

	result, err := t.Func(ctx, input)
	if err != nil {
		return "", fmt.Errorf("tool %s: %w", t.Name, err)
	}
	return fmt.Sprint(result), nil
}

// NotFoundMessage is the result reported for an unknown tool name.
func NotFoundMessage(name string) string {
	return fmt.Sprintf("Tool %s not found", name)
}

// Decode maps a tool's argument map onto a typed struct.
func Decode(input any, out any) error {
	args, ok := input.(map[string]any)
	if !ok {
		return errorsx.New(errorsx.ReasonToolArgs, "expected argument map, got %T", input)
	}
	if err := configutil.DecodeSettings(args, out); err != nil {
		return errorsx.Wrap(err, errorsx.ReasonToolArgs)
	}
	return nil
}

var _ llm.ToolExecutor = (*Registry)(nil)
