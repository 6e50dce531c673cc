package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/harunnryd/toolcall/pkg/errorsx"
	"github.com/harunnryd/toolcall/pkg/llm"
	"github.com/harunnryd/toolcall/pkg/logging"
	"github.com/harunnryd/toolcall/pkg/metrics"
	"github.com/harunnryd/toolcall/pkg/redact"
	"github.com/harunnryd/toolcall/pkg/tools"
)

type Options struct {
	Logger   *slog.Logger
	Observer metrics.Observer
	Listener StateListener
	Redactor redact.Redactor
}

// Agent answers a prompt with one model call and at most one tool call.
type Agent struct {
	model    llm.LLMAdapter
	registry *tools.Registry
	log      *slog.Logger
	obs      metrics.Observer
	listener StateListener
	redactor redact.Redactor
}

// New binds the registry's tools to model when the model supports binding.
func New(model llm.LLMAdapter, registry *tools.Registry, opts Options) *Agent {
	if registry == nil {
		registry = tools.NewRegistry()
	}
	if binder, ok := model.(llm.ToolBinder); ok {
		model = binder.BindTools(registry.Definitions())
	}
	obs := opts.Observer
	if obs == nil {
		obs = metrics.NoopObserver{}
	}
	return &Agent{
		model:    model,
		registry: registry,
		log:      logging.NewComponentLogger(opts.Logger, "agent"),
		obs:      obs,
		listener: opts.Listener,
		redactor: opts.Redactor,
	}
}

func (a *Agent) Model() llm.LLMAdapter { return a.model }

// Run sends userInput to the model once. If the response proposes tool calls,
// only the first is executed and its result is the answer; otherwise the
// model's text is returned verbatim.
func (a *Agent) Run(ctx context.Context, userInput string) (string, error) {
	runID := uuid.NewString()
	log := a.log.With(slog.String("run_id", runID))
	log.Debug("run started", "input", a.redactor.Text(userInput), "model", a.model.Name())

	resp, err := a.model.Generate(ctx, llm.Context{
		Messages: []map[string]any{llm.UserMessage(userInput)},
		Tools:    a.registry.Definitions(),
	})
	if err != nil {
		a.transition(runID, StateAwaitingModel, StateDone)
		log.Error("model generate failed", "error", err)
		return "", errorsx.Wrap(err, errorsx.ReasonLLMGenerate)
	}
	a.record(metrics.EventModelResponse, map[string]string{
		"run_id":     runID,
		"tool_calls": boolTag(HasToolCalls(resp)),
	})

	if !HasToolCalls(resp) {
		a.transition(runID, StateAwaitingModel, StateDone)
		log.Debug("direct answer", "text", a.redactor.Text(resp.Text))
		return resp.Text, nil
	}

	a.transition(runID, StateAwaitingModel, StateExecutingTool)
	call := resp.ToolCalls[0]
	if len(resp.ToolCalls) > 1 {
		log.Warn("ignoring extra tool calls", "count", len(resp.ToolCalls)-1)
	}
	log.Debug("executing tool call", "tool", call.Name, "call_id", call.ID)

	result, err := ExecuteToolCall(ctx, call, a.registry)
	a.transition(runID, StateExecutingTool, StateDone)
	if err != nil {
		log.Error("tool execution failed", "tool", call.Name, "error", err)
		return "", err
	}
	if _, ok := a.registry.Find(call.Name); !ok {
		log.Warn("tool not found", "tool", call.Name)
		a.record(metrics.EventToolNotFound, map[string]string{"run_id": runID, "tool": call.Name})
	} else {
		a.record(metrics.EventToolExecuted, map[string]string{"run_id": runID, "tool": call.Name})
	}
	log.Debug("run finished", "result", a.redactor.Text(result))
	return result, nil
}

// HasToolCalls reports whether the response proposes any tool call.
func HasToolCalls(resp llm.Response) bool {
	return len(resp.ToolCalls) > 0
}

// ExecuteToolCall runs a single call. An unknown tool yields a
// "Tool <name> not found" result rather than an error.
func ExecuteToolCall(ctx context.Context, call llm.ToolCall, executor llm.ToolExecutor) (string, error) {
	return executor.Execute(ctx, call)
}

func (a *Agent) transition(runID string, from, to State) {
	if a.listener == nil {
		return
	}
	a.listener.OnStateChange(StateChange{
		RunID:     runID,
		FromState: from,
		ToState:   to,
		Timestamp: time.Now(),
	})
}

func (a *Agent) record(name string, tags map[string]string) {
	tags["model"] = a.model.Name()
	a.obs.RecordEvent(metrics.MetricsEvent{
		Name:  name,
		Time:  time.Now(),
		Value: 1,
		Tags:  tags,
	})
}

func boolTag(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
