package metrics

import "time"

const (
	EventModelResponse = "agent_model_response"
	EventToolExecuted  = "agent_tool_executed"
	EventToolNotFound  = "agent_tool_not_found"
)

type MetricsEvent struct {
	Name   string
	Time   time.Time
	Value  float64
	Tags   map[string]string
	Fields map[string]any
}

type Observer interface {
	RecordEvent(ev MetricsEvent)
}

type NoopObserver struct{}

func (NoopObserver) RecordEvent(MetricsEvent) {}
