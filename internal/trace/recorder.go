package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// SpanSelect is the span name emitted for every topic selection.
const SpanSelect = "ui.select"

// Attribute keys set on selection spans.
const (
	AttrTopic         = attribute.Key("essentials.topic.id")
	AttrPreviousTopic = attribute.Key("essentials.topic.previous")
	AttrRepeat        = attribute.Key("essentials.topic.repeat")
)

// SelectionRecorder turns topic selections into spans.
type SelectionRecorder struct {
	tracer oteltrace.Tracer
}

// NewSelectionRecorder wraps any tracer provider (SDK, noop, or a test provider).
func NewSelectionRecorder(tp oteltrace.TracerProvider) *SelectionRecorder {
	return &SelectionRecorder{tracer: tp.Tracer(InstrumentationName)}
}

// RecordSelect emits one span for a selection. previous is empty when nothing was
// selected before.
func (r *SelectionRecorder) RecordSelect(ctx context.Context, topic, previous string) {
	if r == nil || r.tracer == nil {
		return
	}
	attrs := []attribute.KeyValue{
		AttrTopic.String(topic),
		AttrRepeat.Bool(topic == previous),
	}
	if previous != "" {
		attrs = append(attrs, AttrPreviousTopic.String(previous))
	}
	_, span := r.tracer.Start(ctx, SpanSelect, oteltrace.WithAttributes(attrs...))
	span.End()
}
