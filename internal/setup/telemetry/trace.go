package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zapcore"
)

// TraceCore implements zapcore.Core to forward error logs to OpenTelemetry as spans.
type TraceCore struct {
	zapcore.LevelEnabler
	tracer trace.Tracer
	fields []zapcore.Field
}

// NewTraceCore creates a core that turns error entries into spans on tracer.
func NewTraceCore(enab zapcore.LevelEnabler, tracer trace.Tracer) zapcore.Core {
	return &TraceCore{
		LevelEnabler: enab,
		tracer:       tracer,
	}
}

func (c *TraceCore) With(fields []zapcore.Field) zapcore.Core {
	return &TraceCore{
		LevelEnabler: c.LevelEnabler,
		tracer:       c.tracer,
		fields:       append(append([]zapcore.Field{}, c.fields...), fields...),
	}
}

func (c *TraceCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *TraceCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	// Only forward Error and higher severity
	if ent.Level < zapcore.ErrorLevel {
		return nil
	}

	_, span := c.tracer.Start(context.Background(), "error."+errorCategory(ent))
	defer span.End()

	// Encode fields through a map encoder so every field type has a readable value
	enc := zapcore.NewMapObjectEncoder()
	for _, field := range append(append([]zapcore.Field{}, c.fields...), fields...) {
		field.AddTo(enc)
	}

	attrs := []attribute.KeyValue{
		attribute.String("error.message", ent.Message),
		attribute.String("error.level", ent.Level.String()),
		attribute.String("error.caller", ent.Caller.String()),
	}
	for key, value := range enc.Fields {
		attrs = append(attrs, attribute.String(key, fmt.Sprint(value)))
	}

	span.SetAttributes(attrs...)
	return nil
}

func (c *TraceCore) Sync() error {
	return nil
}

// errorCategory groups an entry by the package that logged it.
func errorCategory(ent zapcore.Entry) string {
	switch fn := ent.Caller.Function; {
	case strings.Contains(fn, "/database"):
		return "database"
	case strings.Contains(fn, "/redis"), strings.Contains(fn, "/notify"):
		return "notify"
	case strings.Contains(fn, "/rest"):
		return "rest"
	case strings.Contains(fn, "/batch"):
		return "batch"
	case strings.Contains(fn, "/setup"):
		return "setup"
	default:
		return "application"
	}
}
