package otel

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Scope wraps the span of one handler, service, repository or cache call.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type scopeImpl struct {
	span oteltrace.Span
}

func NewScope(span oteltrace.Span) Scope {
	return &scopeImpl{
		span: span,
	}
}

func (s *scopeImpl) End() {
	s.span.End()
}

// TraceError records err on the span and marks the span as failed.
func (s *scopeImpl) TraceError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// TraceIfError is meant for deferred use over a named error result:
//
//	defer func() { scope.TraceIfError(err) }()
func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scopeImpl) AddEvent(name string) {
	s.span.AddEvent(name)
}

// SetAttribute keeps todo ids and row counts (int64) as numbers on the span.
// Types without a matching attribute kind are stored as their %v text.
func (s *scopeImpl) SetAttribute(key string, value any) {
	var kv attribute.KeyValue

	switch val := value.(type) {
	case bool:
		kv = attribute.Bool(key, val)
	case string:
		kv = attribute.String(key, val)
	case int:
		kv = attribute.Int(key, val)
	case int64:
		kv = attribute.Int64(key, val)
	case []string:
		kv = attribute.StringSlice(key, val)
	default:
		kv = attribute.String(key, fmt.Sprintf("%v", val))
	}

	s.span.SetAttributes(kv)
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
