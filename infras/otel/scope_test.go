package otel_test

import (
	"context"
	"dailytodo/infras/otel"
	"dailytodo/infras/otel/mocks"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_RecordsAttributesAndErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "repository.todo.Get")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"query":   "SELECT 1",
		"todo.id": int64(10),
		"found":   true,
		"ids":     []int{1, 2},
	})
	scope.AddEvent("looked up")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	recorded := spans[0]
	assert.Equal(t, codes.Error, recorded.Status().Code)
	assert.Equal(t, "boom", recorded.Status().Description)
	assert.Contains(t, recorded.Attributes(), attribute.String("query", "SELECT 1"))
	assert.Contains(t, recorded.Attributes(), attribute.Int64("todo.id", 10))
	assert.Contains(t, recorded.Attributes(), attribute.Bool("found", true))
	assert.Contains(t, recorded.Attributes(), attribute.String("ids", "[1 2]"))

	eventNames := []string{}
	for _, event := range recorded.Events() {
		eventNames = append(eventNames, event.Name)
	}

	assert.Contains(t, eventNames, "looked up")
}

func TestNoopScope(t *testing.T) {
	ctx := context.WithValue(context.Background(), struct{}{}, "kept")

	scopedCtx, scope := mocks.NewOtel().NewScope(ctx, "service", "service.Get")

	assert.Equal(t, ctx, scopedCtx)
	assert.NotPanics(t, func() {
		scope.SetAttributes(map[string]any{"todo.id": int64(1)})
		scope.TraceIfError(errors.New("ignored"))
		scope.End()
	})
	assert.NoError(t, mocks.NewOtel().Shutdown(context.Background()))
}
