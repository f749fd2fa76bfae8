package otel_test

import (
	"chrono/config"
	"chrono/infras/otel"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "chrono-test"

	o := otel.New(cfg)

	ctx, scope := o.NewScope(context.Background(), "test", "test.span")
	require.NotNil(t, scope)

	span := oteltrace.SpanFromContext(ctx)
	assert.True(t, span.SpanContext().IsValid())

	scope.SetAttributes(map[string]any{
		"bool":   true,
		"string": "value",
		"int":    3,
		"slice":  []string{"a", "b"},
		"other":  1.5,
	})
	scope.AddEvent("event")
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("failed"))
	scope.End()

	assert.NoError(t, o.Shutdown(context.Background()))
}
