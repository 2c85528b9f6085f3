package metrics

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/metric/noop"

	"faultline.dev/pkg/faultline/logging"
)

func TestManager_CounterLifecycle(t *testing.T) {
	out := &bytes.Buffer{}
	m := NewManager(noop.NewMeterProvider().Meter("test"), logging.NewMockLogger(out))

	m.NewCounter("handled_errors", "errors handled by the pipeline")

	assert.NotPanics(t, func() {
		m.IncrementCounter(context.Background(), "handled_errors", "level", "ERROR")
	})

	assert.Empty(t, out.String())
}

func TestManager_DuplicateCounter(t *testing.T) {
	out := &bytes.Buffer{}
	m := NewManager(noop.NewMeterProvider().Meter("test"), logging.NewMockLogger(out))

	m.NewCounter("handled_errors", "first registration")
	m.NewCounter("handled_errors", "second registration")

	assert.Contains(t, out.String(), "already registered")
}

func TestManager_UnknownCounter(t *testing.T) {
	out := &bytes.Buffer{}
	m := NewManager(noop.NewMeterProvider().Meter("test"), logging.NewMockLogger(out))

	m.IncrementCounter(context.Background(), "missing")

	assert.Contains(t, out.String(), "not registered")
}

func TestAttributes_DropsUnpairedLabel(t *testing.T) {
	attrs := attributes([]string{"status", "404", "dangling"})

	assert.Len(t, attrs, 1)
	assert.Equal(t, "status", string(attrs[0].Key))
}
