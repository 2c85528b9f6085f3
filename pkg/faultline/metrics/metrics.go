// Package metrics provides counter registration and emission for the
// error handling pipeline over an OpenTelemetry meter.
package metrics

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Errors are logged rather than returned to keep call sites clean; a
// failed metric emission must never affect error handling itself.

type Manager interface {
	NewCounter(name, desc string)
	IncrementCounter(ctx context.Context, name string, labels ...string)
}

type Logger interface {
	Error(args ...any)
	Errorf(format string, args ...any)
}

type metricsManager struct {
	meter  metric.Meter
	logger Logger

	mu       sync.RWMutex
	counters map[string]metric.Int64Counter
}

// NewManager returns a Manager recording on the given meter.
func NewManager(meter metric.Meter, logger Logger) Manager {
	return &metricsManager{
		meter:    meter,
		logger:   logger,
		counters: make(map[string]metric.Int64Counter),
	}
}

// NewCounter registers a counter whose values are monotonically
// increasing. Registering the same name twice keeps the first counter.
func (m *metricsManager) NewCounter(name, desc string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.counters[name]; ok {
		m.logger.Errorf("metric %s is already registered", name)

		return
	}

	counter, err := m.meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		m.logger.Error(err)

		return
	}

	m.counters[name] = counter
}

// IncrementCounter increments the named counter by one. Labels are
// key-value pairs; a trailing unpaired label is dropped.
func (m *metricsManager) IncrementCounter(ctx context.Context, name string, labels ...string) {
	m.mu.RLock()
	counter, ok := m.counters[name]
	m.mu.RUnlock()

	if !ok {
		m.logger.Errorf("metric %s is not registered", name)

		return
	}

	counter.Add(ctx, 1, metric.WithAttributes(attributes(labels)...))
}

func attributes(labels []string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(labels)/2)

	for i := 0; i+1 < len(labels); i += 2 {
		attrs = append(attrs, attribute.String(labels[i], labels[i+1]))
	}

	return attrs
}
