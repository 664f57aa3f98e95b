package llm

import (
	"context"
	"time"

	"github.com/abhisek/lingoz/internal/observe"
)

// MetricsProvider is a decorator that records call counts and latency.
type MetricsProvider struct {
	inner   Provider
	metrics *observe.Metrics
}

// WithMetrics wraps a Provider with OpenTelemetry instrumentation.
func WithMetrics(p Provider, m *observe.Metrics) Provider {
	return &MetricsProvider{inner: p, metrics: m}
}

func (m *MetricsProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := m.inner.Generate(ctx, req)

	status := observe.StatusOK
	if err != nil {
		status = observe.StatusError
	}
	m.metrics.RecordLLMRequest(ctx, PurposeFrom(ctx), status, time.Since(start))

	return resp, err
}

func (m *MetricsProvider) ModelID() string {
	return m.inner.ModelID()
}
