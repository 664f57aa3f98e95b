// Package observe holds the OpenTelemetry metric instruments recorded by
// lingoz. Instruments are created from a [metric.MeterProvider]; the CLI uses
// the global provider, which is a no-op unless an SDK has been installed.
// Tests should build their own provider with a ManualReader.
package observe

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/abhisek/lingoz"

// Status attribute values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds all metric instruments. Safe for concurrent use.
type Metrics struct {
	// LLMDuration tracks LLM call latency, retries included.
	LLMDuration metric.Float64Histogram

	// LLMRequests counts LLM calls. Attributes: purpose, status.
	LLMRequests metric.Int64Counter

	// ExercisesBuilt counts exercises handed to the learner. Attribute: kind.
	ExercisesBuilt metric.Int64Counter

	// ReadingAccuracy records read-aloud scores in [0, 100].
	ReadingAccuracy metric.Float64Histogram
}

var latencyBuckets = []float64{
	0.1, 0.25, 0.5, 1, 2, 4, 8, 15, 30,
}

var accuracyBuckets = []float64{
	10, 20, 30, 40, 50, 60, 70, 80, 90, 100,
}

// NewMetrics creates a Metrics using the given MeterProvider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.LLMDuration, err = m.Float64Histogram("lingoz.llm.duration",
		metric.WithDescription("Latency of LLM generation calls."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.LLMRequests, err = m.Int64Counter("lingoz.llm.requests",
		metric.WithDescription("Total LLM calls by purpose and status."),
	); err != nil {
		return nil, err
	}
	if met.ExercisesBuilt, err = m.Int64Counter("lingoz.exercises.built",
		metric.WithDescription("Exercises built by kind."),
	); err != nil {
		return nil, err
	}
	if met.ReadingAccuracy, err = m.Float64Histogram("lingoz.reading.accuracy",
		metric.WithDescription("Read-aloud accuracy scores."),
		metric.WithExplicitBucketBoundaries(accuracyBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level Metrics built on
// [otel.GetMeterProvider]. Panics if instrument creation fails.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordLLMRequest records one LLM call with its latency.
func (m *Metrics) RecordLLMRequest(ctx context.Context, purpose, status string, d time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("purpose", purpose),
		attribute.String("status", status),
	)
	m.LLMRequests.Add(ctx, 1, attrs)
	m.LLMDuration.Record(ctx, d.Seconds(), attrs)
}

// RecordExercise counts a built exercise of the given kind.
func (m *Metrics) RecordExercise(ctx context.Context, kind string) {
	m.ExercisesBuilt.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// RecordReading records a read-aloud accuracy score.
func (m *Metrics) RecordReading(ctx context.Context, accuracy float64) {
	m.ReadingAccuracy.Record(ctx, accuracy)
}
