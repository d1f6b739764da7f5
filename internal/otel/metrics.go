package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "gh-ghq-cd"

// Metrics holds all OTEL metric instruments for gh-ghq-cd.
// All counters are cumulative (monotonic) and safe for concurrent use.
type Metrics struct {
	// External program invocations (partitioned by program + status)
	CommandRuns metric.Int64Counter

	// Selection outcomes (selected, aborted, empty)
	Selections metric.Int64Counter

	// README preview cache counters
	PreviewCacheHits   metric.Int64Counter
	PreviewCacheMisses metric.Int64Counter

	// Multiplexer operations (partitioned by backend + operation)
	MuxOperations metric.Int64Counter
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered (safe to call unconditionally).
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.CommandRuns, err = meter.Int64Counter("command.runs",
		metric.WithDescription("External program invocations partitioned by program and status (ok, failed)"))
	if err != nil {
		return nil, err
	}

	m.Selections, err = meter.Int64Counter("selection.outcomes",
		metric.WithDescription("Repository selections partitioned by outcome (selected, aborted, empty)"))
	if err != nil {
		return nil, err
	}

	m.PreviewCacheHits, err = meter.Int64Counter("preview_cache.hits",
		metric.WithDescription("README previews served from the in-memory render cache"))
	if err != nil {
		return nil, err
	}

	m.PreviewCacheMisses, err = meter.Int64Counter("preview_cache.misses",
		metric.WithDescription("README previews that had to be read and rendered"))
	if err != nil {
		return nil, err
	}

	m.MuxOperations, err = meter.Int64Counter("mux.operations",
		metric.WithDescription("Multiplexer operations partitioned by backend and operation"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordCommand records one external program invocation.
func (m *Metrics) RecordCommand(ctx context.Context, program string, ok bool) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "failed"
	}
	m.CommandRuns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("command.program", program),
		attribute.String("command.status", status),
	))
}

// RecordSelection records how a selection session ended.
func (m *Metrics) RecordSelection(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.Selections.Add(ctx, 1, metric.WithAttributes(
		attribute.String("selection.outcome", outcome),
	))
}

// RecordCacheHit records a preview cache hit.
func (m *Metrics) RecordCacheHit(ctx context.Context) {
	if m == nil {
		return
	}
	m.PreviewCacheHits.Add(ctx, 1)
}

// RecordCacheMiss records a preview cache miss.
func (m *Metrics) RecordCacheMiss(ctx context.Context) {
	if m == nil {
		return
	}
	m.PreviewCacheMisses.Add(ctx, 1)
}

// RecordMuxOperation records a multiplexer operation.
func (m *Metrics) RecordMuxOperation(ctx context.Context, backend, operation string) {
	if m == nil {
		return
	}
	m.MuxOperations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mux.backend", backend),
		attribute.String("mux.operation", operation),
	))
}
