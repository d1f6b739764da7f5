package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{name: "empty", raw: "", want: map[string]string{}},
		{name: "single", raw: "Authorization=Basic abc", want: map[string]string{"Authorization": "Basic abc"}},
		{
			name: "multiple with spaces",
			raw:  " a=1 , b = 2 ",
			want: map[string]string{"a": "1", "b": "2"},
		},
		{name: "value containing equals", raw: "k=v=w", want: map[string]string{"k": "v=w"}},
		{name: "missing key skipped", raw: "=v,ok=1", want: map[string]string{"ok": "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseHeaders(tt.raw))
		})
	}
}

func TestInit_NoEndpointIsNoop(t *testing.T) {
	ctx := context.Background()
	tel, err := Init(ctx, OTELConfig{})
	require.NoError(t, err)
	require.NotNil(t, tel.Tracer)
	require.NotNil(t, tel.Metrics)
	assert.False(t, tel.Enabled())

	// Instruments work without an exporter.
	tel.Metrics.RecordCommand(ctx, "ghq", true)
	tel.Metrics.RecordSelection(ctx, "selected")
	tel.Metrics.RecordMuxOperation(ctx, "tmux", "new_window")

	tel.Shutdown(ctx)
	tel.Shutdown(ctx)
}

func TestInit_InvalidEndpoint(t *testing.T) {
	_, err := Init(context.Background(), OTELConfig{Endpoint: "http://[::1"})
	assert.Error(t, err)
}

func TestInit_EndpointWithoutHost(t *testing.T) {
	_, err := Init(context.Background(), OTELConfig{Endpoint: "localhost:4318"})
	assert.ErrorContains(t, err, "no host")
}

func TestParseCollector(t *testing.T) {
	c, err := parseCollector("http://collector:4318/api/public/otel/", "Authorization=Basic abc")
	require.NoError(t, err)
	assert.Equal(t, collector{
		host:     "collector:4318",
		basePath: "/api/public/otel",
		insecure: true,
		headers:  map[string]string{"Authorization": "Basic abc"},
	}, c)
	assert.Len(t, c.traceOptions(), 4)
	assert.Len(t, c.metricOptions(), 4)

	c, err = parseCollector("https://otel.example.com", "")
	require.NoError(t, err)
	assert.False(t, c.insecure)
	assert.Empty(t, c.basePath)
	assert.Len(t, c.traceOptions(), 2)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	ctx := context.Background()
	m.RecordCommand(ctx, "tmux", false)
	m.RecordSelection(ctx, "aborted")
	m.RecordCacheHit(ctx)
	m.RecordCacheMiss(ctx)
	m.RecordMuxOperation(ctx, "zellij", "send_keys")

	var tel *Telemetry
	tel.Shutdown(ctx)
	assert.False(t, tel.Enabled())
}
