package observability

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("scorepipe")

	if cfg.ServiceName != "scorepipe" {
		t.Errorf("expected ServiceName 'scorepipe', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("scorepipe")

	if cfg.ServiceName != "scorepipe" {
		t.Errorf("expected ServiceName 'scorepipe', got %s", cfg.ServiceName)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
}

func TestNewPipelineMetrics_Noop(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := NewPipelineMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	if metrics == nil {
		t.Fatal("expected non-nil metrics")
	}

	// Recording against a noop meter must be safe.
	metrics.RecordRun(context.Background(), "stream", 10, 5, 20*time.Millisecond)
}

func TestPipelineMetrics_RecordRun(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	metrics, err := NewPipelineMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	metrics.RecordRun(ctx, "optimized", 10, 5, 20*time.Millisecond)
	metrics.RecordRun(ctx, "optimized", 10, 5, 30*time.Millisecond)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatal(err)
	}

	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					sums[m.Name] += dp.Value
				}
			}
		}
	}

	if sums["records.processed"] != 20 {
		t.Errorf("records.processed = %d, want 20", sums["records.processed"])
	}
	if sums["records.accepted"] != 10 {
		t.Errorf("records.accepted = %d, want 10", sums["records.accepted"])
	}
	if sums["records.rejected"] != 10 {
		t.Errorf("records.rejected = %d, want 10", sums["records.rejected"])
	}
}

func TestStartSpan_NoProvider(t *testing.T) {
	// With no tracer provider configured, StartSpan must still return a
	// usable span.
	ctx, span := StartSpan(context.Background(), SpanCleanseRun)
	if ctx == nil || span == nil {
		t.Fatal("expected usable context and span")
	}
	span.End()
}
