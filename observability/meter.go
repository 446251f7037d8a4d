package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/scorepipe/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (development, staging, production).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// PipelineMetrics holds the metric instruments for cleansing runs.
type PipelineMetrics struct {
	recordsProcessed metric.Int64Counter
	recordsAccepted  metric.Int64Counter
	recordsRejected  metric.Int64Counter
	runDuration      metric.Float64Histogram
}

// NewPipelineMetrics creates the cleansing instruments on the given meter.
func NewPipelineMetrics(meter metric.Meter) (*PipelineMetrics, error) {
	processed, err := meter.Int64Counter("records.processed",
		metric.WithDescription("Total raw records seen by a cleansing run"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating records.processed counter: %w", err)
	}

	accepted, err := meter.Int64Counter("records.accepted",
		metric.WithDescription("Records that passed validation"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating records.accepted counter: %w", err)
	}

	rejected, err := meter.Int64Counter("records.rejected",
		metric.WithDescription("Records silently dropped by validation"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating records.rejected counter: %w", err)
	}

	duration, err := meter.Float64Histogram("cleanse.duration",
		metric.WithDescription("Duration of cleansing runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cleanse.duration histogram: %w", err)
	}

	return &PipelineMetrics{
		recordsProcessed: processed,
		recordsAccepted:  accepted,
		recordsRejected:  rejected,
		runDuration:      duration,
	}, nil
}

// RecordRun records the aggregate outcome of one cleansing run.
func (m *PipelineMetrics) RecordRun(ctx context.Context, strategy string, total, accepted int, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("strategy", strategy))
	m.recordsProcessed.Add(ctx, int64(total), attrs)
	m.recordsAccepted.Add(ctx, int64(accepted), attrs)
	m.recordsRejected.Add(ctx, int64(total-accepted), attrs)
	m.runDuration.Record(ctx, duration.Seconds(), attrs)
}
