// Package observability provides OpenTelemetry metrics and tracing for
// scorepipe. Both exporters are optional; when no collector endpoint is
// configured the rest of the program runs with the default no-op providers.
//
// Metrics are recorded per cleansing run (totals and duration, attributed by
// strategy), never per rejected record. Rejection is silent by contract.
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("scorepipe"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewPipelineMetrics(observability.Meter("scorepipe"))
//	metrics.RecordRun(ctx, "stream", total, accepted, duration)
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("scorepipe"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "cleanse.run")
//	defer span.End()
package observability
