package node

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"
)

var meter = otel.Meter("node")

// WithMetrics registers node metrics.
func WithMetrics(lc fx.Lifecycle) error {
	nodeStartTS, err := meter.Int64ObservableGauge(
		"node_start_ts",
		metric.WithDescription("timestamp when the node was started"),
	)
	if err != nil {
		return err
	}

	totalNodeRunTime, err := meter.Float64ObservableCounter(
		"node_runtime_counter_in_seconds",
		metric.WithDescription("total time the node has been running"),
	)
	if err != nil {
		return err
	}

	build := GetBuildInfo()
	buildAttrs := metric.WithAttributes(
		attribute.String("version", build.GetSemanticVersion()),
		attribute.String("commit", build.CommitShortSha()),
	)

	timeStarted := time.Now()
	callback := func(_ context.Context, observer metric.Observer) error {
		observer.ObserveInt64(nodeStartTS, timeStarted.Unix(), buildAttrs)
		observer.ObserveFloat64(totalNodeRunTime, time.Since(timeStarted).Seconds())
		return nil
	}

	reg, err := meter.RegisterCallback(callback, nodeStartTS, totalNodeRunTime)
	if err != nil {
		return err
	}
	lc.Append(fx.StopHook(reg.Unregister))
	return nil
}
