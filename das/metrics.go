package das

import (
	"context"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/0glabs/0g-da-light/libs/utils"
)

const (
	resultLabel = "result"
	colsLabel   = "cols"
)

type result string

const (
	resultAvailable   result = "available"
	resultUnavailable result = "unavailable"
	resultError       result = "error"
)

var meter = otel.Meter("das")

type metrics struct {
	sampled    metric.Int64Counter
	sampleTime metric.Float64Histogram
	cells      metric.Int64Counter

	lastSampledTS atomic.Int64
	clientReg     metric.Registration
}

// WithMetrics enables metrics for the Sampler.
func (s *Sampler) WithMetrics() error {
	sampled, err := meter.Int64Counter("das_sampled_blobs_counter",
		metric.WithDescription("sampled blobs counter"))
	if err != nil {
		return err
	}

	sampleTime, err := meter.Float64Histogram("das_sample_time_hist",
		metric.WithDescription("duration of sampling a single blob"))
	if err != nil {
		return err
	}

	cells, err := meter.Int64Counter("das_sampled_cells_counter",
		metric.WithDescription("verified cells counter"))
	if err != nil {
		return err
	}

	lastSampledTS, err := meter.Int64ObservableGauge("das_latest_sampled_ts",
		metric.WithDescription("latest sampled timestamp"))
	if err != nil {
		return err
	}

	m := &metrics{
		sampled:    sampled,
		sampleTime: sampleTime,
		cells:      cells,
	}

	callback := func(_ context.Context, observer metric.Observer) error {
		if ts := m.lastSampledTS.Load(); ts != 0 {
			observer.ObserveInt64(lastSampledTS, ts)
		}
		return nil
	}
	m.clientReg, err = meter.RegisterCallback(callback, lastSampledTS)
	if err != nil {
		return err
	}

	s.metrics = m
	return nil
}

func (m *metrics) close() error {
	if m == nil {
		return nil
	}
	return m.clientReg.Unregister()
}

// observeSample records the time it took to sample a blob and its result.
func (m *metrics) observeSample(ctx context.Context, cols uint32, sampleTime time.Duration, res result) {
	if m == nil {
		return
	}
	ctx = utils.ResetContextOnError(ctx)
	attrs := metric.WithAttributes(
		attribute.String(resultLabel, string(res)),
		attribute.Int(colsLabel, int(cols)),
	)
	m.sampleTime.Record(ctx, sampleTime.Seconds(), attrs)
	m.sampled.Add(ctx, 1, attrs)
	m.lastSampledTS.Store(time.Now().UTC().Unix())
}

// observeCells records the amount of verified cells.
func (m *metrics) observeCells(ctx context.Context, amount int) {
	if m == nil {
		return
	}
	m.cells.Add(utils.ResetContextOnError(ctx), int64(amount))
}
