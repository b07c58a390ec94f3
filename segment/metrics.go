package segment

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/0glabs/0g-da-light/libs/utils"
)

var meter = otel.Meter("segment")

type fetchStatus string

const (
	statusSuccess   fetchStatus = "success"
	statusNotFound  fetchStatus = "not_found"
	statusInvalid   fetchStatus = "invalid"
	statusTransport fetchStatus = "transport_err"
)

type metrics struct {
	requests  metric.Int64Counter
	retries   metric.Int64Counter
	exhausted metric.Int64Counter
	inFlight  metric.Int64ObservableGauge

	inFlightCount atomic.Int64
	clientReg     metric.Registration
}

// WithMetrics enables metrics for the Downloader.
func (d *Downloader) WithMetrics() error {
	requests, err := meter.Int64Counter("segment_requests_counter",
		metric.WithDescription("segment requests sent to storage endpoints by status"))
	if err != nil {
		return err
	}

	retries, err := meter.Int64Counter("segment_retries_counter",
		metric.WithDescription("relaunched segment fetches"))
	if err != nil {
		return err
	}

	exhausted, err := meter.Int64Counter("segment_exhausted_counter",
		metric.WithDescription("downloads failed after exhausting retries"))
	if err != nil {
		return err
	}

	inFlight, err := meter.Int64ObservableGauge("segment_inflight_fetches",
		metric.WithDescription("segment fetches currently in flight"))
	if err != nil {
		return err
	}

	m := &metrics{
		requests:  requests,
		retries:   retries,
		exhausted: exhausted,
		inFlight:  inFlight,
	}

	callback := func(_ context.Context, observer metric.Observer) error {
		observer.ObserveInt64(inFlight, m.inFlightCount.Load())
		return nil
	}
	m.clientReg, err = meter.RegisterCallback(callback, inFlight)
	if err != nil {
		return err
	}

	d.metrics = m
	return nil
}

func (m *metrics) close() error {
	if m == nil {
		return nil
	}
	return m.clientReg.Unregister()
}

func (m *metrics) observeRequest(ctx context.Context, endpoint int, status fetchStatus) {
	if m == nil {
		return
	}
	ctx = utils.ResetContextOnError(ctx)
	m.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.Int("endpoint", endpoint),
		attribute.String("status", string(status)),
	))
}

func (m *metrics) observeRetry(ctx context.Context) {
	if m == nil {
		return
	}
	m.retries.Add(utils.ResetContextOnError(ctx), 1)
}

func (m *metrics) observeExhausted(ctx context.Context) {
	if m == nil {
		return
	}
	m.exhausted.Add(utils.ResetContextOnError(ctx), 1)
}

func (m *metrics) fetchStarted() {
	if m == nil {
		return
	}
	m.inFlightCount.Add(1)
}

func (m *metrics) fetchFinished() {
	if m == nil {
		return
	}
	m.inFlightCount.Add(-1)
}
