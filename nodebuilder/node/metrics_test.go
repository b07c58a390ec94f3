package node

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdk "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/fx/fxtest"
)

func TestWithMetrics(t *testing.T) {
	reader := sdk.NewManualReader()
	provider := sdk.NewMeterProvider(sdk.WithReader(reader))

	// re-assign the global variable `meter` from metrics.go
	meter = provider.Meter("test")
	lc := fxtest.NewLifecycle(t)
	require.NoError(t, WithMetrics(lc))
	lc.RequireStart()

	start := time.Now().Unix()
	var mr metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &mr))

	require.Len(t, mr.ScopeMetrics, 1)
	require.Len(t, mr.ScopeMetrics[0].Metrics, 2)

	nodeStartTS := mr.ScopeMetrics[0].Metrics[0]
	totalNodeRunTime := mr.ScopeMetrics[0].Metrics[1]
	assert.Equal(t, "node_start_ts", nodeStartTS.Name)
	assert.Equal(t, "node_runtime_counter_in_seconds", totalNodeRunTime.Name)

	gauge, ok := nodeStartTS.Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	assert.InDelta(t, start, gauge.DataPoints[0].Value, 1)

	sum, ok := totalNodeRunTime.Data.(metricdata.Sum[float64])
	require.True(t, ok)
	assert.GreaterOrEqual(t, sum.DataPoints[0].Value, 0.0)

	lc.RequireStop()
}
