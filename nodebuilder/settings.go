package nodebuilder

import (
	"context"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.uber.org/fx"

	"github.com/0glabs/0g-da-light/libs/utils"
	"github.com/0glabs/0g-da-light/nodebuilder/das"
	"github.com/0glabs/0g-da-light/nodebuilder/node"
	"github.com/0glabs/0g-da-light/nodebuilder/storage"
)

const (
	serviceNamespace = "0g-da"
	serviceName      = "da-light"
)

// WithMetrics enables metrics exporting for the node.
func WithMetrics(metricOpts []otlpmetrichttp.Option) fx.Option {
	return fx.Options(
		fx.Supply(metricOpts),
		fx.Invoke(initializeMetrics),
		fx.Invoke(node.WithMetrics),
		das.WithMetrics(),
		storage.WithMetrics(),
	)
}

// initializeMetrics initializes the global meter provider.
func initializeMetrics(
	ctx context.Context,
	lc fx.Lifecycle,
	opts []otlpmetrichttp.Option,
) error {
	instanceID, err := os.Hostname()
	if err != nil {
		instanceID = "unknown"
	}

	provider, err := utils.NewMetricProvider(ctx, utils.MetricProviderConfig{
		ServiceNamespace:  serviceNamespace,
		ServiceName:       serviceName,
		ServiceInstanceID: instanceID,
		Interval:          10 * time.Second,
		OTLPOptions:       opts,
	})
	if err != nil {
		return err
	}

	err = runtime.Start(
		runtime.WithMinimumReadMemStatsInterval(time.Second),
		runtime.WithMeterProvider(provider),
	)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Shutdown(ctx)
		},
	})
	otel.SetMeterProvider(provider)
	return nil
}
