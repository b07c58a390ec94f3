package das

import (
	"context"

	"github.com/ipfs/go-datastore"
	"go.uber.org/fx"

	"github.com/0glabs/0g-da-light/das"
	"github.com/0glabs/0g-da-light/kzg"
)

func ConstructModule(cfg *Config) fx.Option {
	return fx.Module(
		"das",
		fx.Supply(*cfg),
		fx.Error(cfg.Validate()),
		fx.Provide(fx.Annotate(
			newSampler,
			fx.OnStop(func(ctx context.Context, s *das.Sampler) error {
				return s.Stop(ctx)
			}),
		)),
		// Module is needed for the RPC handler
		fx.Provide(func(s *das.Sampler) Module {
			return s
		}),
	)
}

func newSampler(
	cfg Config,
	fetcher das.BatchFetcher,
	downloader das.SegmentDownloader,
	pp *kzg.PublicParams,
	ds datastore.Batching,
) (*das.Sampler, error) {
	opts, err := cfg.options()
	if err != nil {
		return nil, err
	}
	return das.NewSampler(fetcher, downloader, pp, ds, opts...)
}
