package kv

import (
	"context"

	"go.uber.org/fx"

	apikv "github.com/0glabs/0g-da-light/api/kv"
	"github.com/0glabs/0g-da-light/das"
	"github.com/0glabs/0g-da-light/kv"
)

func ConstructModule(cfg *Config) fx.Option {
	return fx.Module(
		"kv",
		fx.Supply(*cfg),
		fx.Error(cfg.Validate()),
		fx.Provide(fx.Annotate(
			func(ctx context.Context, cfg Config) (*apikv.Client, error) {
				return apikv.Dial(ctx, cfg.URL)
			},
			fx.OnStop(func(_ context.Context, cl *apikv.Client) error {
				cl.Close()
				return nil
			}),
		)),
		fx.Provide(func(cfg Config, cl *apikv.Client) (*kv.Fetcher, error) {
			return kv.NewFetcher(cl,
				kv.WithMaxQuerySize(cfg.MaxQuerySize),
				kv.WithCacheSize(cfg.CacheSize),
			)
		}),
		fx.Provide(func(f *kv.Fetcher) das.BatchFetcher {
			return f
		}),
	)
}
