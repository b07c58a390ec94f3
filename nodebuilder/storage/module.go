package storage

import (
	"context"

	"go.uber.org/fx"

	"github.com/0glabs/0g-da-light/das"
	"github.com/0glabs/0g-da-light/segment"
)

func ConstructModule(cfg *Config) fx.Option {
	return fx.Module(
		"storage",
		fx.Supply(*cfg),
		fx.Error(cfg.Validate()),
		fx.Provide(fx.Annotate(
			dialNodes,
			fx.OnStop(func(_ context.Context, nodes []segment.Getter) error {
				closeNodes(nodes)
				return nil
			}),
		)),
		fx.Provide(fx.Annotate(
			newDownloader,
			fx.OnStop(func(ctx context.Context, d *segment.Downloader) error {
				return d.Stop(ctx)
			}),
		)),
		fx.Provide(func(d *segment.Downloader) das.SegmentDownloader {
			return d
		}),
	)
}

func newDownloader(cfg Config, nodes []segment.Getter) (*segment.Downloader, error) {
	return segment.NewDownloader(nodes, cfg.options()...)
}
