package storage

import (
	"go.uber.org/fx"

	"github.com/0glabs/0g-da-light/segment"
)

func WithMetrics() fx.Option {
	return fx.Invoke(func(d *segment.Downloader) error {
		return d.WithMetrics()
	})
}
