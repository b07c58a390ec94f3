package das

import (
	"go.uber.org/fx"

	"github.com/0glabs/0g-da-light/das"
)

func WithMetrics() fx.Option {
	return fx.Invoke(func(s *das.Sampler) error {
		return s.WithMetrics()
	})
}
