package grpc

import (
	"context"

	"go.uber.org/fx"

	"github.com/0glabs/0g-da-light/api/light"
	"github.com/0glabs/0g-da-light/nodebuilder/das"
)

func ConstructModule(cfg *Config) fx.Option {
	if !cfg.Enabled {
		return fx.Options()
	}

	return fx.Module(
		"grpc",
		fx.Supply(cfg),
		fx.Error(cfg.Validate()),
		fx.Provide(fx.Annotate(
			server,
			fx.OnStart(func(ctx context.Context, server *light.Server) error {
				return server.Start(ctx)
			}),
			fx.OnStop(func(ctx context.Context, server *light.Server) error {
				return server.Stop(ctx)
			}),
		)),
		// the server is only started when something depends on it
		fx.Invoke(func(*light.Server) {}),
	)
}

func server(cfg *Config, sampler das.Module) *light.Server {
	return light.NewServer(cfg.listenAddr(), sampler)
}
