package rpc

import (
	"context"

	"go.uber.org/fx"

	"github.com/0glabs/0g-da-light/api/rpc"
)

func ConstructModule(cfg *Config) fx.Option {
	// sanitize config values before constructing module
	cfgErr := cfg.Validate()

	return fx.Module(
		"rpc",
		fx.Supply(cfg),
		fx.Error(cfgErr),
		fx.Provide(fx.Annotate(
			server,
			fx.OnStart(func(ctx context.Context, server *rpc.Server) error {
				return server.Start(ctx)
			}),
			fx.OnStop(func(ctx context.Context, server *rpc.Server) error {
				return server.Stop(ctx)
			}),
		)),
		fx.Invoke(registerEndpoints),
	)
}
