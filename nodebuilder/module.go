package nodebuilder

import (
	"context"

	"go.uber.org/fx"

	"github.com/0glabs/0g-da-light/libs/fxutil"
	"github.com/0glabs/0g-da-light/nodebuilder/das"
	"github.com/0glabs/0g-da-light/nodebuilder/gateway"
	"github.com/0glabs/0g-da-light/nodebuilder/grpc"
	"github.com/0glabs/0g-da-light/nodebuilder/kv"
	"github.com/0glabs/0g-da-light/nodebuilder/kzg"
	"github.com/0glabs/0g-da-light/nodebuilder/node"
	"github.com/0glabs/0g-da-light/nodebuilder/rpc"
	"github.com/0glabs/0g-da-light/nodebuilder/storage"
)

func ConstructModule(cfg *Config, store Store) fx.Option {
	log.Infow("Accessing keystore...")
	ks, err := store.Keystore()
	if err != nil {
		return fx.Error(err)
	}

	baseComponents := fx.Options(
		fx.Supply(ks),
		fx.Provide(func(lc fx.Lifecycle) context.Context {
			return fxutil.WithLifecycle(context.Background(), lc)
		}),
		fx.Supply(cfg),
		fx.Provide(store.Datastore),
		// modules provided by the node
		kzg.ConstructModule(&cfg.KZG),
		kv.ConstructModule(&cfg.KV),
		storage.ConstructModule(&cfg.Storage),
		das.ConstructModule(&cfg.DASer),
		node.ConstructModule(),
		rpc.ConstructModule(&cfg.RPC),
		grpc.ConstructModule(&cfg.GRPC),
		gateway.ConstructModule(&cfg.Gateway),
	)

	return fx.Module(
		"node",
		baseComponents,
	)
}
