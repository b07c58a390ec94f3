package nodebuilder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cristalhq/jwt/v5"
	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/0glabs/0g-da-light/api/gateway"
	"github.com/0glabs/0g-da-light/api/light"
	"github.com/0glabs/0g-da-light/api/rpc"
	"github.com/0glabs/0g-da-light/nodebuilder/das"
	"github.com/0glabs/0g-da-light/nodebuilder/node"
)

var (
	log   = logging.Logger("node")
	fxLog = logging.Logger("fx")
)

// Node represents the core structure of a DA light node. It keeps references to all
// components and services in one place.
type Node struct {
	fx.In `ignore-unexported:"true"`

	Config      *Config
	AdminSigner jwt.Signer

	// rpc components
	RPCServer     *rpc.Server     // not optional
	GRPCServer    *light.Server   `optional:"true"`
	GatewayServer *gateway.Server `optional:"true"`

	// services
	DASer    das.Module  // not optional
	AdminMod node.Module // not optional

	// start and stop control ref internal fx.App lifecycle funcs to be called from Start and Stop
	start, stop lifecycleFunc
}

// New assembles a new Node over Store 'store'.
func New(store Store, options ...fx.Option) (*Node, error) {
	cfg, err := store.Config()
	if err != nil {
		return nil, err
	}

	return NewWithConfig(store, cfg, options...)
}

// NewWithConfig assembles a new Node over Store 'store' and a custom config.
func NewWithConfig(store Store, cfg *Config, options ...fx.Option) (*Node, error) {
	opts := append([]fx.Option{ConstructModule(cfg, store)}, options...)
	return newNode(opts...)
}

// Start launches the Node and all its components and services.
func (n *Node) Start(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultLifecycleTimeout)
	defer cancel()

	err := n.start(ctx)
	if err != nil {
		log.Debugf("error starting Node: %s", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("node: failed to start within timeout(%s): %w", DefaultLifecycleTimeout, err)
		}
		return fmt.Errorf("node: failed to start: %w", err)
	}

	log.Infow("started DA light node",
		"rpc", n.RPCServer.ListenAddr(),
		"stream", n.Config.DASer.StreamID,
		"storage", n.Config.Storage.URLs,
		"kv", n.Config.KV.URL,
	)
	if n.GRPCServer != nil {
		log.Infow("light service listening", "addr", n.GRPCServer.ListenAddr())
	}
	if n.GatewayServer != nil {
		log.Infow("gateway listening", "addr", n.GatewayServer.ListenAddr())
	}
	return nil
}

// Run is a Start which blocks on the given context 'ctx' until it is canceled.
// If canceled, the Node is still in the running state and should be gracefully stopped via Stop.
func (n *Node) Run(ctx context.Context) error {
	err := n.Start(ctx)
	if err != nil {
		return err
	}

	<-ctx.Done()
	return ctx.Err()
}

// Stop shuts down the Node, all its running Modules/Services and returns.
// Canceling the given context earlier 'ctx' unblocks the Stop and aborts graceful shutdown forcing
// remaining Modules/Services to close immediately.
func (n *Node) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultLifecycleTimeout)
	defer cancel()

	err := n.stop(ctx)
	if err != nil {
		log.Debugf("error stopping Node: %s", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("node: failed to stop within timeout(%s): %w", DefaultLifecycleTimeout, err)
		}
		return fmt.Errorf("node: failed to stop: %w", err)
	}

	log.Debug("stopped Node")
	return nil
}

// newNode creates a new Node from given DI options.
// DI options allow initializing the Node with a customized set of components and services.
func newNode(opts ...fx.Option) (*Node, error) {
	node := new(Node)
	app := fx.New(
		fx.WithLogger(func() fxevent.Logger {
			zl := &fxevent.ZapLogger{Logger: fxLog.Desugar()}
			zl.UseLogLevel(zapcore.DebugLevel)
			return zl
		}),
		fx.Populate(node),
		fx.Options(opts...),
	)
	if err := app.Err(); err != nil {
		return nil, err
	}

	node.start, node.stop = app.Start, app.Stop
	return node, nil
}

// lifecycleFunc defines a type for common lifecycle funcs.
type lifecycleFunc func(context.Context) error

var DefaultLifecycleTimeout = time.Second * 30
