package nodebuilder

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// MockStore provides mock in memory Store for testing purposes.
func MockStore(t *testing.T, cfg *Config) Store {
	t.Helper()
	store := NewMemStore()

	err := store.PutConfig(cfg)
	require.NoError(t, err)
	return store
}

// TestConfig returns a Config listening on random local ports with small
// public params.
func TestConfig() *Config {
	cfg := DefaultConfig()
	// avoids port conflicts
	cfg.RPC.Address = "127.0.0.1"
	cfg.RPC.Port = "0"
	cfg.GRPC.Address = "127.0.0.1"
	cfg.GRPC.Port = "0"
	cfg.Gateway.Address = "127.0.0.1"
	cfg.Gateway.Port = "0"
	// deriving the full width SRS is slow
	cfg.KZG.InsecureSeed = "test"
	cfg.KZG.MaxCols = 16
	return cfg
}

func TestNode(t *testing.T, opts ...fx.Option) *Node {
	return TestNodeWithConfig(t, TestConfig(), opts...)
}

func TestNodeWithConfig(t *testing.T, cfg *Config, opts ...fx.Option) *Node {
	store := MockStore(t, cfg)
	nd, err := New(store, opts...)
	require.NoError(t, err)
	return nd
}
