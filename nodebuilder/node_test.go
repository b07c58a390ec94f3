package nodebuilder

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.uber.org/fx"

	"github.com/0glabs/0g-da-light/api/gateway"
	"github.com/0glabs/0g-da-light/api/light"
	"github.com/0glabs/0g-da-light/api/rpc/client"
	rpcperms "github.com/0glabs/0g-da-light/api/rpc/perms"
	daspkg "github.com/0glabs/0g-da-light/das"
	"github.com/0glabs/0g-da-light/kv"
	"github.com/0glabs/0g-da-light/kv/kvtest"
	"github.com/0glabs/0g-da-light/kzg"
	"github.com/0glabs/0g-da-light/nodebuilder/node"
	"github.com/0glabs/0g-da-light/segment"
	"github.com/0glabs/0g-da-light/segment/segmenttest"
)

func TestLifecycle(t *testing.T) {
	nd := TestNode(t)
	require.NotNil(t, nd)
	require.NotNil(t, nd.Config)
	require.NotNil(t, nd.AdminSigner)
	require.NotNil(t, nd.DASer)
	require.NotNil(t, nd.RPCServer)
	require.NotNil(t, nd.GRPCServer)
	// the gateway is disabled by default
	require.Nil(t, nd.GatewayServer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := nd.Start(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, nd.RPCServer.ListenAddr())
	require.NotEmpty(t, nd.GRPCServer.ListenAddr())

	err = nd.Stop(ctx)
	require.NoError(t, err)
}

func TestLifecycle_WithMetrics(t *testing.T) {
	url, exports := startMockOtelCollector(t)
	otelCollectorURL := strings.ReplaceAll(url, "http://", "")

	nd := TestNode(t,
		WithMetrics([]otlpmetrichttp.Option{
			otlpmetrichttp.WithEndpoint(otelCollectorURL),
			otlpmetrichttp.WithInsecure(),
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, nd.Start(ctx))
	// stopping flushes the collected metrics
	require.NoError(t, nd.Stop(ctx))
	assert.Positive(t, exports.Load())
}

func startMockOtelCollector(t *testing.T) (string, *atomic.Int64) {
	exports := new(atomic.Int64)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/metrics" || r.Method != http.MethodPost {
			t.Errorf("Expected to request [POST] '/v1/metrics', got: [%s] %s", r.Method, r.URL.Path)
		}
		exports.Add(1)
		// an empty body is a valid empty ExportMetricsServiceResponse
		w.Header().Set("Content-Type", "application/x-protobuf")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server.URL, exports
}

// TestSampleThroughAllSurfaces assembles a node over in-memory KV and storage
// backends and samples a batch through the gRPC, JSON-RPC and REST surfaces.
func TestSampleThroughAllSurfaces(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stream := common.HexToHash("0x0a")
	key := []byte("batch-header-hash")

	pp, err := kzg.NewInsecurePublicParams([]byte("node-test"), 4)
	require.NoError(t, err)
	b := segmenttest.NewBatch(t, pp,
		segmenttest.RandomBlob(t, 2, 4),
		segmenttest.RandomBlob(t, 3, 2),
	)
	store := kvtest.NewStore()
	store.Put(stream, key, b.Encoded(t))

	cfg := TestConfig()
	cfg.DASer.StreamID = stream.Hex()
	cfg.Gateway.Enabled = true
	cfg.Storage.RetryWait = 0

	nd := TestNodeWithConfig(t, cfg,
		fx.Decorate(func() *kzg.PublicParams { return pp }),
		fx.Decorate(func() ([]segment.Getter, error) {
			return []segment.Getter{b.Getter()}, nil
		}),
		fx.Decorate(func() (daspkg.BatchFetcher, error) {
			return kv.NewFetcher(store)
		}),
	)
	require.NoError(t, nd.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, nd.Stop(context.Background()))
	})

	// gRPC
	lightClient, err := light.NewClient(nd.GRPCServer.ListenAddr())
	require.NoError(t, err)
	t.Cleanup(func() { lightClient.Close() }) //nolint:errcheck

	ok, err := lightClient.Sample(ctx, key, 0, 8)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = lightClient.Sample(ctx, key, 5, 1)
	require.Error(t, err)

	// JSON-RPC
	token, err := rpcperms.NewTokenWithPerms(nd.AdminSigner, rpcperms.ReadPerms, 0)
	require.NoError(t, err)
	rpcClient, err := client.NewClient(ctx, "http://"+nd.RPCServer.ListenAddr(), string(token))
	require.NoError(t, err)
	t.Cleanup(rpcClient.Close)

	ok, err = rpcClient.DAS.Sample(ctx, key, 1, 0)
	require.NoError(t, err)
	require.True(t, ok)

	recs, err := rpcClient.DAS.BatchSamples(ctx, key)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, uint32(0), recs[0].Blob)
	assert.Equal(t, uint32(8), recs[0].Times)
	assert.Equal(t, uint32(1), recs[1].Blob)
	assert.True(t, recs[1].Success)

	// admin methods need an admin token
	_, err = rpcClient.Node.Info(ctx)
	require.ErrorContains(t, err, "missing permission")

	// REST gateway
	url := "http://" + nd.GatewayServer.ListenAddr() + "/sample/" + hex.EncodeToString(key) + "/1?times=3"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var sampled gateway.SampleResponse
	require.NoError(t, json.Unmarshal(body, &sampled))
	assert.True(t, sampled.Success)
	assert.Equal(t, uint32(3), sampled.Times)
}

func TestAdminAPI(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	nd := TestNode(t)
	require.NoError(t, nd.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, nd.Stop(context.Background()))
	})

	token, err := rpcperms.NewTokenWithPerms(nd.AdminSigner, rpcperms.AllPerms, 0)
	require.NoError(t, err)
	rpcClient, err := client.NewClient(ctx, "http://"+nd.RPCServer.ListenAddr(), string(token))
	require.NoError(t, err)
	t.Cleanup(rpcClient.Close)

	info, err := rpcClient.Node.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, node.APIVersion, info.APIVersion)

	readToken, err := rpcClient.Node.AuthNew(ctx, rpcperms.ReadPerms)
	require.NoError(t, err)
	granted, err := rpcClient.Node.AuthVerify(ctx, string(readToken))
	require.NoError(t, err)
	assert.Equal(t, rpcperms.ReadPerms, granted)

	_, err = rpcClient.DAS.LastSample(ctx, []byte("never sampled"), 0)
	require.ErrorContains(t, err, daspkg.ErrNoSamples.Error())
}
