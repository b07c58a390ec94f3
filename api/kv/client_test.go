package kv

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"

	"github.com/0glabs/0g-da-light/kv"
)

type kvService struct {
	streamID common.Hash
	values   map[string][]byte
	versions []*uint64
}

func (s *kvService) GetValue(streamID common.Hash, key []byte, start, length uint64, version *uint64) (*value, error) {
	s.versions = append(s.versions, version)
	v, ok := s.values[string(key)]
	if streamID != s.streamID || !ok {
		return nil, nil
	}
	size := uint64(len(v))
	start = min(start, size)
	end := min(start+length, size)
	return &value{Version: 7, Data: v[start:end], Size: size}, nil
}

func TestClient_GetValue(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	stream := common.HexToHash("0x0f")
	svc := &kvService{
		streamID: stream,
		values:   map[string][]byte{"batch": []byte("hello world")},
	}
	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("kv", svc))
	t.Cleanup(srv.Stop)
	httpSrv := httptest.NewServer(srv)
	t.Cleanup(httpSrv.Close)

	cl, err := Dial(ctx, httpSrv.URL)
	require.NoError(t, err)
	t.Cleanup(cl.Close)

	got, err := cl.GetValue(ctx, stream, []byte("batch"), 6, 100)
	require.NoError(t, err)
	require.Equal(t, &kv.Value{Version: 7, Data: []byte("world"), Size: 11}, got)

	got, err = cl.GetValue(ctx, stream, []byte("missing"), 0, 100)
	require.NoError(t, err)
	require.Nil(t, got)

	for _, v := range svc.versions {
		require.Nil(t, v)
	}
}

func TestClient_FetcherIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	stream := common.HexToHash("0x0f")
	raw := []byte(`{"batch_header":{"batch_root":[1,2],"data_root":"0x` +
		"0000000000000000000000000000000000000000000000000000000000000001" +
		`"},"blob_disperse_infos":[{"blob_length":10,"rows":1,"cols":2}]}`)
	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("kv", &kvService{
		streamID: stream,
		values:   map[string][]byte{"batch": raw},
	}))
	t.Cleanup(srv.Stop)
	httpSrv := httptest.NewServer(srv)
	t.Cleanup(httpSrv.Close)

	cl, err := Dial(ctx, httpSrv.URL)
	require.NoError(t, err)
	t.Cleanup(cl.Close)

	f, err := kv.NewFetcher(cl, kv.WithMaxQuerySize(16))
	require.NoError(t, err)
	info, err := f.Fetch(ctx, stream, []byte("batch"))
	require.NoError(t, err)
	require.NotNil(t, info)
	require.Equal(t, common.HexToHash("0x01"), info.BatchHeader.DataRoot)
	require.Len(t, info.BlobDisperseInfos, 1)
}
