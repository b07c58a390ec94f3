package storage

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"

	"github.com/0glabs/0g-da-light/segment"
)

type zgsService struct {
	segments map[uint64]*segment.WithProof
	root     common.Hash
}

func (s *zgsService) DownloadSegmentWithProof(root common.Hash, index uint64) (*segment.WithProof, error) {
	if index == 99 {
		return nil, errors.New("segment index overflow")
	}
	if root != s.root {
		return nil, nil
	}
	return s.segments[index], nil
}

func TestClient_GetSegment(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	root := common.HexToHash("0xabcdef")
	want := &segment.WithProof{
		Root:  root,
		Data:  []byte{1, 2, 3, 4},
		Index: 1,
		Proof: segment.FlowProof{
			Lemma: []common.Hash{common.HexToHash("0x01"), common.HexToHash("0x02"), root},
			Path:  []bool{true},
		},
		FileSize: 4,
	}

	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("zgs", &zgsService{
		root:     root,
		segments: map[uint64]*segment.WithProof{1: want},
	}))
	t.Cleanup(srv.Stop)
	httpSrv := httptest.NewServer(srv)
	t.Cleanup(httpSrv.Close)

	cl, err := Dial(ctx, httpSrv.URL)
	require.NoError(t, err)
	t.Cleanup(cl.Close)
	require.Equal(t, httpSrv.URL, cl.URL())

	got, err := cl.GetSegment(ctx, root, 1)
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = cl.GetSegment(ctx, root, 0)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = cl.GetSegment(ctx, common.HexToHash("0x01"), 1)
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = cl.GetSegment(ctx, root, 99)
	require.ErrorContains(t, err, "segment index overflow")
}
