package segment_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/0glabs/0g-da-light/batch"
	"github.com/0glabs/0g-da-light/kzg"
	"github.com/0glabs/0g-da-light/segment"
	"github.com/0glabs/0g-da-light/segment/segmenttest"
)

// testBatch spans three segments, the last one partially filled.
func testBatch(t *testing.T) *segmenttest.Batch {
	t.Helper()
	pp, err := kzg.NewInsecurePublicParams([]byte("segment-test"), 4)
	require.NoError(t, err)
	b := segmenttest.NewBatch(t, pp, segmenttest.RandomBlob(t, 3000, 4))
	require.Len(t, b.Segments, 3)
	return b
}

func TestWithProof_Validate(t *testing.T) {
	b := testBatch(t)
	for _, seg := range b.Segments {
		require.NoError(t, seg.Validate(batch.EntriesPerSegment))
	}
	require.Len(t, b.Segments[0].Data, batch.SegmentSize)
	require.Less(t, len(b.Segments[2].Data), batch.SegmentSize)

	tests := []struct {
		name   string
		mutate func(*segment.WithProof)
		err    error
	}{
		{
			name:   "flipped data",
			mutate: func(s *segment.WithProof) { s.Data[100] ^= 0x01 },
			err:    segment.ErrProofMismatch,
		},
		{
			name:   "truncated data",
			mutate: func(s *segment.WithProof) { s.Data = s.Data[:len(s.Data)-batch.EntrySize] },
			err:    segment.ErrInvalidLength,
		},
		{
			name:   "unaligned data",
			mutate: func(s *segment.WithProof) { s.Data = s.Data[:len(s.Data)-1] },
			err:    segment.ErrInvalidLength,
		},
		{
			name:   "index out of range",
			mutate: func(s *segment.WithProof) { s.Index = 3 },
			err:    segment.ErrIndexOutOfRange,
		},
		{
			name:   "other index",
			mutate: func(s *segment.WithProof) { s.Index = 0 },
			err:    segment.ErrProofMismatch,
		},
		{
			name:   "other root",
			mutate: func(s *segment.WithProof) { s.Root = common.Hash{1} },
			err:    segment.ErrProofMismatch,
		},
		{
			name: "tampered lemma",
			mutate: func(s *segment.WithProof) {
				s.Proof.Lemma[1] = crypto.Keccak256Hash(s.Proof.Lemma[1][:])
			},
			err: segment.ErrProofMismatch,
		},
		{
			name:   "short path",
			mutate: func(s *segment.WithProof) { s.Proof.Path = s.Proof.Path[1:] },
			err:    segment.ErrProofMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := *b.Segments[1]
			seg.Data = append([]byte(nil), seg.Data...)
			seg.Proof = segment.FlowProof{
				Lemma: append([]common.Hash(nil), seg.Proof.Lemma...),
				Path:  append([]bool(nil), seg.Proof.Path...),
			}
			tt.mutate(&seg)
			require.ErrorIs(t, seg.Validate(batch.EntriesPerSegment), tt.err)
		})
	}
}

func TestWithProof_ValidateSingleSegment(t *testing.T) {
	data := make([]byte, 4*batch.EntrySize)
	data[0] = 0x01
	root := segment.Root(data)

	seg := &segment.WithProof{
		Root:     root,
		Data:     data,
		Index:    0,
		Proof:    segment.FlowProof{Lemma: []common.Hash{root, root}},
		FileSize: uint64(len(data)),
	}
	require.NoError(t, seg.Validate(batch.EntriesPerSegment))

	// storage nodes may return the root alone
	seg.Proof.Lemma = []common.Hash{root}
	require.NoError(t, seg.Validate(batch.EntriesPerSegment))

	seg.Proof.Lemma = []common.Hash{{1}}
	require.ErrorIs(t, seg.Validate(batch.EntriesPerSegment), segment.ErrProofMismatch)

	seg.Proof.Lemma = []common.Hash{root}
	seg.Root = common.Hash{1}
	require.ErrorIs(t, seg.Validate(batch.EntriesPerSegment), segment.ErrProofMismatch)

	seg.Root = root
	seg.Data = append([]byte(nil), data...)
	seg.Data[1] = 0x02
	require.ErrorIs(t, seg.Validate(batch.EntriesPerSegment), segment.ErrProofMismatch)
}

func TestFlowTree(t *testing.T) {
	for leaves := 1; leaves <= 9; leaves++ {
		roots := make([]common.Hash, leaves)
		for i := range roots {
			roots[i] = crypto.Keccak256Hash([]byte{byte(leaves), byte(i)})
		}
		tree, err := segment.NewFlowTree(roots)
		require.NoError(t, err)

		for i := range roots {
			proof, err := tree.Proof(uint64(i))
			require.NoError(t, err)
			require.NoError(t, proof.Validate(roots[i], tree.Root(), uint64(i), uint64(leaves)),
				"leaf %d of %d", i, leaves)

			for j := range roots {
				if j == i {
					continue
				}
				require.Error(t, proof.Validate(roots[i], tree.Root(), uint64(j), uint64(leaves)))
			}
		}

		_, err = tree.Proof(uint64(leaves))
		require.ErrorIs(t, err, segment.ErrIndexOutOfRange)
	}

	_, err := segment.NewFlowTree(nil)
	require.Error(t, err)
}

func TestExpectedLength(t *testing.T) {
	const per = batch.EntriesPerSegment
	require.EqualValues(t, 0, segment.NumSegments(0, per))
	require.EqualValues(t, 1, segment.NumSegments(1, per))
	require.EqualValues(t, 1, segment.NumSegments(batch.SegmentSize, per))
	require.EqualValues(t, 2, segment.NumSegments(batch.SegmentSize+1, per))

	require.EqualValues(t, batch.SegmentSize, segment.ExpectedLength(batch.SegmentSize+1, 0, per))
	require.EqualValues(t, batch.EntrySize, segment.ExpectedLength(batch.SegmentSize+1, 1, per))
	require.EqualValues(t, 0, segment.ExpectedLength(batch.SegmentSize+1, 2, per))
}
