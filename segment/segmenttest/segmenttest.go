// Package segmenttest builds dispersed batches for tests: blob rows with
// their real KZG commitments laid out into segments with valid proofs.
package segmenttest

import (
	"context"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/0glabs/0g-da-light/batch"
	"github.com/0glabs/0g-da-light/kzg"
	"github.com/0glabs/0g-da-light/segment"
)

// Blob is a blob in evaluation form: Rows*Cols canonical field elements, row
// after row.
type Blob struct {
	Rows, Cols uint32
	Data       []byte
}

// Row returns the bytes of row r.
func (b Blob) Row(r uint32) []byte {
	size := int(b.Cols) * batch.CoeffSize
	return b.Data[int(r)*size : int(r+1)*size]
}

// RandomBlob generates a blob of random field elements.
func RandomBlob(t testing.TB, rows, cols uint32) Blob {
	t.Helper()
	data := make([]byte, 0, int(rows*cols)*batch.CoeffSize)
	for i := uint32(0); i < rows*cols; i++ {
		var e fr.Element
		_, err := e.SetRandom()
		require.NoError(t, err)
		b := e.Bytes()
		data = append(data, b[:]...)
	}
	return Blob{Rows: rows, Cols: cols, Data: data}
}

// Batch is a dispersed batch as storage nodes serve it.
type Batch struct {
	Info      *batch.KVBatchInfo
	Blobs     []Blob
	Locations []batch.BlobLocation
	Segments  []*segment.WithProof

	flow []byte
}

// NewBatch lays the blobs out with batch.AllocateRows, appends the row
// commitments computed with pp and splits the resulting flow into segments.
func NewBatch(t testing.TB, pp *kzg.PublicParams, blobs ...Blob) *Batch {
	t.Helper()
	return newBatch(t, blobs, func(cols uint32, row []byte) [batch.CommitmentSize]byte {
		grid, err := kzg.EvaluationGridFromRowSlices(1, int(cols), row)
		require.NoError(t, err)
		polys, err := grid.MakePolynomialGrid()
		require.NoError(t, err)
		commitment, err := polys.Commitment(pp, 0)
		require.NoError(t, err)
		return commitment
	})
}

// NewUncommittedBatch lays the blobs out like NewBatch but leaves every row
// commitment zeroed, which does not decode to a curve point. Blobs may hold
// arbitrary bytes and any width.
func NewUncommittedBatch(t testing.TB, blobs ...Blob) *Batch {
	t.Helper()
	return newBatch(t, blobs, func(uint32, []byte) [batch.CommitmentSize]byte {
		return [batch.CommitmentSize]byte{}
	})
}

func newBatch(
	t testing.TB,
	blobs []Blob,
	commit func(cols uint32, row []byte) [batch.CommitmentSize]byte,
) *Batch {
	t.Helper()

	infos := make([]batch.BlobDisperseInfo, len(blobs))
	for i, b := range blobs {
		infos[i] = batch.BlobDisperseInfo{BlobLength: uint64(len(b.Data)), Rows: b.Rows, Cols: b.Cols}
	}
	locations := batch.AllocateRows(infos)

	var size uint64
	for i, loc := range locations {
		chunk := batch.ChunkSize(blobs[i].Cols)
		for r := range loc.SegmentIndexes {
			end := uint64(loc.SegmentIndexes[r])*batch.SegmentSize + uint64(loc.Offsets[r]) + chunk
			size = max(size, end)
		}
	}
	require.NotZero(t, size, "batch without rows")

	flow := make([]byte, (size+batch.EntrySize-1)/batch.EntrySize*batch.EntrySize)
	for i, loc := range locations {
		blob := blobs[i]
		for r := range loc.SegmentIndexes {
			row := blob.Row(uint32(r))
			commitment := commit(blob.Cols, row)

			off := uint64(loc.SegmentIndexes[r])*batch.SegmentSize + uint64(loc.Offsets[r])
			n := copy(flow[off:], row)
			copy(flow[off+uint64(n):], commitment[:])
		}
	}

	b := &Batch{
		Info: &batch.KVBatchInfo{
			BatchHeader: batch.BatchHeader{
				BatchRoot: crypto.Keccak256(flow),
			},
			BlobDisperseInfos: infos,
		},
		Blobs:     blobs,
		Locations: locations,
		flow:      flow,
	}
	b.split(t, size)
	return b
}

// CommitmentOffset returns the offset in the flow of the commitment of the
// given row.
func (b *Batch) CommitmentOffset(blob, row int) uint64 {
	loc := b.Locations[blob]
	return uint64(loc.SegmentIndexes[row])*batch.SegmentSize +
		uint64(loc.Offsets[row]) +
		uint64(b.Blobs[blob].Cols)*batch.CoeffSize
}

// CorruptCommitment returns a copy of the batch in which one byte of the
// commitment of the given row is flipped. Segments and proofs of the copy are
// rebuilt, so storage nodes serve the corrupted commitment as valid data.
func (b *Batch) CorruptCommitment(t testing.TB, blob, row int) *Batch {
	t.Helper()

	flow := make([]byte, len(b.flow))
	copy(flow, b.flow)
	flow[b.CommitmentOffset(blob, row)] ^= 0x01

	info := *b.Info
	corrupted := &Batch{
		Info:      &info,
		Blobs:     b.Blobs,
		Locations: b.Locations,
		flow:      flow,
	}
	corrupted.split(t, b.Segments[0].FileSize)
	return corrupted
}

// Encoded returns the KV value of the batch metadata.
func (b *Batch) Encoded(t testing.TB) []byte {
	t.Helper()
	raw, err := b.Info.Encode()
	require.NoError(t, err)
	return raw
}

// Getter serves the segments of the batch.
func (b *Batch) Getter() segment.Getter {
	return Getter{b.Segments}
}

func (b *Batch) split(t testing.TB, fileSize uint64) {
	t.Helper()

	var roots []common.Hash
	var datas [][]byte
	for off := 0; off < len(b.flow); off += batch.SegmentSize {
		data := b.flow[off:min(off+batch.SegmentSize, len(b.flow))]
		datas = append(datas, data)
		roots = append(roots, segment.Root(data))
	}

	tree, err := segment.NewFlowTree(roots)
	require.NoError(t, err)

	b.Info.BatchHeader.DataRoot = tree.Root()
	b.Segments = make([]*segment.WithProof, len(datas))
	for i, data := range datas {
		proof, err := tree.Proof(uint64(i))
		require.NoError(t, err)
		b.Segments[i] = &segment.WithProof{
			Root:     tree.Root(),
			Data:     data,
			Index:    uint64(i),
			Proof:    proof,
			FileSize: fileSize,
		}
	}
}

// Getter is an in-memory segment.Getter over a fixed set of segments.
type Getter struct {
	Segments []*segment.WithProof
}

func (g Getter) GetSegment(_ context.Context, root common.Hash, index uint64) (*segment.WithProof, error) {
	if index >= uint64(len(g.Segments)) || g.Segments[index].Root != root {
		return nil, nil
	}

	seg := *g.Segments[index]
	seg.Data = append([]byte(nil), seg.Data...)
	return &seg, nil
}
