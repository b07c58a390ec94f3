package batch

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAllocateRows_Empty(t *testing.T) {
	require.Empty(t, AllocateRows(nil))
	require.Empty(t, AllocateRows([]BlobDisperseInfo{}))
}

func TestAllocateRows_Interleaves(t *testing.T) {
	locs := AllocateRows([]BlobDisperseInfo{
		{Rows: 2, Cols: 4},
		{Rows: 1, Cols: 4},
	})
	require.Len(t, locs, 2)

	// chunk is 4*32+48 = 176 bytes, blob 1 sits between the two rows of blob 0
	assert.Equal(t, []uint32{0, 0}, locs[0].SegmentIndexes)
	assert.Equal(t, []uint32{0, 352}, locs[0].Offsets)
	assert.Equal(t, []uint32{0}, locs[1].SegmentIndexes)
	assert.Equal(t, []uint32{176}, locs[1].Offsets)
}

func TestAllocateRows_FirstBlockingBlobClosesSegment(t *testing.T) {
	locs := AllocateRows([]BlobDisperseInfo{
		{Rows: 2, Cols: 4096}, // 131120 bytes per chunk
		{Rows: 1, Cols: 4096},
		{Rows: 1, Cols: 1}, // 80 bytes, would fit after blob 0 but is never reached
	})

	assert.Equal(t, []uint32{0, 1}, locs[0].SegmentIndexes)
	assert.Equal(t, []uint32{0, 0}, locs[0].Offsets)
	assert.Equal(t, []uint32{2}, locs[1].SegmentIndexes)
	assert.Equal(t, []uint32{0}, locs[1].Offsets)
	assert.Equal(t, []uint32{2}, locs[2].SegmentIndexes)
	assert.Equal(t, []uint32{131120}, locs[2].Offsets)
}

func TestAllocateRows_WrapsToCursorNotZero(t *testing.T) {
	locs := AllocateRows([]BlobDisperseInfo{
		{Rows: 1, Cols: 8190}, // fills segment 0 on its own
		{Rows: 3, Cols: 1},
		{Rows: 1, Cols: 1},
	})

	assert.Equal(t, []uint32{0}, locs[0].SegmentIndexes)
	// segment 1 cycles over blobs 1 and 2 only
	assert.Equal(t, []uint32{1, 1, 1}, locs[1].SegmentIndexes)
	assert.Equal(t, []uint32{0, 160, 240}, locs[1].Offsets)
	assert.Equal(t, []uint32{1}, locs[2].SegmentIndexes)
	assert.Equal(t, []uint32{80}, locs[2].Offsets)
}

func TestAllocateRows_ZeroRowsAndOversized(t *testing.T) {
	locs := AllocateRows([]BlobDisperseInfo{
		{Rows: 0, Cols: 4},
		{Rows: 2, Cols: 10000}, // can never fit into a segment
		{Rows: 1, Cols: 4},
	})

	assert.Equal(t, 0, locs[0].Rows())
	assert.Equal(t, 0, locs[1].Rows())
	assert.Equal(t, []uint32{0}, locs[2].SegmentIndexes)
	assert.Equal(t, []uint32{0}, locs[2].Offsets)
}

func genGeometry(t *rapid.T) []BlobDisperseInfo {
	n := rapid.IntRange(1, 8).Draw(t, "blobs")
	infos := make([]BlobDisperseInfo, n)
	for i := range infos {
		infos[i] = BlobDisperseInfo{
			Rows: uint32(rapid.IntRange(0, 40).Draw(t, "rows")),
			Cols: uint32(rapid.IntRange(1, 8190).Draw(t, "cols")),
		}
	}
	return infos
}

func TestAllocateRows_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		infos := genGeometry(t)
		locs := AllocateRows(infos)
		require.Len(t, locs, len(infos))

		type span struct{ from, to uint64 }
		segments := make(map[uint32][]span)
		for j, loc := range locs {
			rows := int(infos[j].Rows)
			require.Len(t, loc.SegmentIndexes, rows)
			require.Len(t, loc.Offsets, rows)

			l := ChunkSize(infos[j].Cols)
			for r := 0; r < rows; r++ {
				from := uint64(loc.Offsets[r])
				require.LessOrEqual(t, from+l, uint64(SegmentSize))
				segments[loc.SegmentIndexes[r]] = append(segments[loc.SegmentIndexes[r]], span{from, from + l})
			}
		}

		for seg, spans := range segments {
			sort.Slice(spans, func(a, b int) bool { return spans[a].from < spans[b].from })
			for k := 1; k < len(spans); k++ {
				require.LessOrEqualf(t, spans[k-1].to, spans[k].from, "overlap in segment %d", seg)
			}
		}

		require.Equal(t, locs, AllocateRows(infos))
	})
}
