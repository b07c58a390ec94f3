package das

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/0glabs/0g-da-light/kzg"
)

func TestSamplePositions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := uint32(rapid.IntRange(1, 64).Draw(t, "rows"))
		cols := uint32(rapid.IntRange(1, 64).Draw(t, "cols"))
		times := uint32(rapid.IntRange(0, 5000).Draw(t, "times"))

		dims, ok := kzg.NewDimensions(rows, cols)
		require.True(t, ok)

		positions := SamplePositions(dims, times)
		require.Len(t, positions, int(min(times, rows*cols)))

		seen := make(map[kzg.Position]struct{}, len(positions))
		for _, pos := range positions {
			require.Less(t, uint32(pos.Row), rows)
			require.Less(t, uint32(pos.Col), cols)
			_, dup := seen[pos]
			require.False(t, dup, "duplicate position %v", pos)
			seen[pos] = struct{}{}
		}
	})
}

func TestSamplePositions_Full(t *testing.T) {
	dims, ok := kzg.NewDimensions(3, 4)
	require.True(t, ok)

	positions := SamplePositions(dims, 100)
	require.Len(t, positions, 12)
}
