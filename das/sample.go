package das

import (
	crand "crypto/rand"
	"math/big"

	"github.com/0glabs/0g-da-light/kzg"
)

// SamplePositions picks min(times, dims.Size()) unique random cells of the grid.
func SamplePositions(dims kzg.Dimensions, times uint32) []kzg.Position {
	num := min(times, dims.Size())
	smpls := make(map[kzg.Position]struct{}, num)
	for uint32(len(smpls)) < num {
		pos := kzg.Position{
			Row: uint16(randInt(int(dims.Rows()))),
			Col: uint16(randInt(int(dims.Cols()))),
		}
		smpls[pos] = struct{}{}
	}

	positions := make([]kzg.Position, 0, len(smpls))
	for pos := range smpls {
		positions = append(positions, pos)
	}
	return positions
}

func randInt(max int) int {
	n, err := crand.Int(crand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err) // won't panic as rand.Reader is endless
	}

	return int(n.Int64())
}
