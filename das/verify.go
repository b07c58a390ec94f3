package das

import (
	"fmt"

	"github.com/0glabs/0g-da-light/batch"
	"github.com/0glabs/0g-da-light/kzg"
)

// verifyCell opens the row chunk stored at offset of the segment at the
// sampled column and verifies the opening against the chunk's commitment.
func verifyCell(
	pp *kzg.PublicParams,
	dims kzg.Dimensions,
	segment []byte,
	offset uint32,
	pos kzg.Position,
) (bool, error) {
	rowEnd := int(offset) + dims.RowByteSize()
	chunkEnd := rowEnd + batch.CommitmentSize
	if chunkEnd > len(segment) {
		return false, fmt.Errorf("row chunk [%d, %d) exceeds segment of %d bytes", offset, chunkEnd, len(segment))
	}

	var commitment [batch.CommitmentSize]byte
	copy(commitment[:], segment[rowEnd:chunkEnd])

	grid, err := kzg.EvaluationGridFromRowSlices(1, int(dims.Cols()), segment[offset:rowEnd])
	if err != nil {
		return false, err
	}
	polys, err := grid.MakePolynomialGrid()
	if err != nil {
		return false, err
	}
	proof, err := polys.Proof(pp, kzg.Position{Row: 0, Col: pos.Col})
	if err != nil {
		return false, err
	}
	data, ok := grid.Get(0, int(pos.Col))
	if !ok {
		return false, fmt.Errorf("column %d outside of %s", pos.Col, dims)
	}

	return kzg.Verify(pp, dims, commitment, kzg.NewCell(pos, proof, data))
}
