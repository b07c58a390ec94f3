package kzg

import (
	"fmt"
	"math"

	"github.com/0glabs/0g-da-light/batch"
)

// Dimensions of a blob's row by column grid.
type Dimensions struct {
	rows, cols uint16
}

// NewDimensions returns the grid dimensions for the given geometry, or false
// if the geometry cannot form a non-empty grid.
func NewDimensions(rows, cols uint32) (Dimensions, bool) {
	if rows == 0 || cols == 0 || rows > math.MaxUint16 || cols > math.MaxUint16 {
		return Dimensions{}, false
	}
	return Dimensions{rows: uint16(rows), cols: uint16(cols)}, true
}

func (d Dimensions) Rows() uint16 {
	return d.rows
}

func (d Dimensions) Cols() uint16 {
	return d.cols
}

// Size is the amount of cells in the grid.
func (d Dimensions) Size() uint32 {
	return uint32(d.rows) * uint32(d.cols)
}

// RowByteSize is the size of one serialized row.
func (d Dimensions) RowByteSize() int {
	return int(d.cols) * batch.CoeffSize
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.rows, d.cols)
}

// Position of a cell in the grid.
type Position struct {
	Row uint16 `json:"row"`
	Col uint16 `json:"col"`
}
