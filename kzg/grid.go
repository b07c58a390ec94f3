package kzg

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"

	"github.com/0glabs/0g-da-light/batch"
)

var (
	ErrInvalidGridSize = errors.New("kzg: data does not match grid size")
	ErrInvalidWidth    = errors.New("kzg: row width must be a power of two greater than one")
	ErrInvalidCell     = errors.New("kzg: cell is outside of the grid")
)

// EvaluationGrid holds rows of field elements in evaluation form: column c of
// a row is the row polynomial evaluated at the c-th root of unity of a domain
// as wide as the row.
type EvaluationGrid struct {
	rows, cols int
	evals      [][]fr.Element
}

// EvaluationGridFromRowSlices parses rows*cols big-endian field elements laid
// out row after row.
func EvaluationGridFromRowSlices(rows, cols int, data []byte) (*EvaluationGrid, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols*batch.CoeffSize {
		return nil, fmt.Errorf("%w: %dx%d from %d bytes", ErrInvalidGridSize, rows, cols, len(data))
	}

	evals := make([][]fr.Element, rows)
	for r := range evals {
		evals[r] = make([]fr.Element, cols)
		for c := range evals[r] {
			off := (r*cols + c) * batch.CoeffSize
			if err := evals[r][c].SetBytesCanonical(data[off : off+batch.CoeffSize]); err != nil {
				return nil, fmt.Errorf("kzg: element (%d, %d): %w", r, c, err)
			}
		}
	}
	return &EvaluationGrid{rows: rows, cols: cols, evals: evals}, nil
}

// Dims returns the grid's rows and columns.
func (g *EvaluationGrid) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// Get returns the evaluation at the given cell.
func (g *EvaluationGrid) Get(row, col int) (fr.Element, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return fr.Element{}, false
	}
	return g.evals[row][col], true
}

// MakePolynomialGrid interpolates every row into coefficient form.
func (g *EvaluationGrid) MakePolynomialGrid() (*PolynomialGrid, error) {
	if g.cols < 2 || bits.OnesCount(uint(g.cols)) != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, g.cols)
	}

	domain := fft.NewDomain(uint64(g.cols))
	polys := make([][]fr.Element, g.rows)
	for r, row := range g.evals {
		coeffs := make([]fr.Element, len(row))
		copy(coeffs, row)
		domain.FFTInverse(coeffs, fft.DIF)
		fft.BitReverse(coeffs)
		polys[r] = coeffs
	}
	return &PolynomialGrid{domain: domain, polys: polys}, nil
}

// PolynomialGrid holds the rows of an EvaluationGrid in coefficient form.
type PolynomialGrid struct {
	domain *fft.Domain
	polys  [][]fr.Element
}

// Commitment commits to the given row.
func (p *PolynomialGrid) Commitment(pp *PublicParams, row int) ([batch.CommitmentSize]byte, error) {
	if row < 0 || row >= len(p.polys) {
		return [batch.CommitmentSize]byte{}, fmt.Errorf("%w: row %d", ErrInvalidCell, row)
	}
	if len(p.polys[row]) > pp.MaxCols() {
		return [batch.CommitmentSize]byte{}, ErrParamsTooSmall
	}

	digest, err := commit(p.polys[row], pp)
	if err != nil {
		return [batch.CommitmentSize]byte{}, err
	}
	return digest.Bytes(), nil
}

// Proof opens the polynomial of the given row at the column's evaluation point.
func (p *PolynomialGrid) Proof(pp *PublicParams, pos Position) (Proof, error) {
	row, col := int(pos.Row), int(pos.Col)
	if row >= len(p.polys) || uint64(col) >= p.domain.Cardinality {
		return Proof{}, fmt.Errorf("%w: %v", ErrInvalidCell, pos)
	}
	if len(p.polys[row]) > pp.MaxCols() {
		return Proof{}, ErrParamsTooSmall
	}
	return open(p.polys[row], evaluationPoint(p.domain.Generator, col), pp)
}

// evaluationPoint returns generator^col.
func evaluationPoint(generator fr.Element, col int) fr.Element {
	var point fr.Element
	point.Exp(generator, big.NewInt(int64(col)))
	return point
}
