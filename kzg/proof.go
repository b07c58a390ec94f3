package kzg

import (
	"errors"
	"fmt"

	bls "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
	gkzg "github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"

	"github.com/0glabs/0g-da-light/batch"
)

const (
	// ProofSize is the size of a serialized opening proof.
	ProofSize = bls.SizeOfG1AffineCompressed
	// CellSize is the size of a cell's content: the opening proof followed by
	// the evaluation it proves.
	CellSize = ProofSize + batch.CoeffSize
)

// Proof is a KZG opening proof of a row polynomial at one point.
type Proof struct {
	opening gkzg.OpeningProof
}

// ClaimedValue is the evaluation the proof attests to.
func (p Proof) ClaimedValue() fr.Element {
	return p.opening.ClaimedValue
}

// Bytes returns the compressed quotient commitment of the proof.
func (p Proof) Bytes() [ProofSize]byte {
	return p.opening.H.Bytes()
}

// Cell is a sampled grid cell together with the proof of its evaluation.
type Cell struct {
	Position Position
	Content  [CellSize]byte
}

// NewCell packs the proof and the evaluation data into a cell.
func NewCell(pos Position, proof Proof, data fr.Element) Cell {
	cell := Cell{Position: pos}
	proofBytes, dataBytes := proof.Bytes(), data.Bytes()
	copy(cell.Content[:ProofSize], proofBytes[:])
	copy(cell.Content[ProofSize:], dataBytes[:])
	return cell
}

// Verify checks that the cell's evaluation is an opening of the committed row
// polynomial at the cell's column. A false result with a nil error means the
// proof is well-formed but does not match the commitment.
func Verify(
	pp *PublicParams,
	dims Dimensions,
	commitment [batch.CommitmentSize]byte,
	cell Cell,
) (bool, error) {
	if cell.Position.Col >= dims.Cols() {
		return false, fmt.Errorf("%w: %v in %s", ErrInvalidCell, cell.Position, dims)
	}

	var digest gkzg.Digest
	if _, err := digest.SetBytes(commitment[:]); err != nil {
		return false, fmt.Errorf("kzg: decoding commitment: %w", err)
	}

	var opening gkzg.OpeningProof
	if _, err := opening.H.SetBytes(cell.Content[:ProofSize]); err != nil {
		return false, fmt.Errorf("kzg: decoding proof: %w", err)
	}
	if err := opening.ClaimedValue.SetBytesCanonical(cell.Content[ProofSize:]); err != nil {
		return false, fmt.Errorf("kzg: decoding evaluation: %w", err)
	}

	domain := fft.NewDomain(uint64(dims.Cols()))
	point := evaluationPoint(domain.Generator, int(cell.Position.Col))
	err := gkzg.Verify(&digest, &opening, point, pp.verifyingKey())
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gkzg.ErrVerifyOpeningProof):
		return false, nil
	default:
		return false, fmt.Errorf("kzg: verifying opening: %w", err)
	}
}

func commit(poly []fr.Element, pp *PublicParams) (gkzg.Digest, error) {
	digest, err := gkzg.Commit(poly, pp.provingKey())
	if err != nil {
		return gkzg.Digest{}, fmt.Errorf("kzg: committing: %w", err)
	}
	return digest, nil
}

func open(poly []fr.Element, point fr.Element, pp *PublicParams) (Proof, error) {
	opening, err := gkzg.Open(poly, point, pp.provingKey())
	if err != nil {
		return Proof{}, fmt.Errorf("kzg: opening: %w", err)
	}
	return Proof{opening: opening}, nil
}
