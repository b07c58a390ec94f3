package kzg

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	gkzg "github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
	"github.com/ethereum/go-ethereum/crypto"
)

// DefaultMaxCols is the widest row worth committing to: the largest power of
// two whose row chunk still fits into one segment.
const DefaultMaxCols = 4096

var ErrParamsTooSmall = errors.New("kzg: public params are too small for the row width")

// PublicParams is the structured reference string shared by everyone that
// commits to, opens or verifies rows. It is immutable once constructed and
// safe for concurrent use.
type PublicParams struct {
	srs *gkzg.SRS
}

// NewInsecurePublicParams deterministically derives public parameters able to
// commit to rows of up to maxCols columns from the given seed.
//
// The secret of the setup is the hash of the seed, so anyone knowing the seed
// can open a commitment to any value. Such parameters only suit tests and
// local networks; everything else must read the output of a trusted setup
// with ReadPublicParams.
func NewInsecurePublicParams(seed []byte, maxCols int) (*PublicParams, error) {
	if maxCols < 2 {
		maxCols = 2
	}
	alpha := new(big.Int).SetBytes(crypto.Keccak256(seed))
	srs, err := gkzg.NewSRS(uint64(maxCols), alpha)
	if err != nil {
		return nil, fmt.Errorf("kzg: generating srs: %w", err)
	}
	return &PublicParams{srs: srs}, nil
}

// ReadPublicParams reads public parameters previously written with WriteTo.
func ReadPublicParams(r io.Reader) (*PublicParams, error) {
	srs := new(gkzg.SRS)
	if _, err := srs.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("kzg: reading srs: %w", err)
	}
	return &PublicParams{srs: srs}, nil
}

// WriteTo serializes the public parameters.
func (pp *PublicParams) WriteTo(w io.Writer) (int64, error) {
	return pp.srs.WriteTo(w)
}

// MaxCols reports the widest row the parameters can commit to.
func (pp *PublicParams) MaxCols() int {
	return len(pp.srs.Pk.G1)
}

func (pp *PublicParams) provingKey() gkzg.ProvingKey {
	return pp.srs.Pk
}

func (pp *PublicParams) verifyingKey() gkzg.VerifyingKey {
	return pp.srs.Vk
}
