package segment

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/0glabs/0g-da-light/batch"
)

// Root computes the merkle root of segment data. Leaves are the keccak256
// hashes of its entries. A node without a sibling is promoted to the next
// level unchanged.
func Root(data []byte) common.Hash {
	leaves := make([]common.Hash, 0, len(data)/batch.EntrySize)
	for off := 0; off < len(data); off += batch.EntrySize {
		end := min(off+batch.EntrySize, len(data))
		leaves = append(leaves, crypto.Keccak256Hash(data[off:end]))
	}
	if len(leaves) == 0 {
		return common.Hash{}
	}
	for len(leaves) > 1 {
		leaves = nextLevel(leaves)
	}
	return leaves[0]
}

// FlowTree is the merkle tree over the segment roots of a file.
type FlowTree struct {
	levels [][]common.Hash
}

// NewFlowTree builds the tree over the given segment roots.
func NewFlowTree(segmentRoots []common.Hash) (*FlowTree, error) {
	if len(segmentRoots) == 0 {
		return nil, fmt.Errorf("segment: flow tree without segments")
	}

	levels := [][]common.Hash{segmentRoots}
	for level := segmentRoots; len(level) > 1; {
		level = nextLevel(level)
		levels = append(levels, level)
	}
	return &FlowTree{levels: levels}, nil
}

// Root is the data root of the file.
func (t *FlowTree) Root() common.Hash {
	return t.levels[len(t.levels)-1][0]
}

// Proof returns the inclusion proof of the segment at index.
func (t *FlowTree) Proof(index uint64) (FlowProof, error) {
	leaves := uint64(len(t.levels[0]))
	if index >= leaves {
		return FlowProof{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, leaves)
	}

	proof := FlowProof{Lemma: []common.Hash{t.levels[0][index]}}
	pos := index
	for _, level := range t.levels[:len(t.levels)-1] {
		width := uint64(len(level))
		switch {
		case pos%2 == 1:
			proof.Lemma = append(proof.Lemma, level[pos-1])
			proof.Path = append(proof.Path, false)
		case pos+1 < width:
			proof.Lemma = append(proof.Lemma, level[pos+1])
			proof.Path = append(proof.Path, true)
		}
		pos /= 2
	}
	proof.Lemma = append(proof.Lemma, t.Root())
	return proof, nil
}

// proofPath returns the path flags a proof of the leaf at index must carry.
func proofPath(index, leaves uint64) []bool {
	var path []bool
	for pos, width := index, leaves; width > 1; pos, width = pos/2, (width+1)/2 {
		if pos%2 == 0 && pos+1 >= width {
			continue
		}
		path = append(path, pos%2 == 0)
	}
	return path
}

func nextLevel(level []common.Hash) []common.Hash {
	next := make([]common.Hash, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		if i+1 == len(level) {
			next = append(next, level[i])
			continue
		}
		next = append(next, hashPair(level[i], level[i+1]))
	}
	return next
}

func hashPair(left, right common.Hash) common.Hash {
	return crypto.Keccak256Hash(left[:], right[:])
}
