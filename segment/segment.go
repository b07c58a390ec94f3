package segment

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/0glabs/0g-da-light/batch"
)

var (
	ErrInvalidLength   = errors.New("segment: invalid data length")
	ErrIndexOutOfRange = errors.New("segment: index out of range")
	ErrProofMismatch   = errors.New("segment: proof does not match")
)

// WithProof is a segment as served by storage nodes: the raw segment data and
// a proof of its inclusion into the file identified by Root.
type WithProof struct {
	Root     common.Hash `json:"root"`
	Data     []byte      `json:"data"`
	Index    uint64      `json:"index"`
	Proof    FlowProof   `json:"proof"`
	FileSize uint64      `json:"fileSize"`
}

// Validate checks the segment against its own proof for a file split into
// segments of entriesPerSegment entries.
func (s *WithProof) Validate(entriesPerSegment int) error {
	if entriesPerSegment <= 0 {
		return fmt.Errorf("segment: invalid entries per segment %d", entriesPerSegment)
	}
	if len(s.Data) == 0 || len(s.Data)%batch.EntrySize != 0 {
		return fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(s.Data))
	}

	segments := NumSegments(s.FileSize, entriesPerSegment)
	if s.Index >= segments {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, s.Index, segments)
	}
	if expected := ExpectedLength(s.FileSize, s.Index, entriesPerSegment); uint64(len(s.Data)) != expected {
		return fmt.Errorf("%w: segment %d has %d bytes, expected %d", ErrInvalidLength, s.Index, len(s.Data), expected)
	}

	return s.Proof.Validate(Root(s.Data), s.Root, s.Index, segments)
}

// NumSegments returns the amount of segments a file of the given size is split into.
func NumSegments(fileSize uint64, entriesPerSegment int) uint64 {
	entries := numEntries(fileSize)
	per := uint64(entriesPerSegment)
	return (entries + per - 1) / per
}

// ExpectedLength returns the byte length of the segment at index. Every segment
// is full except the last one, which holds the remaining entries. The last
// entry of a file is padded to a full entry.
func ExpectedLength(fileSize, index uint64, entriesPerSegment int) uint64 {
	per := uint64(entriesPerSegment)
	segments := NumSegments(fileSize, entriesPerSegment)
	if index+1 < segments {
		return per * batch.EntrySize
	}
	if index >= segments {
		return 0
	}
	return (numEntries(fileSize) - index*per) * batch.EntrySize
}

func numEntries(fileSize uint64) uint64 {
	return (fileSize + batch.EntrySize - 1) / batch.EntrySize
}

// FlowProof proves the inclusion of a segment root into a file's data root.
// Lemma holds the segment root, the sibling hashes from bottom to top and the
// data root. Path holds one flag per sibling which is true when the proven
// node is the left child at that level. The proof of a single segment file may
// hold the root alone.
type FlowProof struct {
	Lemma []common.Hash `json:"lemma"`
	Path  []bool        `json:"path"`
}

// Validate checks that the proof connects leaf at position index of a tree
// with the given amount of leaves to root.
func (p FlowProof) Validate(leaf, root common.Hash, index, leaves uint64) error {
	expected := proofPath(index, leaves)
	if len(expected) == 0 && len(p.Path) == 0 && len(p.Lemma) == 1 {
		if leaf != root || p.Lemma[0] != root {
			return fmt.Errorf("%w: root %s, leaf %s, proven %s", ErrProofMismatch, root, leaf, p.Lemma[0])
		}
		return nil
	}
	if len(p.Path) != len(expected) || len(p.Lemma) != len(expected)+2 {
		return fmt.Errorf("%w: path of %d nodes and lemma of %d hashes for index %d of %d",
			ErrProofMismatch, len(p.Path), len(p.Lemma), index, leaves)
	}
	for i := range expected {
		if p.Path[i] != expected[i] {
			return fmt.Errorf("%w: path does not encode index %d", ErrProofMismatch, index)
		}
	}
	if p.Lemma[0] != leaf {
		return fmt.Errorf("%w: leaf %s, proven %s", ErrProofMismatch, leaf, p.Lemma[0])
	}
	if p.Lemma[len(p.Lemma)-1] != root {
		return fmt.Errorf("%w: root %s, proven %s", ErrProofMismatch, root, p.Lemma[len(p.Lemma)-1])
	}

	node := leaf
	for i, left := range p.Path {
		sibling := p.Lemma[i+1]
		if left {
			node = hashPair(node, sibling)
		} else {
			node = hashPair(sibling, node)
		}
	}
	if node != root {
		return fmt.Errorf("%w: computed root %s", ErrProofMismatch, node)
	}
	return nil
}
