package segment

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -destination=mocks/getter.go -package=mocks . Getter

// Getter fetches a single segment of the file with the given data root.
// A nil segment with a nil error means the segment is not present at this
// endpoint.
type Getter interface {
	GetSegment(ctx context.Context, root common.Hash, index uint64) (*WithProof, error)
}
