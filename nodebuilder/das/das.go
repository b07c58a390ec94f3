package das

import (
	"context"

	"github.com/0glabs/0g-da-light/das"
)

//go:generate mockgen -destination=mocks/api.go -package=mocks . Module

var _ Module = (*API)(nil)

// Module exposes blob sampling of the node.
type Module interface {
	// Sample samples `times` random cells of the blob at blobIndex of the
	// batch stored under key and reports whether all of them verified.
	// At most rows*cols cells are drawn and zero times draws none.
	Sample(ctx context.Context, key []byte, blobIndex, times uint32) (bool, error)
	// Retrieve returns the data of the blob at blobIndex of the batch stored
	// under key. It is not served yet.
	Retrieve(ctx context.Context, key []byte, blobIndex uint32) ([]byte, error)
	// LastSample returns the last completed sample of a blob.
	LastSample(ctx context.Context, key []byte, blobIndex uint32) (das.SampleRecord, error)
	// BatchSamples returns the last completed samples of all sampled blobs of
	// a batch.
	BatchSamples(ctx context.Context, key []byte) ([]das.SampleRecord, error)
}

// API is a wrapper around Module for the RPC.
type API struct {
	Internal struct {
		Sample       func(ctx context.Context, key []byte, blobIndex, times uint32) (bool, error)      `perm:"read"`
		Retrieve     func(ctx context.Context, key []byte, blobIndex uint32) ([]byte, error)           `perm:"read"`
		LastSample   func(ctx context.Context, key []byte, blobIndex uint32) (das.SampleRecord, error) `perm:"read"`
		BatchSamples func(ctx context.Context, key []byte) ([]das.SampleRecord, error)                 `perm:"read"`
	}
}

func (api *API) Sample(ctx context.Context, key []byte, blobIndex, times uint32) (bool, error) {
	return api.Internal.Sample(ctx, key, blobIndex, times)
}

func (api *API) Retrieve(ctx context.Context, key []byte, blobIndex uint32) ([]byte, error) {
	return api.Internal.Retrieve(ctx, key, blobIndex)
}

func (api *API) LastSample(ctx context.Context, key []byte, blobIndex uint32) (das.SampleRecord, error) {
	return api.Internal.LastSample(ctx, key, blobIndex)
}

func (api *API) BatchSamples(ctx context.Context, key []byte) ([]das.SampleRecord, error) {
	return api.Internal.BatchSamples(ctx, key)
}
