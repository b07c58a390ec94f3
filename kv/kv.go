// Package kv reads batch metadata from a key-value node.
package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru/v2"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/singleflight"

	"github.com/0glabs/0g-da-light/batch"
)

var log = logging.Logger("kv")

var (
	// ErrSizeChanged is returned when the declared value size differs between pages.
	ErrSizeChanged = errors.New("kv: value size changed between reads")
	// ErrInconsistentPage is returned when a page overshoots the declared size
	// or makes no progress.
	ErrInconsistentPage = errors.New("kv: inconsistent page")
)

// Value is one page of a stored value. Size is the total size of the value.
type Value struct {
	Version uint64
	Data    []byte
	Size    uint64
}

// Client reads byte ranges of values of a KV stream. A nil value with a nil
// error means the key does not exist.
type Client interface {
	GetValue(ctx context.Context, streamID common.Hash, key []byte, start, length uint64) (*Value, error)
}

// Fetcher fetches and decodes batch metadata. Decoded metadata is cached, as
// a batch never changes once it is stored.
type Fetcher struct {
	client Client
	params Parameters

	cache *lru.Cache[string, *batch.KVBatchInfo]
	group singleflight.Group
}

// NewFetcher creates a Fetcher reading from the given client.
func NewFetcher(client Client, options ...Option) (*Fetcher, error) {
	params := DefaultParameters()
	for _, opt := range options {
		opt(&params)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	f := &Fetcher{client: client, params: params}
	if params.CacheSize > 0 {
		cache, err := lru.New[string, *batch.KVBatchInfo](params.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("kv: creating cache: %w", err)
		}
		f.cache = cache
	}
	return f, nil
}

// Fetch returns the metadata of the batch stored under key in the given
// stream, or nil if the key does not exist.
func (f *Fetcher) Fetch(ctx context.Context, streamID common.Hash, key []byte) (*batch.KVBatchInfo, error) {
	id := streamID.Hex() + "/" + common.Bytes2Hex(key)
	if f.cache != nil {
		if info, ok := f.cache.Get(id); ok {
			return info, nil
		}
	}

	// the read is shared, so it must outlive the caller that started it
	ch := f.group.DoChan(id, func() (any, error) {
		// a fetch that just finished may have filled the cache
		if f.cache != nil {
			if info, ok := f.cache.Get(id); ok {
				return info, nil
			}
		}

		raw, err := f.read(context.WithoutCancel(ctx), streamID, key)
		if err != nil || raw == nil {
			return nil, err
		}

		info, err := batch.Decode(raw)
		if err != nil {
			return nil, err
		}
		if f.cache != nil {
			f.cache.Add(id, info)
		}
		return info, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Shared {
		log.Debugw("shared batch metadata fetch", "key", common.Bytes2Hex(key))
	}

	info, _ := res.Val.(*batch.KVBatchInfo)
	return info, nil
}

// read reassembles the whole value page by page.
func (f *Fetcher) read(ctx context.Context, streamID common.Hash, key []byte) ([]byte, error) {
	page, err := f.client.GetValue(ctx, streamID, key, 0, f.params.MaxQuerySize)
	if err != nil {
		return nil, fmt.Errorf("kv: reading value: %w", err)
	}
	if page == nil {
		return nil, nil
	}

	size := page.Size
	data := make([]byte, 0, min(size, f.params.MaxQuerySize))
	for {
		if uint64(len(page.Data)) > size-uint64(len(data)) {
			return nil, fmt.Errorf("%w: %d bytes at offset %d of %d", ErrInconsistentPage, len(page.Data), len(data), size)
		}
		data = append(data, page.Data...)
		if uint64(len(data)) == size {
			return data, nil
		}
		if len(page.Data) == 0 {
			return nil, fmt.Errorf("%w: empty page at offset %d of %d", ErrInconsistentPage, len(data), size)
		}

		page, err = f.client.GetValue(ctx, streamID, key, uint64(len(data)), f.params.MaxQuerySize)
		if err != nil {
			return nil, fmt.Errorf("kv: reading value at offset %d: %w", len(data), err)
		}
		if page == nil {
			return nil, fmt.Errorf("kv: value removed while reading at offset %d", len(data))
		}
		if page.Size != size {
			return nil, fmt.Errorf("%w: %d, then %d", ErrSizeChanged, size, page.Size)
		}
	}
}
