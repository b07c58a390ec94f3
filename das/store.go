package das

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/namespace"
	"github.com/ipfs/go-datastore/query"
	"github.com/multiformats/go-base32"
)

var (
	storePrefix   = datastore.NewKey("das")
	samplesPrefix = datastore.NewKey("samples")
)

// ErrNoSamples is returned when a blob was never sampled.
var ErrNoSamples = errors.New("das: blob was not sampled")

// SampleRecord is the outcome of a completed sample.
type SampleRecord struct {
	Blob      uint32    `json:"blob"`
	Times     uint32    `json:"times"`
	Success   bool      `json:"success"`
	SampledAt time.Time `json:"sampled_at"`
}

// historyStore keeps the last sample of every blob under
// /das/samples/<base32(batch key)>/<blob index>.
type historyStore struct {
	ds datastore.Datastore
}

// newHistoryStore wraps the given datastore.Datastore with the `das` prefix.
func newHistoryStore(ds datastore.Datastore) *historyStore {
	return &historyStore{ds: namespace.Wrap(ds, storePrefix)}
}

func (s *historyStore) put(ctx context.Context, key []byte, rec SampleRecord) error {
	bs, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal sample record: %w", err)
	}
	return s.ds.Put(ctx, batchKey(key).ChildString(strconv.FormatUint(uint64(rec.Blob), 10)), bs)
}

func (s *historyStore) last(ctx context.Context, key []byte, blob uint32) (SampleRecord, error) {
	bs, err := s.ds.Get(ctx, batchKey(key).ChildString(strconv.FormatUint(uint64(blob), 10)))
	if errors.Is(err, datastore.ErrNotFound) {
		return SampleRecord{}, ErrNoSamples
	}
	if err != nil {
		return SampleRecord{}, err
	}

	var rec SampleRecord
	if err = json.Unmarshal(bs, &rec); err != nil {
		return SampleRecord{}, fmt.Errorf("unmarshal sample record: %w", err)
	}
	return rec, nil
}

// batch returns the last samples of every sampled blob of the batch.
func (s *historyStore) batch(ctx context.Context, key []byte) ([]SampleRecord, error) {
	res, err := s.ds.Query(ctx, query.Query{Prefix: batchKey(key).String()})
	if err != nil {
		return nil, err
	}
	entries, err := res.Rest()
	if err != nil {
		return nil, err
	}

	recs := make([]SampleRecord, 0, len(entries))
	for _, e := range entries {
		var rec SampleRecord
		if err = json.Unmarshal(e.Value, &rec); err != nil {
			return nil, fmt.Errorf("unmarshal sample record %s: %w", e.Key, err)
		}
		recs = append(recs, rec)
	}
	slices.SortFunc(recs, func(a, b SampleRecord) int {
		return cmp.Compare(a.Blob, b.Blob)
	})
	return recs, nil
}

func batchKey(key []byte) datastore.Key {
	return samplesPrefix.ChildString(base32.RawStdEncoding.EncodeToString(key))
}
