package das

import (
	"context"
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ipfs/go-datastore"
	logging "github.com/ipfs/go-log/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/0glabs/0g-da-light/batch"
	"github.com/0glabs/0g-da-light/kzg"
	"github.com/0glabs/0g-da-light/libs/utils"
)

var (
	log    = logging.Logger("das")
	tracer = otel.Tracer("das")
)

var (
	// ErrBatchNotFound is returned when no metadata is stored under the batch key.
	ErrBatchNotFound = errors.New("das: batch not found")
	// ErrInvalidBlobIndex is returned when the batch has no blob at the requested index.
	ErrInvalidBlobIndex = errors.New("das: invalid blob index")
	// ErrNotImplemented is returned by operations the light node does not serve yet.
	ErrNotImplemented = errors.New("das: not implemented")
)

// BatchFetcher reads batch metadata. A nil result with a nil error means the
// batch is unknown.
type BatchFetcher interface {
	Fetch(ctx context.Context, streamID common.Hash, key []byte) (*batch.KVBatchInfo, error)
}

// SegmentDownloader downloads segments of a file, aligned with the requested
// indexes.
type SegmentDownloader interface {
	Download(ctx context.Context, root common.Hash, indexes []uint64) ([][]byte, error)
}

// Sampler checks availability of blobs by sampling random cells.
type Sampler struct {
	params Parameters

	fetcher    BatchFetcher
	downloader SegmentDownloader
	pp         *kzg.PublicParams
	history    *historyStore

	clock   clock.Clock
	metrics *metrics
}

// NewSampler creates a new Sampler. Sample results are kept in ds.
func NewSampler(
	fetcher BatchFetcher,
	downloader SegmentDownloader,
	pp *kzg.PublicParams,
	ds datastore.Datastore,
	options ...Option,
) (*Sampler, error) {
	params := DefaultParameters()
	for _, opt := range options {
		opt(&params)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Sampler{
		params:     params,
		fetcher:    fetcher,
		downloader: downloader,
		pp:         pp,
		history:    newHistoryStore(ds),
		clock:      clock.New(),
	}, nil
}

// Stop releases the Sampler's metrics.
func (s *Sampler) Stop(context.Context) error {
	return s.metrics.close()
}

// Sample samples min(times, rows*cols) random cells of the blob at blobIndex
// of the batch stored under key and reports whether all of them verified.
// Requests above MaxSampleAmount are capped at it. A times of zero samples
// nothing and reports the blob available.
//
// A false result with a nil error means the blob could be examined and is not
// available as committed. Errors are returned when the batch is unknown, the
// blob index is invalid or the segments could not be downloaded.
func (s *Sampler) Sample(ctx context.Context, key []byte, blobIndex, times uint32) (available bool, err error) {
	ctx, span := tracer.Start(ctx, "sample", trace.WithAttributes(
		attribute.Int64("blob", int64(blobIndex)),
		attribute.Int64("times", int64(times)),
	))
	defer func() {
		span.SetAttributes(attribute.Bool("available", available))
		utils.SetStatusAndEnd(span, err)
	}()

	times = min(times, s.params.MaxSampleAmount)

	info, err := s.fetcher.Fetch(ctx, s.params.StreamID, key)
	if err != nil {
		return false, fmt.Errorf("das: fetching batch info: %w", err)
	}
	if info == nil {
		return false, ErrBatchNotFound
	}
	blob, ok := info.Blob(blobIndex)
	if !ok {
		return false, fmt.Errorf("%w: %d, batch has %d blobs", ErrInvalidBlobIndex, blobIndex, len(info.BlobDisperseInfos))
	}

	start := s.clock.Now()
	available, sampled, err := s.sampleBlob(ctx, info, blobIndex, times)
	sampleTime := s.clock.Since(start)
	if err != nil {
		s.metrics.observeSample(ctx, blob.Cols, sampleTime, resultError)
		return false, err
	}

	res := resultAvailable
	if !available {
		res = resultUnavailable
	}
	s.metrics.observeSample(ctx, blob.Cols, sampleTime, res)
	log.Infow("sampled blob",
		"key", common.Bytes2Hex(key),
		"blob", blobIndex,
		"times", sampled,
		"available", available,
		"finished (s)", sampleTime.Seconds(),
	)

	err = s.history.put(ctx, key, SampleRecord{
		Blob:      blobIndex,
		Times:     sampled,
		Success:   available,
		SampledAt: s.clock.Now().UTC(),
	})
	if err != nil {
		log.Errorw("storing sample record", "key", common.Bytes2Hex(key), "blob", blobIndex, "err", err)
	}
	return available, nil
}

// sampleBlob returns the availability of the blob along with the amount of
// cells drawn for it.
func (s *Sampler) sampleBlob(
	ctx context.Context,
	info *batch.KVBatchInfo,
	blobIndex, times uint32,
) (bool, uint32, error) {
	blob := info.BlobDisperseInfos[blobIndex]
	dims, ok := kzg.NewDimensions(blob.Rows, blob.Cols)
	if !ok {
		log.Warnw("blob has degenerate dimensions", "blob", blobIndex, "rows", blob.Rows, "cols", blob.Cols)
		return false, 0, nil
	}

	loc := batch.AllocateRows(info.BlobDisperseInfos)[blobIndex]
	if loc.Rows() != int(dims.Rows()) {
		log.Warnw("blob rows do not fit into segments", "blob", blobIndex, "rows", blob.Rows, "cols", blob.Cols)
		return false, 0, nil
	}

	positions := SamplePositions(dims, times)
	sampled := uint32(len(positions))
	if sampled == 0 {
		return true, 0, nil
	}

	indexes := make([]uint64, len(positions))
	offsets := make([]uint32, len(positions))
	for i, pos := range positions {
		indexes[i] = uint64(loc.SegmentIndexes[pos.Row])
		offsets[i] = loc.Offsets[pos.Row]
	}

	segments, err := s.downloader.Download(ctx, info.BatchHeader.DataRoot, indexes)
	if err != nil {
		return false, sampled, fmt.Errorf("das: downloading segments: %w", err)
	}

	for i, pos := range positions {
		ok, err := verifyCell(s.pp, dims, segments[i], offsets[i], pos)
		if err != nil {
			log.Errorw("verifying cell", "blob", blobIndex, "row", pos.Row, "col", pos.Col,
				"segment", indexes[i], "offset", offsets[i], "err", err)
			return false, sampled, nil
		}
		if !ok {
			log.Warnw("cell does not match row commitment", "blob", blobIndex, "row", pos.Row, "col", pos.Col,
				"segment", indexes[i], "offset", offsets[i])
			return false, sampled, nil
		}
		s.metrics.observeCells(ctx, 1)
	}
	return true, sampled, nil
}

// Retrieve is reserved for downloading a whole blob.
func (s *Sampler) Retrieve(context.Context, []byte, uint32) ([]byte, error) {
	return nil, ErrNotImplemented
}

// LastSample returns the last completed sample of the blob.
func (s *Sampler) LastSample(ctx context.Context, key []byte, blobIndex uint32) (SampleRecord, error) {
	return s.history.last(ctx, key, blobIndex)
}

// BatchSamples returns the last completed sample of every sampled blob of the
// batch, ordered by blob index.
func (s *Sampler) BatchSamples(ctx context.Context, key []byte) ([]SampleRecord, error) {
	return s.history.batch(ctx, key)
}
