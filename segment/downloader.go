package segment

import (
	"context"
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gammazero/workerpool"
	logging "github.com/ipfs/go-log/v2"

	"github.com/0glabs/0g-da-light/batch"
)

var log = logging.Logger("segment")

var (
	// ErrSegmentUnavailable is returned when a segment could not be fetched
	// from any endpoint within the retry budget.
	ErrSegmentUnavailable = errors.New("segment: unavailable")
	ErrRootMismatch       = errors.New("segment: root mismatch")
	ErrIndexMismatch      = errors.New("segment: index mismatch")
	ErrNoEndpoints        = errors.New("segment: no storage endpoints")

	errNotFound = errors.New("segment: not found")
)

// Downloader fetches segments from an ordered list of storage endpoints.
type Downloader struct {
	getters []Getter
	params  Parameters

	clock   clock.Clock
	pool    *workerpool.WorkerPool
	metrics *metrics
}

// NewDownloader creates a Downloader over the given endpoints. Endpoints are
// tried in the given order for every segment.
func NewDownloader(getters []Getter, options ...Option) (*Downloader, error) {
	if len(getters) == 0 {
		return nil, ErrNoEndpoints
	}

	params := DefaultParameters()
	for _, opt := range options {
		opt(&params)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Downloader{
		getters: getters,
		params:  params,
		clock:   clock.New(),
		pool:    workerpool.New(params.PoolSize),
	}, nil
}

// Stop waits for running fetches and releases the workers.
func (d *Downloader) Stop(context.Context) error {
	d.pool.Stop()
	return d.metrics.close()
}

// outcome of one fetch attempt, sent from a worker to the coordinator.
type outcome struct {
	task int
	data []byte
	err  error
}

// Download fetches the segments at the given indexes of the file with the
// given data root. The result is aligned with indexes. Repeated indexes are
// fetched once per occurrence.
//
// At most MaxDownloadTasks fetches run at once. A fetch that fails on every
// endpoint is relaunched up to MaxRetry times, after which the whole download
// fails with ErrSegmentUnavailable.
func (d *Downloader) Download(ctx context.Context, root common.Hash, indexes []uint64) ([][]byte, error) {
	results := make([][]byte, len(indexes))
	if len(indexes) == 0 {
		return results, nil
	}

	// abandons fetches still running once the download is over
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// holds one outcome per in-flight task, so abandoned workers never block
	outcomes := make(chan outcome, d.params.MaxDownloadTasks)
	launch := func(task int) {
		d.pool.Submit(func() {
			d.metrics.fetchStarted()
			defer d.metrics.fetchFinished()

			data, err := d.fetch(ctx, root, indexes[task])
			outcomes <- outcome{task: task, data: data, err: err}
		})
	}

	next, inFlight := 0, 0
	for ; next < len(indexes) && inFlight < d.params.MaxDownloadTasks; next++ {
		launch(next)
		inFlight++
	}

	failed := make(map[int]int)
	for inFlight > 0 {
		var out outcome
		select {
		case out = <-outcomes:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		if out.err == nil {
			results[out.task] = out.data
			if next < len(indexes) {
				launch(next)
				next++
			} else {
				inFlight--
			}
			continue
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if failed[out.task] >= d.params.MaxRetry {
			d.metrics.observeExhausted(ctx)
			return nil, fmt.Errorf("%w: segment %d of data root %s after %d attempts: %w",
				ErrSegmentUnavailable, indexes[out.task], root, failed[out.task]+1, out.err)
		}
		failed[out.task]++
		d.metrics.observeRetry(ctx)
		log.Debugw("relaunching segment fetch",
			"index", indexes[out.task], "root", root, "attempt", failed[out.task], "err", out.err)
		launch(out.task)
	}

	return results, nil
}

// fetch tries every endpoint in order until one serves a valid segment.
func (d *Downloader) fetch(ctx context.Context, root common.Hash, index uint64) ([]byte, error) {
	var lastErr error
	for i, getter := range d.getters {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		seg, err := getter.GetSegment(ctx, root, index)
		switch {
		case err != nil:
			d.metrics.observeRequest(ctx, i, statusTransport)
			lastErr = fmt.Errorf("endpoint %d: %w", i, err)
			log.Debugw("requesting segment", "endpoint", i, "index", index, "root", root, "err", err)
		case seg == nil:
			d.metrics.observeRequest(ctx, i, statusNotFound)
			lastErr = fmt.Errorf("endpoint %d: %w", i, errNotFound)
		default:
			err = validate(seg, root, index)
			if err == nil {
				d.metrics.observeRequest(ctx, i, statusSuccess)
				return seg.Data, nil
			}
			d.metrics.observeRequest(ctx, i, statusInvalid)
			lastErr = fmt.Errorf("endpoint %d: %w", i, err)
			log.Warnw("received invalid segment", "endpoint", i, "index", index, "root", root, "err", err)
		}

		if err := d.wait(ctx); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

func (d *Downloader) wait(ctx context.Context) error {
	if d.params.RetryWait == 0 {
		return nil
	}

	timer := d.clock.Timer(d.params.RetryWait)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func validate(seg *WithProof, root common.Hash, index uint64) error {
	if len(seg.Data)%batch.EntrySize != 0 {
		return fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(seg.Data))
	}
	if seg.Root != root {
		return fmt.Errorf("%w: got %s", ErrRootMismatch, seg.Root)
	}
	if seg.Index != index {
		return fmt.Errorf("%w: got %d", ErrIndexMismatch, seg.Index)
	}
	return seg.Validate(batch.EntriesPerSegment)
}
