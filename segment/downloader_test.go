package segment_test

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0glabs/0g-da-light/segment"
	"github.com/0glabs/0g-da-light/segment/mocks"
	"github.com/0glabs/0g-da-light/segment/segmenttest"
)

func newDownloader(t *testing.T, getters []segment.Getter, opts ...segment.Option) *segment.Downloader {
	t.Helper()
	opts = append([]segment.Option{segment.WithRetryWait(0)}, opts...)
	d, err := segment.NewDownloader(getters, opts...)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, d.Stop(context.Background()))
	})
	return d
}

// flakyGetter fails the first attempts of every index and answers after a
// random delay, so completions arrive out of order.
type flakyGetter struct {
	segment.Getter
	failures int

	lock     sync.Mutex
	attempts map[uint64]int
	inFlight int
	maxSeen  int
}

func (g *flakyGetter) GetSegment(ctx context.Context, root common.Hash, index uint64) (*segment.WithProof, error) {
	g.lock.Lock()
	g.attempts[index]++
	attempt := g.attempts[index]
	g.inFlight++
	g.maxSeen = max(g.maxSeen, g.inFlight)
	g.lock.Unlock()

	defer func() {
		g.lock.Lock()
		g.inFlight--
		g.lock.Unlock()
	}()

	time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond) //nolint:gosec
	if attempt <= g.failures {
		return nil, errors.New("connection reset")
	}
	return g.Getter.GetSegment(ctx, root, index)
}

func TestDownload_Alignment(t *testing.T) {
	b := testBatch(t)
	flaky := &flakyGetter{
		Getter:   b.Getter(),
		failures: 3,
		attempts: make(map[uint64]int),
	}
	d := newDownloader(t, []segment.Getter{flaky})

	indexes := []uint64{2, 0, 1, 2, 0, 1, 1, 2, 0, 0, 2}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	data, err := d.Download(ctx, b.Info.BatchHeader.DataRoot, indexes)
	require.NoError(t, err)
	require.Len(t, data, len(indexes))
	for i, idx := range indexes {
		assert.Equal(t, b.Segments[idx].Data, data[i], "slot %d", i)
	}

	// no deduplication: every occurrence of index 2 is fetched on its own
	// after the three failed attempts
	flaky.lock.Lock()
	defer flaky.lock.Unlock()
	assert.Equal(t, 3+4, flaky.attempts[2])
	assert.LessOrEqual(t, flaky.maxSeen, segment.DefaultMaxDownloadTasks)
}

func TestDownload_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDownloader(t, []segment.Getter{mocks.NewMockGetter(ctrl)})

	data, err := d.Download(context.Background(), common.Hash{}, nil)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestDownload_EndpointFallback(t *testing.T) {
	b := testBatch(t)
	root := b.Info.BatchHeader.DataRoot
	ctrl := gomock.NewController(t)

	broken := mocks.NewMockGetter(ctrl)
	broken.EXPECT().GetSegment(gomock.Any(), root, uint64(1)).
		Return(nil, errors.New("dial tcp: connection refused")).Times(1)
	empty := mocks.NewMockGetter(ctrl)
	empty.EXPECT().GetSegment(gomock.Any(), root, uint64(1)).
		Return(nil, nil).Times(1)
	lying := mocks.NewMockGetter(ctrl)
	lying.EXPECT().GetSegment(gomock.Any(), root, uint64(1)).
		DoAndReturn(func(_ context.Context, _ common.Hash, _ uint64) (*segment.WithProof, error) {
			seg := *b.Segments[1]
			seg.Data = append([]byte(nil), seg.Data...)
			seg.Data[0] ^= 0x01
			return &seg, nil
		}).Times(1)

	d := newDownloader(t, []segment.Getter{broken, empty, lying, b.Getter()})
	data, err := d.Download(context.Background(), root, []uint64{1})
	require.NoError(t, err)
	require.Equal(t, b.Segments[1].Data, data[0])
}

func TestDownload_RetryExhaustion(t *testing.T) {
	b := testBatch(t)
	root := b.Info.BatchHeader.DataRoot
	ctrl := gomock.NewController(t)

	const maxRetry = 2
	getters := make([]segment.Getter, 2)
	for i := range getters {
		g := mocks.NewMockGetter(ctrl)
		// serves a segment of another file
		g.EXPECT().GetSegment(gomock.Any(), root, uint64(1)).
			DoAndReturn(func(_ context.Context, _ common.Hash, _ uint64) (*segment.WithProof, error) {
				seg := *b.Segments[1]
				seg.Root = common.Hash{0xaa}
				return &seg, nil
			}).Times(maxRetry + 1)
		g.EXPECT().GetSegment(gomock.Any(), root, uint64(0)).
			DoAndReturn(b.Getter().GetSegment).AnyTimes()
		getters[i] = g
	}

	d := newDownloader(t, getters, segment.WithMaxRetry(maxRetry))
	_, err := d.Download(context.Background(), root, []uint64{0, 1, 0})
	require.ErrorIs(t, err, segment.ErrSegmentUnavailable)
	require.ErrorIs(t, err, segment.ErrRootMismatch)
	require.Contains(t, err.Error(), "segment 1 ")
	require.Contains(t, err.Error(), root.String())
}

func TestDownload_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mocks.NewMockGetter(ctrl)
	g.EXPECT().GetSegment(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ common.Hash, _ uint64) (*segment.WithProof, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).AnyTimes()

	d := newDownloader(t, []segment.Getter{g})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := d.Download(ctx, common.Hash{1}, []uint64{0, 1, 2, 3, 4, 5, 6})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewDownloader(t *testing.T) {
	_, err := segment.NewDownloader(nil)
	require.ErrorIs(t, err, segment.ErrNoEndpoints)

	g := segmenttest.Getter{}
	_, err = segment.NewDownloader([]segment.Getter{g}, segment.WithMaxDownloadTasks(0))
	require.Error(t, err)
	_, err = segment.NewDownloader([]segment.Getter{g}, segment.WithMaxRetry(-1))
	require.Error(t, err)
	_, err = segment.NewDownloader([]segment.Getter{g}, segment.WithRetryWait(-time.Second))
	require.Error(t, err)
	_, err = segment.NewDownloader([]segment.Getter{g}, segment.WithMaxDownloadTasks(8), segment.WithPoolSize(4))
	require.Error(t, err)
}
