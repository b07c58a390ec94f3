package segment

import (
	"fmt"
	"time"
)

var (
	// DefaultMaxDownloadTasks bounds the segments of one download fetched in parallel.
	DefaultMaxDownloadTasks = 5
	// DefaultMaxRetry is the amount of times a failed segment fetch is relaunched.
	DefaultMaxRetry = 5
	// DefaultRetryWait is the pause before trying the next endpoint.
	DefaultRetryWait = time.Second
	// DefaultPoolSize bounds the goroutines shared by all concurrent downloads.
	DefaultPoolSize = 64
)

// Parameters is the set of parameters that must be configured for the Downloader.
type Parameters struct {
	// MaxDownloadTasks is the maximum amount of in-flight fetches of a single download.
	MaxDownloadTasks int
	// MaxRetry is the amount of relaunches a failed fetch gets before the
	// download fails.
	MaxRetry int
	// RetryWait is the wait after a failed request before the next endpoint is tried.
	RetryWait time.Duration
	// PoolSize is the amount of workers shared by all downloads.
	PoolSize int
}

// Option is a function that configures Downloader Parameters.
type Option func(*Parameters)

// DefaultParameters returns the default Parameters' configuration values
// for the Downloader.
func DefaultParameters() Parameters {
	return Parameters{
		MaxDownloadTasks: DefaultMaxDownloadTasks,
		MaxRetry:         DefaultMaxRetry,
		RetryWait:        DefaultRetryWait,
		PoolSize:         DefaultPoolSize,
	}
}

// Validate validates the values in Parameters.
func (p *Parameters) Validate() error {
	if p.MaxDownloadTasks <= 0 {
		return fmt.Errorf("segment: invalid option: value MaxDownloadTasks was %d, where it should be > 0",
			p.MaxDownloadTasks)
	}
	if p.MaxRetry < 0 {
		return fmt.Errorf("segment: invalid option: value MaxRetry was %d, where it should be >= 0", p.MaxRetry)
	}
	if p.RetryWait < 0 {
		return fmt.Errorf("segment: invalid option: value RetryWait was %s, where it should be >= 0", p.RetryWait)
	}
	if p.PoolSize < p.MaxDownloadTasks {
		return fmt.Errorf("segment: invalid option: value PoolSize was %d, where it should be >= MaxDownloadTasks(%d)",
			p.PoolSize, p.MaxDownloadTasks)
	}
	return nil
}

// WithMaxDownloadTasks sets the maximum amount of in-flight fetches of a download.
func WithMaxDownloadTasks(n int) Option {
	return func(p *Parameters) {
		p.MaxDownloadTasks = n
	}
}

// WithMaxRetry sets the amount of relaunches a failed fetch gets.
func WithMaxRetry(n int) Option {
	return func(p *Parameters) {
		p.MaxRetry = n
	}
}

// WithRetryWait sets the wait between endpoints.
func WithRetryWait(d time.Duration) Option {
	return func(p *Parameters) {
		p.RetryWait = d
	}
}

// WithPoolSize sets the amount of workers shared by all downloads.
func WithPoolSize(n int) Option {
	return func(p *Parameters) {
		p.PoolSize = n
	}
}
