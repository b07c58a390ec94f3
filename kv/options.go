package kv

import "fmt"

var (
	// DefaultMaxQuerySize is the maximum amount of bytes requested per read.
	DefaultMaxQuerySize uint64 = 256 * 1024
	// DefaultCacheSize is the amount of decoded batches kept in memory.
	DefaultCacheSize = 512
)

// Parameters of the Fetcher.
type Parameters struct {
	MaxQuerySize uint64
	// CacheSize of zero disables caching.
	CacheSize int
}

// Option configures Fetcher Parameters.
type Option func(*Parameters)

func DefaultParameters() Parameters {
	return Parameters{
		MaxQuerySize: DefaultMaxQuerySize,
		CacheSize:    DefaultCacheSize,
	}
}

func (p *Parameters) Validate() error {
	if p.MaxQuerySize == 0 {
		return fmt.Errorf("kv: invalid option: value MaxQuerySize was 0, where it should be > 0")
	}
	if p.CacheSize < 0 {
		return fmt.Errorf("kv: invalid option: value CacheSize was %d, where it should be >= 0", p.CacheSize)
	}
	return nil
}

func WithMaxQuerySize(size uint64) Option {
	return func(p *Parameters) {
		p.MaxQuerySize = size
	}
}

func WithCacheSize(size int) Option {
	return func(p *Parameters) {
		p.CacheSize = size
	}
}
