package das

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// DefaultSampleAmount is the amount of cells the request surfaces ask for
	// when the caller does not specify one.
	DefaultSampleAmount uint32 = 16
	// DefaultMaxSampleAmount caps the amount of cells a single request samples.
	DefaultMaxSampleAmount uint32 = 4096
)

// Parameters is the set of Parameters that must be configured for the Sampler.
type Parameters struct {
	// StreamID is the KV stream batch metadata is stored in.
	StreamID common.Hash
	// MaxSampleAmount is the maximum amount of cells sampled per request.
	// Larger requests are capped.
	MaxSampleAmount uint32
}

// Option is a function that configures Sampler Parameters.
type Option func(*Parameters)

// DefaultParameters returns the default Parameters' configuration values
// for the Sampler.
func DefaultParameters() Parameters {
	return Parameters{
		MaxSampleAmount: DefaultMaxSampleAmount,
	}
}

// Validate validates the values in Parameters.
func (p *Parameters) Validate() error {
	if p.MaxSampleAmount == 0 {
		return fmt.Errorf("das: invalid option: value MaxSampleAmount was 0, where it should be > 0")
	}
	return nil
}

// WithStreamID sets the KV stream batch metadata is read from.
func WithStreamID(id common.Hash) Option {
	return func(p *Parameters) {
		p.StreamID = id
	}
}

// WithMaxSampleAmount sets the maximum amount of sampled cells per request.
func WithMaxSampleAmount(amount uint32) Option {
	return func(p *Parameters) {
		p.MaxSampleAmount = amount
	}
}
