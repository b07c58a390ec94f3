package das

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/0glabs/0g-da-light/das"
)

// Config contains configuration parameters for the Sampler.
type Config struct {
	// StreamID is the hex encoded KV stream batch metadata is published to.
	StreamID string
	// MaxSampleAmount caps the amount of cells a request samples.
	MaxSampleAmount uint32
}

func DefaultConfig() Config {
	params := das.DefaultParameters()
	return Config{
		StreamID:        params.StreamID.Hex(),
		MaxSampleAmount: params.MaxSampleAmount,
	}
}

// Validate performs basic validation of the config.
func (cfg *Config) Validate() error {
	if _, err := cfg.streamID(); err != nil {
		return fmt.Errorf("moddas misconfiguration: %w", err)
	}

	params := das.Parameters{
		MaxSampleAmount: cfg.MaxSampleAmount,
	}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("moddas misconfiguration: %w", err)
	}
	return nil
}

func (cfg *Config) streamID() (common.Hash, error) {
	raw, err := hexutil.Decode(cfg.StreamID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("parsing stream id %q: %w", cfg.StreamID, err)
	}
	if len(raw) != common.HashLength {
		return common.Hash{}, fmt.Errorf("stream id must be %d bytes, got %d", common.HashLength, len(raw))
	}
	return common.BytesToHash(raw), nil
}

func (cfg *Config) options() ([]das.Option, error) {
	id, err := cfg.streamID()
	if err != nil {
		return nil, err
	}
	return []das.Option{
		das.WithStreamID(id),
		das.WithMaxSampleAmount(cfg.MaxSampleAmount),
	}, nil
}
