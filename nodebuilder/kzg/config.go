package kzg

import (
	"errors"
	"fmt"

	"github.com/0glabs/0g-da-light/kzg"
)

// ErrNoSRS is returned when no trusted public params are configured.
var ErrNoSRS = errors.New("kzg: SRSPath must point to the public params of a trusted setup")

// Config selects the public parameters cells are verified against.
type Config struct {
	// SRSPath is a file holding the serialized parameters of a trusted setup.
	SRSPath string
	// InsecureSeed derives parameters whose secret anyone knowing the seed can
	// recompute. Meant for tests and local networks. Ignored when SRSPath is set.
	InsecureSeed string
	// MaxCols is the widest row seed derived parameters can verify.
	MaxCols int
}

func DefaultConfig() Config {
	return Config{
		MaxCols: kzg.DefaultMaxCols,
	}
}

func (cfg *Config) Validate() error {
	if cfg.SRSPath != "" {
		return nil
	}
	if cfg.InsecureSeed == "" {
		return ErrNoSRS
	}
	if cfg.MaxCols < 2 || cfg.MaxCols&(cfg.MaxCols-1) != 0 {
		return fmt.Errorf("kzg: MaxCols must be a power of two greater than one, got %d", cfg.MaxCols)
	}
	return nil
}
