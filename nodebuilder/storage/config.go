package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/0glabs/0g-da-light/libs/utils"
	"github.com/0glabs/0g-da-light/segment"
)

// Config holds the storage nodes segments are downloaded from and the
// download parameters.
type Config struct {
	// URLs are the JSON-RPC endpoints of the storage nodes, tried in order.
	URLs []string
	// MaxDownloadTasks bounds the downloads in flight per sample.
	MaxDownloadTasks int
	// MaxRetry is the amount of extra attempts for a failing segment.
	MaxRetry int
	// RetryWait is the pause after every failed request.
	RetryWait time.Duration
	// PoolSize bounds the downloads in flight across all samples.
	PoolSize int
}

func DefaultConfig() Config {
	params := segment.DefaultParameters()
	return Config{
		URLs:             []string{"http://127.0.0.1:5678"},
		MaxDownloadTasks: params.MaxDownloadTasks,
		MaxRetry:         params.MaxRetry,
		RetryWait:        params.RetryWait,
		PoolSize:         params.PoolSize,
	}
}

func (cfg *Config) Validate() error {
	if len(cfg.URLs) == 0 {
		return errors.New("storage: at least one storage node URL is required")
	}
	for _, url := range cfg.URLs {
		if err := utils.ValidateURL(url); err != nil {
			return fmt.Errorf("storage: %w", err)
		}
	}
	params := cfg.parameters()
	return params.Validate()
}

func (cfg *Config) parameters() segment.Parameters {
	return segment.Parameters{
		MaxDownloadTasks: cfg.MaxDownloadTasks,
		MaxRetry:         cfg.MaxRetry,
		RetryWait:        cfg.RetryWait,
		PoolSize:         cfg.PoolSize,
	}
}

func (cfg *Config) options() []segment.Option {
	return []segment.Option{
		segment.WithMaxDownloadTasks(cfg.MaxDownloadTasks),
		segment.WithMaxRetry(cfg.MaxRetry),
		segment.WithRetryWait(cfg.RetryWait),
		segment.WithPoolSize(cfg.PoolSize),
	}
}
