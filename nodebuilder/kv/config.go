package kv

import (
	"fmt"

	"github.com/0glabs/0g-da-light/kv"
	"github.com/0glabs/0g-da-light/libs/utils"
)

// Config holds the KV node batch metadata is read from.
type Config struct {
	// URL is the JSON-RPC endpoint of the KV node.
	URL string
	// MaxQuerySize is the amount of bytes read per request.
	MaxQuerySize uint64
	// CacheSize is the amount of decoded batches kept in memory. Zero
	// disables caching.
	CacheSize int
}

func DefaultConfig() Config {
	params := kv.DefaultParameters()
	return Config{
		URL:          "http://127.0.0.1:6789",
		MaxQuerySize: params.MaxQuerySize,
		CacheSize:    params.CacheSize,
	}
}

func (cfg *Config) Validate() error {
	if err := utils.ValidateURL(cfg.URL); err != nil {
		return fmt.Errorf("kv: %w", err)
	}
	params := kv.Parameters{
		MaxQuerySize: cfg.MaxQuerySize,
		CacheSize:    cfg.CacheSize,
	}
	return params.Validate()
}
