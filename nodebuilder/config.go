package nodebuilder

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
	"github.com/imdario/mergo"

	"github.com/0glabs/0g-da-light/nodebuilder/das"
	"github.com/0glabs/0g-da-light/nodebuilder/gateway"
	"github.com/0glabs/0g-da-light/nodebuilder/grpc"
	"github.com/0glabs/0g-da-light/nodebuilder/kv"
	"github.com/0glabs/0g-da-light/nodebuilder/kzg"
	"github.com/0glabs/0g-da-light/nodebuilder/rpc"
	"github.com/0glabs/0g-da-light/nodebuilder/storage"
)

// Config is main configuration structure for a Node.
// It combines configuration units for all Node subsystems.
type Config struct {
	DASer   das.Config
	Storage storage.Config
	KV      kv.Config
	KZG     kzg.Config
	RPC     rpc.Config
	GRPC    grpc.Config
	Gateway gateway.Config
}

// DefaultConfig provides a default Config.
func DefaultConfig() *Config {
	return &Config{
		DASer:   das.DefaultConfig(),
		Storage: storage.DefaultConfig(),
		KV:      kv.DefaultConfig(),
		KZG:     kzg.DefaultConfig(),
		RPC:     rpc.DefaultConfig(),
		GRPC:    grpc.DefaultConfig(),
		Gateway: gateway.DefaultConfig(),
	}
}

// SaveConfig saves Config 'cfg' under the given 'path'.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return cfg.Encode(f)
}

// LoadConfig loads Config from the given 'path'.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	return &cfg, cfg.Decode(f)
}

// RemoveConfig removes the Config from the given store path.
func RemoveConfig(path string) (err error) {
	path, err = storePath(path)
	if err != nil {
		return
	}

	flk := flock.New(lockPath(path))
	ok, err := flk.TryLock()
	if err != nil {
		return fmt.Errorf("locking file: %w", err)
	}
	if !ok {
		return ErrOpened
	}
	defer flk.Unlock() //nolint:errcheck

	return removeConfig(configPath(path))
}

// removeConfig removes Config from the given 'path'.
func removeConfig(path string) error {
	return os.Remove(path)
}

// UpdateConfig loads the node's config and applies new values
// from the default config, saving the newly updated config into
// the node's config path.
func UpdateConfig(path string) (err error) {
	path, err = storePath(path)
	if err != nil {
		return err
	}

	flk := flock.New(lockPath(path))
	ok, err := flk.TryLock()
	if err != nil {
		return fmt.Errorf("locking file: %w", err)
	}
	if !ok {
		return ErrOpened
	}
	defer flk.Unlock() //nolint:errcheck

	newCfg := DefaultConfig()

	cfgPath := configPath(path)
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	cfg, err = updateConfig(cfg, newCfg)
	if err != nil {
		return err
	}

	// save the updated config
	err = removeConfig(cfgPath)
	if err != nil {
		return err
	}
	return SaveConfig(cfgPath, cfg)
}

// updateConfig merges new values from the new config into the old
// config, returning the updated old config.
func updateConfig(oldCfg, newCfg *Config) (*Config, error) {
	err := mergo.Merge(oldCfg, newCfg, mergo.WithOverrideEmptySlice)
	return oldCfg, err
}

// Encode encodes a given Config into w.
func (cfg *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Decode decodes a Config from a given reader r.
func (cfg *Config) Decode(r io.Reader) error {
	_, err := toml.NewDecoder(r).Decode(cfg)
	return err
}
