package nodebuilder

import (
	"sync"

	"github.com/ipfs/go-datastore"
	ds_sync "github.com/ipfs/go-datastore/sync"

	"github.com/0glabs/0g-da-light/libs/keystore"
)

// memStore implements in memory Store.
type memStore struct {
	keys keystore.Keystore
	data datastore.Batching

	cfgMu sync.Mutex
	cfg   *Config
}

// NewMemStore creates an in-memory Store for Node.
// Useful for testing.
func NewMemStore() Store {
	return &memStore{
		keys: keystore.NewMapKeystore(),
		data: ds_sync.MutexWrap(datastore.NewMapDatastore()),
	}
}

func (m *memStore) Path() string {
	return ""
}

func (m *memStore) Keystore() (keystore.Keystore, error) {
	return m.keys, nil
}

func (m *memStore) Datastore() (datastore.Batching, error) {
	return m.data, nil
}

func (m *memStore) Config() (*Config, error) {
	m.cfgMu.Lock()
	defer m.cfgMu.Unlock()
	if m.cfg == nil {
		return nil, ErrNotInited
	}
	return m.cfg, nil
}

func (m *memStore) PutConfig(cfg *Config) error {
	m.cfgMu.Lock()
	defer m.cfgMu.Unlock()
	m.cfg = cfg
	return nil
}

func (m *memStore) Close() error {
	return nil
}
