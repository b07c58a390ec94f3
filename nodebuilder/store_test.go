package nodebuilder

import (
	"context"
	"testing"

	"github.com/ipfs/go-datastore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepo(t *testing.T) {
	dir := t.TempDir()

	_, err := OpenStore(dir)
	assert.ErrorIs(t, err, ErrNotInited)

	err = Init(*DefaultConfig(), dir)
	require.NoError(t, err)

	store, err := OpenStore(dir)
	require.NoError(t, err)

	_, err = OpenStore(dir)
	assert.ErrorIs(t, err, ErrOpened)

	ks, err := store.Keystore()
	assert.NoError(t, err)
	assert.NotNil(t, ks)

	data, err := store.Datastore()
	assert.NoError(t, err)
	assert.NotNil(t, data)

	cfg, err := store.Config()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	err = store.Close()
	assert.NoError(t, err)

	// the lock is released on close
	store, err = OpenStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestStoreDatastore_Persists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, Init(*DefaultConfig(), dir))

	store, err := OpenStore(dir)
	require.NoError(t, err)
	ds, err := store.Datastore()
	require.NoError(t, err)
	require.NoError(t, ds.Put(ctx, datastore.NewKey("/das/samples/k/0"), []byte("record")))
	require.NoError(t, store.Close())

	store, err = OpenStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	ds, err = store.Datastore()
	require.NoError(t, err)
	got, err := ds.Get(ctx, datastore.NewKey("/das/samples/k/0"))
	require.NoError(t, err)
	assert.Equal(t, []byte("record"), got)
}

func TestStorePutConfig(t *testing.T) {
	for name, store := range map[string]func(t *testing.T) Store{
		"mem": func(t *testing.T) Store {
			return MockStore(t, DefaultConfig())
		},
		"fs": func(t *testing.T) Store {
			dir := t.TempDir()
			require.NoError(t, Init(*DefaultConfig(), dir))
			s, err := OpenStore(dir)
			require.NoError(t, err)
			t.Cleanup(func() { s.Close() }) //nolint:errcheck
			return s
		},
	} {
		t.Run(name, func(t *testing.T) {
			s := store(t)
			cfg, err := s.Config()
			require.NoError(t, err)

			cfg.KV.URL = "http://10.0.0.2:6789"
			require.NoError(t, s.PutConfig(cfg))

			got, err := s.Config()
			require.NoError(t, err)
			assert.Equal(t, "http://10.0.0.2:6789", got.KV.URL)
		})
	}
}
