package nodebuilder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0glabs/0g-da-light/libs/keystore"
	"github.com/0glabs/0g-da-light/nodebuilder/node"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	require.NoError(t, Init(*cfg, dir))
	assert.True(t, IsInit(dir))

	// the JWT secret is generated once and kept on re-init
	ks, err := keystore.NewFSKeystore(keysPath(dir))
	require.NoError(t, err)
	secret, err := node.Secret(ks)
	require.NoError(t, err)

	require.NoError(t, Init(*cfg, dir))
	again, err := node.Secret(ks)
	require.NoError(t, err)
	assert.Equal(t, secret, again)
}

func TestInitErrForInvalidPath(t *testing.T) {
	// nothing can be created under a regular file
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	path := filepath.Join(file, "store")
	cfg := DefaultConfig()
	require.Error(t, Init(*cfg, path))
}

func TestIsInitWithBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(configPath(dir))
	require.NoError(t, err)
	defer f.Close()
	//nolint:errcheck
	f.Write([]byte(`
		[Storage]
		  URLs = [http://127.0.0.1:5678]
    `))
	assert.False(t, IsInit(dir))
}

func TestIsInitForNonExistDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	assert.False(t, IsInit(path))
}

func TestInitErrForLockedDir(t *testing.T) {
	dir := t.TempDir()
	flk := flock.New(lockPath(dir))
	_, err := flk.TryLock()
	require.NoError(t, err)
	defer flk.Unlock() //nolint:errcheck

	cfg := DefaultConfig()
	require.ErrorIs(t, Init(*cfg, dir), ErrOpened)
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(*DefaultConfig(), dir))

	marker := filepath.Join(dataPath(dir), "marker")
	require.NoError(t, os.WriteFile(marker, []byte("x"), 0o600))

	require.NoError(t, Reset(dir))
	_, err := os.Stat(marker)
	assert.True(t, os.IsNotExist(err))
	assert.True(t, IsInit(dir))
}
