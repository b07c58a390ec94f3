package keystore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func FuzzKeyStoreName(f *testing.F) {
	corpus := []string{
		"test",
		"test2",
		"test3",
		">F?FD?FDSJFKL$&*(#W)",
	}

	for _, c := range corpus {
		f.Add(c)
	}

	f.Fuzz(func(t *testing.T, data string) {
		k := KeyName(data)
		encoded := k.Base32()
		if _, err := KeyNameFromBase32(encoded); err != nil {
			t.Errorf("error decoding base32: %v", err)
		}
	})
}

func TestKeystores(t *testing.T) {
	fs, err := NewFSKeystore(filepath.Join(t.TempDir(), "keys"))
	require.NoError(t, err)

	for name, ks := range map[string]Keystore{"fs": fs, "map": NewMapKeystore()} {
		t.Run(name, func(t *testing.T) {
			_, err := ks.Get("secret")
			require.ErrorIs(t, err, ErrNotFound)

			key := PrivKey{Body: []byte{1, 2, 3}}
			require.NoError(t, ks.Put("secret", key))
			require.Error(t, ks.Put("secret", key))

			got, err := ks.Get("secret")
			require.NoError(t, err)
			require.Equal(t, key, got)

			names, err := ks.List()
			require.NoError(t, err)
			require.Equal(t, []KeyName{"secret"}, names)

			require.NoError(t, ks.Delete("secret"))
			require.ErrorIs(t, ks.Delete("secret"), ErrNotFound)
		})
	}
}

func TestFSKeystore_Permissions(t *testing.T) {
	dir := t.TempDir()
	ks, err := NewFSKeystore(dir)
	require.NoError(t, err)
	require.NoError(t, ks.Put("secret", PrivKey{Body: []byte{1}}))

	require.NoError(t, os.Chmod(filepath.Join(dir, KeyName("secret").Base32()), 0o644))
	_, err = ks.Get("secret")
	require.Error(t, err)
}
