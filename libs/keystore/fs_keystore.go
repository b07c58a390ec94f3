package keystore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// fsKeystore keeps every key in its own file, named after the base32 form of
// the key name.
type fsKeystore struct {
	path string
}

// NewFSKeystore creates a Keystore in the given directory, creating it if
// missing.
func NewFSKeystore(path string) (Keystore, error) {
	if err := os.Mkdir(path, 0o755); err != nil && !os.IsExist(err) {
		return nil, fmt.Errorf("keystore: failed to make a dir: %w", err)
	}
	return &fsKeystore{path: path}, nil
}

func (f *fsKeystore) Put(n KeyName, pk PrivKey) error {
	path := f.pathTo(n.Base32())

	_, err := os.Stat(path)
	if err == nil {
		return fmt.Errorf("keystore: key '%s' already exists", n)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("keystore: check before writing key '%s' failed: %w", n, err)
	}

	data, err := json.Marshal(pk)
	if err != nil {
		return fmt.Errorf("keystore: failed to marshal key '%s': %w", n, err)
	}

	err = os.WriteFile(path, data, 0o600)
	if err != nil {
		return fmt.Errorf("keystore: failed to write key '%s': %w", n, err)
	}
	return nil
}

func (f *fsKeystore) Get(n KeyName) (PrivKey, error) {
	path := f.pathTo(n.Base32())

	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return PrivKey{}, fmt.Errorf("%w: %s", ErrNotFound, n)
		}
		return PrivKey{}, fmt.Errorf("keystore: check before reading key '%s' failed: %w", n, err)
	}
	if st.IsDir() {
		return PrivKey{}, fmt.Errorf("keystore: '%s' is a directory", n)
	}
	if err := keyAccess(path); err != nil {
		return PrivKey{}, fmt.Errorf("keystore: key '%s' has wrong permissions: %w", n, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return PrivKey{}, fmt.Errorf("keystore: failed to read key '%s': %w", n, err)
	}

	var key PrivKey
	if err := json.Unmarshal(data, &key); err != nil {
		return PrivKey{}, fmt.Errorf("keystore: failed to unmarshal key '%s': %w", n, err)
	}
	return key, nil
}

func (f *fsKeystore) Delete(n KeyName) error {
	path := f.pathTo(n.Base32())

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, n)
	} else if err != nil {
		return fmt.Errorf("keystore: check before deleting key '%s' failed: %w", n, err)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("keystore: failed to delete key '%s': %w", n, err)
	}
	return nil
}

func (f *fsKeystore) List() ([]KeyName, error) {
	entries, err := os.ReadDir(f.path)
	if err != nil {
		return nil, err
	}

	names := make([]KeyName, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		kn, err := KeyNameFromBase32(e.Name())
		if err != nil {
			return nil, err
		}
		names = append(names, kn)
	}
	return names, nil
}

func (f *fsKeystore) pathTo(file string) string {
	return filepath.Join(f.path, file)
}
