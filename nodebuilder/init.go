package nodebuilder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/0glabs/0g-da-light/libs/keystore"
	"github.com/0glabs/0g-da-light/libs/utils"
	"github.com/0glabs/0g-da-light/nodebuilder/node"
)

// Init initializes the Node FileSystem Store in the directory under 'path'.
func Init(cfg Config, path string) error {
	path, err := storePath(path)
	if err != nil {
		return err
	}
	log.Infof("Initializing Node Store over '%s'", path)

	err = initRoot(path)
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

	err = initDir(keysPath(path))
	if err != nil {
		return err
	}

	err = initDir(dataPath(path))
	if err != nil {
		return err
	}

	err = initSecret(keysPath(path))
	if err != nil {
		return err
	}

	cfgPath := configPath(path)
	err = SaveConfig(cfgPath, &cfg)
	if err != nil {
		return err
	}
	log.Infow("Saving config", "path", cfgPath)
	log.Info("Node Store initialized")
	return nil
}

// Reset removes the stored config and data of the Node under 'path', keeping its keys.
func Reset(path string) error {
	path, err := storePath(path)
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

	err = os.RemoveAll(dataPath(path))
	if err != nil {
		return err
	}
	return initDir(dataPath(path))
}

// IsInit checks whether FileSystem Store was setup under given 'path'.
// If any required file/subdirectory does not exist, then false is reported.
func IsInit(path string) bool {
	path, err := storePath(path)
	if err != nil {
		log.Errorw("parsing store path", "path", path, "err", err)
		return false
	}

	_, err = LoadConfig(configPath(path)) // load the Config and implicitly check for its existence
	if err != nil {
		log.Errorw("loading config", "path", path, "err", err)
		return false
	}

	if utils.Exists(keysPath(path)) &&
		utils.Exists(dataPath(path)) {
		return true
	}

	return false
}

const perms = 0755

// initRoot initializes(creates) directory if not created and check if it is writable
func initRoot(path string) error {
	err := initDir(path)
	if err != nil {
		return err
	}

	// check for writing permissions
	f, err := os.Create(filepath.Join(path, ".check"))
	if err != nil {
		return err
	}

	err = f.Close()
	if err != nil {
		return err
	}

	return os.Remove(f.Name())
}

// initDir creates a dir if not exist
func initDir(path string) error {
	if utils.Exists(path) {
		return nil
	}
	return os.Mkdir(path, perms)
}

// initSecret generates the JWT secret of the node if there is none yet.
func initSecret(path string) error {
	ks, err := keystore.NewFSKeystore(path)
	if err != nil {
		return err
	}
	_, err = node.Secret(ks)
	return err
}
