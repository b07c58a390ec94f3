// Package keystore keeps the node's private keys.
package keystore

import (
	"errors"
	"fmt"

	"github.com/multiformats/go-base32"
)

// ErrNotFound is returned when the key does not exist.
var ErrNotFound = errors.New("keystore: key not found")

// Keystore maintains a set of named private keys.
type Keystore interface {
	// Put stores the key under the name. Existing keys are never overwritten.
	Put(KeyName, PrivKey) error
	// Get returns the key stored under the name.
	Get(KeyName) (PrivKey, error)
	// Delete removes the key stored under the name.
	Delete(name KeyName) error
	// List lists all stored key names.
	List() ([]KeyName, error)
}

// KeyName is the name of a key in the Keystore.
type KeyName string

// KeyNameFromBase32 decodes a KeyName from its base32 form.
func KeyNameFromBase32(bs string) (KeyName, error) {
	name, err := base32.RawStdEncoding.DecodeString(bs)
	if err != nil {
		return "", fmt.Errorf("keystore: can't decode key name: %w", err)
	}

	return KeyName(name), nil
}

// Base32 encodes the KeyName into base32, safe to use as a file name.
func (kn KeyName) Base32() string {
	return base32.RawStdEncoding.EncodeToString([]byte(kn))
}

func (kn KeyName) String() string {
	return string(kn)
}

// PrivKey is a raw private key.
type PrivKey struct {
	Body []byte `json:"body"`
}
