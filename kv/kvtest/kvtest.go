// Package kvtest provides an in-memory kv.Client.
package kvtest

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/0glabs/0g-da-light/kv"
)

// Store is an in-memory kv.Client serving values in pages.
type Store struct {
	lock   sync.Mutex
	values map[string][]byte
	reads  int
}

func NewStore() *Store {
	return &Store{values: make(map[string][]byte)}
}

func (s *Store) Put(streamID common.Hash, key, value []byte) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.values[id(streamID, key)] = value
}

// Reads returns the amount of GetValue calls served.
func (s *Store) Reads() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.reads
}

func (s *Store) GetValue(_ context.Context, streamID common.Hash, key []byte, start, length uint64) (*kv.Value, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.reads++

	value, ok := s.values[id(streamID, key)]
	if !ok {
		return nil, nil
	}
	size := uint64(len(value))
	start = min(start, size)
	end := min(start+length, size)
	return &kv.Value{
		Data: append([]byte(nil), value[start:end]...),
		Size: size,
	}, nil
}

func id(streamID common.Hash, key []byte) string {
	return streamID.Hex() + string(key)
}
