// Package memory provides an in-process implementation of storage.Store.
// Nothing survives the process; it backs tests and the ":memory:" storage path.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/tipsplit/internal/storage"
)

var _ storage.Store = (*Store)(nil)

type entry struct {
	isInt bool
	i     int32
	data  []byte
}

// Store keeps values in a map.
type Store struct {
	mu      sync.Mutex
	entries map[uint32]entry
}

// New returns an empty Store.
func New() *Store {
	return &Store{entries: make(map[uint32]entry)}
}

func (s *Store) Exists(_ context.Context, key uint32) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[key]
	return ok, nil
}

func (s *Store) ReadInt(_ context.Context, key uint32) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok || !e.isInt {
		return 0, storage.ErrNotFound
	}
	return e.i, nil
}

func (s *Store) WriteInt(_ context.Context, key uint32, value int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{isInt: true, i: value}
	return nil
}

func (s *Store) ReadData(_ context.Context, key uint32) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok || e.isInt {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), e.data...), nil
}

func (s *Store) WriteData(_ context.Context, key uint32, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{data: append([]byte(nil), data...)}
	return nil
}

func (s *Store) Delete(_ context.Context, key uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *Store) Close() error {
	return nil
}
