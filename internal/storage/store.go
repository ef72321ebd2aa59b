// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// Store is a small keyed store for integers and binary records, the shape of
// storage a watch app gets from its host. Each key holds either an integer or
// a blob; writing a key replaces whatever it held.
type Store interface {
	// Exists reports whether the key holds a value.
	Exists(ctx context.Context, key uint32) (bool, error)

	// ReadInt returns the integer stored under key.
	// Returns ErrNotFound if the key holds no integer.
	ReadInt(ctx context.Context, key uint32) (int32, error)

	// WriteInt stores an integer under key.
	WriteInt(ctx context.Context, key uint32, value int32) error

	// ReadData returns the blob stored under key.
	// Returns ErrNotFound if the key holds no blob.
	ReadData(ctx context.Context, key uint32) ([]byte, error)

	// WriteData stores a blob under key.
	WriteData(ctx context.Context, key uint32, data []byte) error

	// Delete removes the value under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key uint32) error

	// Close releases any resources held by the store.
	Close() error
}
