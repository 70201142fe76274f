// Package storage defines the key-value persistence contract used by the
// repositories, plus in-memory stores for process-local state.
package storage

import (
	"context"
	"errors"
)

// Keys under which the user's data is persisted.
const (
	KeyUserWords   = "userWords"   // JSON array of entries
	KeyHiddenWords = "hiddenWords" // JSON array of lowercase words
)

var ErrNotFound = errors.New("key not found")

// KVStore is a byte store addressed by key. Get returns ErrNotFound for a
// missing key. Set replaces the whole value.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
