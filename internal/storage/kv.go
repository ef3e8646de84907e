// Package storage provides the key-value backends the mood history is persisted in.
package storage

import (
	"context"
	"errors"
)

// KV is a minimal byte-oriented key-value store.
type KV interface {
	// Get returns the value for key. A missing key reports ok=false with a nil error.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}

// ErrUnknownBackend is returned by NewStore for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// tableName is shared by the sqlite and postgres backends.
const tableName = "kv_entries"
