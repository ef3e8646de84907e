package storage

import (
	"context"
	"fmt"
	"log/slog"
)

// Options selects and locates a backend.
type Options struct {
	Backend     string
	SQLitePath  string
	DatabaseURL string
}

type backend interface {
	KV
	Ping(ctx context.Context) error
	Close() error
}

// Store holds the opened backend.
type Store struct {
	KV      KV
	name    string
	backend backend
}

// NewStore opens the backend named by opts.Backend.
func NewStore(ctx context.Context, opts Options) (*Store, error) {
	var (
		b   backend
		err error
	)
	switch opts.Backend {
	case BackendSQLite:
		b, err = OpenSQLite(ctx, opts.SQLitePath)
	case BackendPostgres:
		if opts.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres backend requires a database url")
		}
		b, err = OpenPostgres(ctx, opts.DatabaseURL)
	case BackendMemory:
		b = memoryBackend{NewMemoryKV()}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("storage opened", "backend", opts.Backend)
	return &Store{KV: b, name: opts.Backend, backend: b}, nil
}

// Backend returns the backend name.
func (s *Store) Backend() string {
	return s.name
}

// Ping verifies the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.backend.Ping(ctx)
}

// Migrate creates the kv table where the backend does not do so on open.
func (s *Store) Migrate(ctx context.Context) error {
	if pg, ok := s.backend.(*PostgresKV); ok {
		return pg.Migrate(ctx)
	}
	return nil
}

func (s *Store) Close() {
	if s.backend == nil {
		return
	}
	if err := s.backend.Close(); err != nil {
		slog.Warn("failed to close storage", "backend", s.name, "error", err.Error())
	}
}

type memoryBackend struct {
	*MemoryKV
}

func (memoryBackend) Ping(context.Context) error { return nil }
func (memoryBackend) Close() error              { return nil }
