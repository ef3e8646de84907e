package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set(ctx, "moodHistory", []byte(`[1]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := kv.Set(ctx, "moodHistory", []byte(`[1,2]`)); err != nil {
		t.Fatalf("second Set returned error: %v", err)
	}

	got, ok, err := kv.Get(ctx, "moodHistory")
	if err != nil || !ok {
		t.Fatalf("expected stored key, got ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, []byte(`[1,2]`)) {
		t.Fatalf("expected overwritten value, got %s", got)
	}
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemoryKV())
}

func TestMemoryKVFailWrites(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()
	if err := kv.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	quota := errors.New("quota exceeded")
	kv.FailWrites(quota)
	if err := kv.Set(ctx, "k", []byte("v2")); !errors.Is(err, quota) {
		t.Fatalf("expected quota error, got %v", err)
	}
	got, _, _ := kv.Get(ctx, "k")
	if string(got) != "v1" {
		t.Fatalf("expected failed write to keep old value, got %s", got)
	}
	if kv.Writes() != 1 {
		t.Fatalf("expected 1 successful write, got %d", kv.Writes())
	}
}

func TestMemoryKVCopiesValues(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()
	value := []byte("abc")
	_ = kv.Set(ctx, "k", value)
	value[0] = 'z'

	got, _, _ := kv.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("expected stored copy, got %s", got)
	}
}

func TestPostgresKV(t *testing.T) {
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	kv, err := OpenPostgres(ctx, databaseURL)
	if err != nil {
		t.Fatalf("OpenPostgres returned error: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })

	if err := kv.Migrate(ctx); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}
	// Migrate twice: operator migrate is expected to be re-runnable.
	if err := kv.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate returned error: %v", err)
	}
	clearKeys := func() {
		if err := kv.db.WithContext(ctx).Where("key IN ?", []string{"missing", "moodHistory"}).Delete(&kvModel{}).Error; err != nil {
			t.Fatalf("failed to clear test keys: %v", err)
		}
	}
	clearKeys()
	t.Cleanup(clearKeys)

	exerciseKV(t, kv)
	if err := kv.Ping(ctx); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
}

func TestSQLiteKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wellness.db")
	kv, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenSQLite returned error: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })

	exerciseKV(t, kv)
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wellness.db")

	first, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite returned error: %v", err)
	}
	if err := first.Set(ctx, "moodHistory", []byte(`[]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	_ = first.Close()

	second, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer second.Close()

	got, ok, err := second.Get(ctx, "moodHistory")
	if err != nil || !ok || string(got) != `[]` {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", got, ok, err)
	}
}

func TestNewStoreBackends(t *testing.T) {
	ctx := context.Background()

	mem, err := NewStore(ctx, Options{Backend: BackendMemory})
	if err != nil {
		t.Fatalf("memory backend returned error: %v", err)
	}
	defer mem.Close()
	if mem.Backend() != BackendMemory {
		t.Fatalf("unexpected backend name %q", mem.Backend())
	}
	if err := mem.Ping(ctx); err != nil {
		t.Fatalf("memory ping returned error: %v", err)
	}
	exerciseKV(t, mem.KV)

	lite, err := NewStore(ctx, Options{Backend: BackendSQLite, SQLitePath: filepath.Join(t.TempDir(), "kv.db")})
	if err != nil {
		t.Fatalf("sqlite backend returned error: %v", err)
	}
	defer lite.Close()
	if err := lite.Migrate(ctx); err != nil {
		t.Fatalf("sqlite migrate returned error: %v", err)
	}

	if _, err := NewStore(ctx, Options{Backend: "redis"}); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
	if _, err := NewStore(ctx, Options{Backend: BackendPostgres}); err == nil {
		t.Fatalf("expected error for postgres without url")
	}
}
