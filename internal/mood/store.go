// Package mood owns the persisted mood history: at most one entry per calendar day,
// bounded to the most recent entries, written through to a key-value backend.
package mood

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/easeaico/wellness/internal/storage"
	"github.com/easeaico/wellness/internal/types"
)

const (
	// HistoryKey is the storage key the history is saved under.
	HistoryKey = "moodHistory"
	// DefaultLimit bounds the stored history.
	DefaultLimit = 30
	// DefaultRecent is the size of the "recent moods" view.
	DefaultRecent = 7
)

// Store is the mood history. All methods are safe for concurrent use; Record's
// filter/append/truncate/persist sequence runs under a single lock.
type Store struct {
	mu      sync.Mutex
	kv      storage.KV
	entries []types.MoodEntry

	limit  int
	now    func() time.Time
	loc    *time.Location
	newID  func() string
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the time zone calendar days are computed in. Default: time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithIDGenerator replaces the UUIDv7 entry id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLimit lowers the maximum number of stored entries. Values below 1 are
// ignored and values above DefaultLimit are clamped to it.
func WithLimit(limit int) Option {
	return func(s *Store) {
		if limit > 0 {
			s.limit = min(limit, DefaultLimit)
		}
	}
}

// WithLogger sets the logger used for load warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func newUUIDv7() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewStore loads the history from kv. Missing or malformed data yields an empty
// history; only a failing read is returned as an error.
func NewStore(ctx context.Context, kv storage.KV, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("kv store is nil")
	}
	s := &Store{
		kv:     kv,
		limit:  DefaultLimit,
		now:    time.Now,
		loc:    time.Local,
		newID:  newUUIDv7,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	data, ok, err := kv.Get(ctx, HistoryKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood history: %w", err)
	}
	if !ok {
		return s, nil
	}

	entries, err := decodeHistory(data)
	if err != nil {
		var malformed *MalformedHistoryError
		if !errors.As(err, &malformed) {
			return nil, err
		}
		s.logger.Warn("ignoring malformed mood history", "key", HistoryKey, "error", err.Error())
		return s, nil
	}
	if len(entries) > s.limit {
		entries = entries[len(entries)-s.limit:]
	}
	s.entries = entries
	s.logger.Debug("mood history loaded", "entries", len(entries))
	return s, nil
}

// Record logs mood for now, replacing any entry from the same calendar day.
func (s *Store) Record(ctx context.Context, m types.Mood) (types.MoodEntry, error) {
	if !m.Valid() {
		return types.MoodEntry{}, fmt.Errorf("%w: %q", ErrInvalidMood, string(m))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().Round(0)
	entry := types.MoodEntry{
		ID:        s.newID(),
		Mood:      m,
		Emoji:     m.Emoji(),
		Timestamp: now,
	}

	next := make([]types.MoodEntry, 0, len(s.entries)+1)
	for _, e := range s.entries {
		if !s.sameDay(e.Timestamp, now) {
			next = append(next, e)
		}
	}
	next = append(next, entry)
	if len(next) > s.limit {
		next = append([]types.MoodEntry(nil), next[len(next)-s.limit:]...)
	}

	data, err := encodeHistory(next)
	if err != nil {
		return types.MoodEntry{}, &PersistenceError{Op: "encode", Err: err}
	}
	if err := s.kv.Set(ctx, HistoryKey, data); err != nil {
		return types.MoodEntry{}, &PersistenceError{Op: "save", Err: err}
	}

	s.entries = next
	return entry, nil
}

// History returns every stored entry in insertion order.
func (s *Store) History() []types.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.MoodEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Today returns the entry logged on the current calendar day, if any.
func (s *Store) Today() (types.MoodEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.sameDay(s.entries[i].Timestamp, now) {
			return s.entries[i], true
		}
	}
	return types.MoodEntry{}, false
}

// HasLoggedToday reports whether Today would find an entry.
func (s *Store) HasLoggedToday() bool {
	_, ok := s.Today()
	return ok
}

// Latest returns the most recently recorded entry.
func (s *Store) Latest() (types.MoodEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return types.MoodEntry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Recent returns the last n entries, most recent first.
func (s *Store) Recent(n int) []types.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 {
		return []types.MoodEntry{}
	}
	if n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]types.MoodEntry, 0, n)
	for i := len(s.entries) - 1; i >= len(s.entries)-n; i-- {
		out = append(out, s.entries[i])
	}
	return out
}

// Limit returns the configured history bound.
func (s *Store) Limit() int {
	return s.limit
}

func (s *Store) sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(s.loc).Date()
	by, bm, bd := b.In(s.loc).Date()
	return ay == by && am == bm && ad == bd
}
