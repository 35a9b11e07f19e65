// Package wordstore owns the ordered word list and the views derived from it.
package wordstore

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"vocabtracker/internal/domain"
	"vocabtracker/pkg/validator"
)

// PersistFunc receives the full list after every mutation
type PersistFunc func(entries []domain.WordEntry) error

// MaxID is the largest ID kept on load. Lists written by browsers hold
// Date.now() IDs, which never exceed the largest exact float64 integer.
const MaxID int64 = 1<<53 - 1

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used for ID assignment
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store holds the word list in insertion order.
// All access is serialized; a mutation and its persist call happen under one lock.
type Store struct {
	mu      sync.Mutex
	words   []domain.WordEntry
	persist PersistFunc
	lastID  int64
	now     func() time.Time
}

// New creates a store seeded with initial entries.
// Entries with a missing, duplicate or out of range ID get a fresh one;
// initial is not modified.
func New(initial []domain.WordEntry, persist PersistFunc, opts ...Option) *Store {
	s := &Store{
		words:   make([]domain.WordEntry, 0, len(initial)),
		persist: persist,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, e := range initial {
		if e.ID > s.lastID && e.ID <= MaxID {
			s.lastID = e.ID
		}
	}

	seen := make(map[int64]struct{}, len(initial))
	for _, e := range initial {
		if _, dup := seen[e.ID]; e.ID <= 0 || e.ID > MaxID || dup {
			e.ID = s.nextID()
		}
		seen[e.ID] = struct{}{}
		s.words = append(s.words, e)
	}

	return s
}

// nextID must be called with mu held (or before the store is shared)
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Add appends a new entry built from in.
// It returns domain.ErrValidationSkip, leaving the list unchanged, when the
// foreign word or translation is blank. A persist error is returned alongside
// the committed entry.
func (s *Store) Add(in domain.WordInput) (domain.WordEntry, error) {
	in = in.Trimmed()
	if err := validator.ValidateStruct(in); err != nil {
		return domain.WordEntry{}, fmt.Errorf("%w: %v", domain.ErrValidationSkip, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.WordEntry{
		ID:            s.nextID(),
		Foreign:       in.Foreign,
		English:       in.English,
		Pronunciation: in.Pronunciation,
	}
	s.words = append(s.words, entry)

	if err := s.persistLocked(); err != nil {
		return entry, err
	}
	return entry, nil
}

// Delete removes the entry with the given ID. Unknown IDs are a no-op.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]domain.WordEntry, 0, len(s.words))
	for _, e := range s.words {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.words = kept

	return s.persistLocked()
}

// Get returns the entry with the given ID
func (s *Store) Get(id int64) (domain.WordEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.words {
		if e.ID == id {
			return e, true
		}
	}
	return domain.WordEntry{}, false
}

// Search returns entries whose English translation contains term, ignoring case.
// An empty term matches everything. Order follows the list.
func (s *Store) Search(term string) []domain.WordEntry {
	needle := strings.ToLower(term)

	s.mu.Lock()
	defer s.mu.Unlock()

	view := make([]domain.WordEntry, 0, len(s.words))
	for _, e := range s.words {
		if strings.Contains(strings.ToLower(e.English), needle) {
			view = append(view, e)
		}
	}
	return view
}

// Entries returns a copy of the whole list
func (s *Store) Entries() []domain.WordEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Len returns the number of entries
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.words)
}

func (s *Store) snapshotLocked() []domain.WordEntry {
	out := make([]domain.WordEntry, len(s.words))
	copy(out, s.words)
	return out
}

func (s *Store) persistLocked() error {
	if s.persist == nil {
		return nil
	}
	if err := s.persist(s.snapshotLocked()); err != nil {
		return fmt.Errorf("failed to persist word list: %w", err)
	}
	return nil
}
