// Package catalogue loads the read-only sport catalogue and tags its entries.
package catalogue

import (
	"context"
	"strings"

	"github.com/okian/sportfit/internal/domain/model"
)

// Store provides read access to the sport catalogue.
type Store interface {
	// All returns every entry in catalogue order.
	All(ctx context.Context) []model.SportCandidate

	// Get returns the entry with the given event name, ignoring case.
	// Returns ErrNotFound if no entry matches.
	Get(ctx context.Context, eventName string) (model.SportCandidate, error)

	// Count returns the number of entries.
	Count(ctx context.Context) int
}

// MemoryStore is an immutable Store built once at load time.
type MemoryStore struct {
	sports []model.SportCandidate
	byName map[string]int
}

// NewMemoryStore indexes sports. Later duplicates of an event name are
// dropped.
func NewMemoryStore(sports []model.SportCandidate) *MemoryStore {
	s := &MemoryStore{
		sports: make([]model.SportCandidate, 0, len(sports)),
		byName: make(map[string]int, len(sports)),
	}
	for _, sp := range sports {
		key := strings.ToLower(strings.TrimSpace(sp.EventName))
		if key == "" {
			continue
		}
		if _, dup := s.byName[key]; dup {
			continue
		}
		s.byName[key] = len(s.sports)
		s.sports = append(s.sports, sp)
	}
	return s
}

// All returns a copy of the entries, so callers may filter in place.
func (s *MemoryStore) All(_ context.Context) []model.SportCandidate {
	out := make([]model.SportCandidate, len(s.sports))
	copy(out, s.sports)
	return out
}

func (s *MemoryStore) Get(_ context.Context, eventName string) (model.SportCandidate, error) {
	i, ok := s.byName[strings.ToLower(strings.TrimSpace(eventName))]
	if !ok {
		return model.SportCandidate{}, ErrNotFound
	}
	return s.sports[i], nil
}

func (s *MemoryStore) Count(_ context.Context) int {
	return len(s.sports)
}
