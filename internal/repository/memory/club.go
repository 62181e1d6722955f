// Package memory provides in-process implementations of the club and
// stadium repositories.  They honor the same contract as the MySQL
// repositories (generated ids, name ordering, nil for absent rows) and are
// used by tests and by STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/iliyamo/club-stadium-api/internal/model"
)

// ClubStore keeps clubs in a map keyed by id.
type ClubStore struct {
	mu     sync.RWMutex
	nextID uint64
	rows   map[uint64]model.Club
}

// NewClubStore returns an empty store whose first id is 1.
func NewClubStore() *ClubStore {
	return &ClubStore{rows: map[uint64]model.Club{}}
}

// GetByID returns nil, nil when no club has the id.
func (s *ClubStore) GetByID(_ context.Context, id uint64) (*model.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// GetAll returns every club ordered by name, then id.
func (s *ClubStore) GetAll(_ context.Context) ([]model.Club, error) {
	s.mu.RLock()
	out := make([]model.Club, 0, len(s.rows))
	for _, c := range s.rows {
		out = append(out, c)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Add stores the club under the next id.
func (s *ClubStore) Add(_ context.Context, in model.ClubInput) (*model.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c := in.Record(s.nextID)
	s.rows[c.ID] = c
	return &c, nil
}

// Update replaces every field of an existing club.
func (s *ClubStore) Update(_ context.Context, id uint64, in model.ClubInput) (*model.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return nil, nil
	}
	c := in.Record(id)
	s.rows[id] = c
	return &c, nil
}

// Delete reports whether a club was removed.
func (s *ClubStore) Delete(_ context.Context, id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}
