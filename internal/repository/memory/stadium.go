package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/iliyamo/club-stadium-api/internal/model"
)

// StadiumStore keeps stadiums in a map keyed by id.
type StadiumStore struct {
	mu     sync.RWMutex
	nextID uint64
	rows   map[uint64]model.Stadium
}

// NewStadiumStore returns an empty store whose first id is 1.
func NewStadiumStore() *StadiumStore {
	return &StadiumStore{rows: map[uint64]model.Stadium{}}
}

// GetByID returns nil, nil when no stadium has the id.
func (s *StadiumStore) GetByID(_ context.Context, id uint64) (*model.Stadium, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

// GetAll returns every stadium ordered by stadium name, then id.
func (s *StadiumStore) GetAll(_ context.Context) ([]model.Stadium, error) {
	return s.filter(func(model.Stadium) bool { return true }), nil
}

// GetByClub returns the stadiums whose club name matches exactly.
func (s *StadiumStore) GetByClub(_ context.Context, clubName string) ([]model.Stadium, error) {
	return s.filter(func(st model.Stadium) bool { return st.ClubName == clubName }), nil
}

func (s *StadiumStore) filter(keep func(model.Stadium) bool) []model.Stadium {
	s.mu.RLock()
	out := []model.Stadium{}
	for _, st := range s.rows {
		if keep(st) {
			out = append(out, st)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].StadiumsName != out[j].StadiumsName {
			return out[i].StadiumsName < out[j].StadiumsName
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Add stores the stadium under the next id.
func (s *StadiumStore) Add(_ context.Context, in model.StadiumInput) (*model.Stadium, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	st := in.Record(s.nextID)
	s.rows[st.ID] = st
	return &st, nil
}

// Update replaces every field of an existing stadium.
func (s *StadiumStore) Update(_ context.Context, id uint64, in model.StadiumInput) (*model.Stadium, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return nil, nil
	}
	st := in.Record(id)
	s.rows[id] = st
	return &st, nil
}

// Delete reports whether a stadium was removed.
func (s *StadiumStore) Delete(_ context.Context, id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}
