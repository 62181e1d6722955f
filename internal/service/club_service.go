// Package service sits between the HTTP handlers and the repositories.  The
// services add no behavior of their own; they exist so handlers depend on a
// capability interface rather than on a specific storage backend.
package service

import (
	"context"

	"github.com/iliyamo/club-stadium-api/internal/model"
)

// ClubRepository is the storage capability a ClubService needs.  Absent rows
// are reported as a nil record (or false for Delete), never as an error.
type ClubRepository interface {
	GetByID(ctx context.Context, id uint64) (*model.Club, error)
	GetAll(ctx context.Context) ([]model.Club, error)
	Add(ctx context.Context, in model.ClubInput) (*model.Club, error)
	Update(ctx context.Context, id uint64, in model.ClubInput) (*model.Club, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

// ClubService delegates club operations to its repository.
type ClubService struct {
	repo ClubRepository
}

// NewClubService panics if repo is nil.
func NewClubService(repo ClubRepository) *ClubService {
	if repo == nil {
		panic("nil repository passed to NewClubService")
	}
	return &ClubService{repo: repo}
}

// GetClubByID returns nil when the club does not exist.
func (s *ClubService) GetClubByID(ctx context.Context, id uint64) (*model.Club, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAllClubs lists clubs ordered by name.
func (s *ClubService) GetAllClubs(ctx context.Context) ([]model.Club, error) {
	return s.repo.GetAll(ctx)
}

// AddClub stores a new club and returns it with its id.
func (s *ClubService) AddClub(ctx context.Context, in model.ClubInput) (*model.Club, error) {
	return s.repo.Add(ctx, in)
}

// UpdateClub replaces a club; nil means it did not exist.
func (s *ClubService) UpdateClub(ctx context.Context, id uint64, in model.ClubInput) (*model.Club, error) {
	return s.repo.Update(ctx, id, in)
}

// DeleteClub reports whether the club existed.
func (s *ClubService) DeleteClub(ctx context.Context, id uint64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
