package service

import (
	"context"

	"github.com/iliyamo/club-stadium-api/internal/model"
)

// StadiumRepository is the storage capability a StadiumService needs.
type StadiumRepository interface {
	GetByID(ctx context.Context, id uint64) (*model.Stadium, error)
	GetAll(ctx context.Context) ([]model.Stadium, error)
	GetByClub(ctx context.Context, clubName string) ([]model.Stadium, error)
	Add(ctx context.Context, in model.StadiumInput) (*model.Stadium, error)
	Update(ctx context.Context, id uint64, in model.StadiumInput) (*model.Stadium, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

// StadiumService delegates stadium operations to its repository.
type StadiumService struct {
	repo StadiumRepository
}

// NewStadiumService panics if repo is nil.
func NewStadiumService(repo StadiumRepository) *StadiumService {
	if repo == nil {
		panic("nil repository passed to NewStadiumService")
	}
	return &StadiumService{repo: repo}
}

// GetStadiumByID returns nil when the stadium does not exist.
func (s *StadiumService) GetStadiumByID(ctx context.Context, id uint64) (*model.Stadium, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAllStadiums lists stadiums ordered by stadium name.
func (s *StadiumService) GetAllStadiums(ctx context.Context) ([]model.Stadium, error) {
	return s.repo.GetAll(ctx)
}

// GetStadiumsByClub lists the stadiums registered to a club name.
func (s *StadiumService) GetStadiumsByClub(ctx context.Context, clubName string) ([]model.Stadium, error) {
	return s.repo.GetByClub(ctx, clubName)
}

// AddStadium stores a new stadium and returns it with its id.
func (s *StadiumService) AddStadium(ctx context.Context, in model.StadiumInput) (*model.Stadium, error) {
	return s.repo.Add(ctx, in)
}

// UpdateStadium replaces a stadium; nil means it did not exist.
func (s *StadiumService) UpdateStadium(ctx context.Context, id uint64, in model.StadiumInput) (*model.Stadium, error) {
	return s.repo.Update(ctx, id, in)
}

// DeleteStadium reports whether the stadium existed.
func (s *StadiumService) DeleteStadium(ctx context.Context, id uint64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
