package featured

import (
	"context"
	"errors"
	"time"

	"movie-portal/pkg/logger"
	"movie-portal/pkg/model"
	featuredRepo "movie-portal/service-api/internal/repository/featured"
	movieRepo "movie-portal/service-api/internal/repository/movie"

	"github.com/google/uuid"
)

var ErrMovieNotFound = errors.New("movie not found")

// Service manages featured-section placements from the admin panel.
type Service interface {
	Add(ctx context.Context, req *model.AddFeaturedRequest, operatorID uuid.UUID) (*model.FeaturedMovie, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type featuredService struct {
	featuredRepo featuredRepo.Repository
	movieRepo    movieRepo.Repository
}

// NewFeaturedService creates a new featured service instance.
func NewFeaturedService(featuredRepo featuredRepo.Repository, movieRepo movieRepo.Repository) Service {
	return &featuredService{
		featuredRepo: featuredRepo,
		movieRepo:    movieRepo,
	}
}

// Add places a movie in a featured section. The same movie may be placed in
// one section more than once; ordering is the operator's to manage.
func (s *featuredService) Add(ctx context.Context, req *model.AddFeaturedRequest, operatorID uuid.UUID) (*model.FeaturedMovie, error) {
	movie, err := s.movieRepo.GetByID(req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	sectionType := req.SectionType
	if sectionType == "" {
		sectionType = model.SectionPopular
	}

	now := time.Now()
	placement := &model.FeaturedMovie{
		ID:           uuid.New(),
		MovieID:      req.MovieID,
		SectionType:  sectionType,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
		CreatedBy:    &operatorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.featuredRepo.Add(placement)
	if err != nil {
		return nil, err
	}

	logger.Infof("movie %s featured in section %s", req.MovieID, sectionType)
	return placement, nil
}

// Remove deletes a placement. Removing an already-removed id succeeds.
func (s *featuredService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.featuredRepo.Remove(id)
}
