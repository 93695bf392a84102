package request

import (
	"context"
	"time"

	"movie-portal/pkg/logger"
	"movie-portal/pkg/model"
	requestRepo "movie-portal/service-api/internal/repository/request"

	"github.com/google/uuid"
)

// ErrRequestNotFound is the repository's not-found sentinel surfaced to the
// HTTP layer.
var ErrRequestNotFound = requestRepo.ErrNotFound

// Service handles the public request-a-movie form and its admin workflow.
type Service interface {
	Create(ctx context.Context, req *model.CreateMovieRequestRequest) (*model.MovieRequest, error)
	List(ctx context.Context, page, pageSize int) ([]model.MovieRequest, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type requestService struct {
	requestRepo requestRepo.Repository
}

// NewRequestService creates a new request service instance.
func NewRequestService(requestRepo requestRepo.Repository) Service {
	return &requestService{
		requestRepo: requestRepo,
	}
}

// Create stores one request with status pending.
func (s *requestService) Create(ctx context.Context, req *model.CreateMovieRequestRequest) (*model.MovieRequest, error) {
	now := time.Now()
	request := &model.MovieRequest{
		ID:             uuid.New(),
		MovieTitle:     req.MovieTitle,
		RequesterName:  req.RequesterName,
		Email:          req.Email,
		Genre:          req.Genre,
		Language:       req.Language,
		Quality:        req.Quality,
		ReleaseYear:    req.ReleaseYear,
		AdditionalInfo: req.AdditionalInfo,
		Status:         model.RequestStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.requestRepo.Create(request)
	if err != nil {
		logger.Error(err, "failed to save movie request")
		return nil, err
	}

	logger.Infof("movie request saved: %s", request.MovieTitle)
	return request, nil
}

// List retrieves requests newest first for the admin panel.
func (s *requestService) List(ctx context.Context, page, pageSize int) ([]model.MovieRequest, int, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	return s.requestRepo.ListAll(pageSize, (page-1)*pageSize)
}

// UpdateStatus moves a request to fulfilled or rejected.
func (s *requestService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return s.requestRepo.UpdateStatus(id, status)
}
