package request

import (
	"context"
	"testing"

	"movie-portal/pkg/model"
	requestRepo "movie-portal/service-api/internal/repository/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequestRepo struct {
	requests map[uuid.UUID]*model.MovieRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uuid.UUID]*model.MovieRequest)}
}

func (f *fakeRequestRepo) Create(request *model.MovieRequest) error {
	f.requests[request.ID] = request
	return nil
}

func (f *fakeRequestRepo) ListAll(limit, offset int) ([]model.MovieRequest, int, error) {
	requests := make([]model.MovieRequest, 0, len(f.requests))
	for _, request := range f.requests {
		requests = append(requests, *request)
	}
	return requests, len(requests), nil
}

func (f *fakeRequestRepo) UpdateStatus(id uuid.UUID, status string) error {
	request, ok := f.requests[id]
	if !ok {
		return requestRepo.ErrNotFound
	}
	request.Status = status
	return nil
}

func (f *fakeRequestRepo) CountPending() (int, error) { return 0, nil }

func TestCreateRequestStartsPending(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo)

	request, err := svc.Create(context.Background(), &model.CreateMovieRequestRequest{
		MovieTitle: "Dune Part Three",
		Email:      "fan@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, model.RequestStatusPending, request.Status)
	assert.Contains(t, repo.requests, request.ID)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo)

	request, err := svc.Create(context.Background(), &model.CreateMovieRequestRequest{
		MovieTitle: "Dune Part Three",
	})
	require.NoError(t, err)

	err = svc.UpdateStatus(context.Background(), request.ID, model.RequestStatusFulfilled)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusFulfilled, repo.requests[request.ID].Status)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo())

	err := svc.UpdateStatus(context.Background(), uuid.New(), model.RequestStatusRejected)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}
