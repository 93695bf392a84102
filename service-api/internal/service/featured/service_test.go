package featured

import (
	"context"
	"testing"

	"movie-portal/pkg/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeaturedRepo struct {
	placements map[uuid.UUID]*model.FeaturedMovie
}

func newFakeFeaturedRepo() *fakeFeaturedRepo {
	return &fakeFeaturedRepo{placements: make(map[uuid.UUID]*model.FeaturedMovie)}
}

func (f *fakeFeaturedRepo) ListBySection(sectionType string, limit int) ([]model.FeaturedMovie, error) {
	return nil, nil
}

func (f *fakeFeaturedRepo) Add(featured *model.FeaturedMovie) error {
	f.placements[featured.ID] = featured
	return nil
}

// Remove mirrors the repository semantics: deleting an id that is not there
// is not an error.
func (f *fakeFeaturedRepo) Remove(id uuid.UUID) error {
	delete(f.placements, id)
	return nil
}

type fakeMovieRepo struct {
	movies map[uuid.UUID]*model.Movie
}

func (f *fakeMovieRepo) Create(movie *model.Movie) error { return nil }

func (f *fakeMovieRepo) GetByID(id uuid.UUID) (*model.Movie, error) {
	return f.movies[id], nil
}

func (f *fakeMovieRepo) ListPublished(category string, limit int) ([]model.Movie, error) {
	return nil, nil
}
func (f *fakeMovieRepo) ListAll(limit, offset int) ([]model.Movie, int, error) { return nil, 0, nil }
func (f *fakeMovieRepo) Update(movie *model.Movie) error                       { return nil }
func (f *fakeMovieRepo) Delete(id uuid.UUID) error                             { return nil }
func (f *fakeMovieRepo) IncrementViews(id uuid.UUID) error                     { return nil }
func (f *fakeMovieRepo) IncrementDownloads(id uuid.UUID) error                 { return nil }
func (f *fakeMovieRepo) CountByStatus() (map[model.MovieStatus]int, error)     { return nil, nil }

func TestAddFeatured(t *testing.T) {
	movie := &model.Movie{ID: uuid.New(), Title: "Inception", Status: model.StatusPublished}
	movieRepo := &fakeMovieRepo{movies: map[uuid.UUID]*model.Movie{movie.ID: movie}}
	featuredRepo := newFakeFeaturedRepo()
	svc := NewFeaturedService(featuredRepo, movieRepo)

	placement, err := svc.Add(context.Background(), &model.AddFeaturedRequest{MovieID: movie.ID}, uuid.New())
	require.NoError(t, err)

	// section defaults to popular
	assert.Equal(t, model.SectionPopular, placement.SectionType)
	assert.True(t, placement.IsActive)
	assert.Contains(t, featuredRepo.placements, placement.ID)
}

func TestAddFeaturedUnknownMovie(t *testing.T) {
	svc := NewFeaturedService(newFakeFeaturedRepo(), &fakeMovieRepo{movies: map[uuid.UUID]*model.Movie{}})

	_, err := svc.Add(context.Background(), &model.AddFeaturedRequest{MovieID: uuid.New()}, uuid.New())
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestRemoveFeaturedIdempotent(t *testing.T) {
	movie := &model.Movie{ID: uuid.New(), Status: model.StatusPublished}
	movieRepo := &fakeMovieRepo{movies: map[uuid.UUID]*model.Movie{movie.ID: movie}}
	featuredRepo := newFakeFeaturedRepo()
	svc := NewFeaturedService(featuredRepo, movieRepo)

	placement, err := svc.Add(context.Background(), &model.AddFeaturedRequest{MovieID: movie.ID}, uuid.New())
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), placement.ID))

	// removing again, or removing an id that never existed, still succeeds
	assert.NoError(t, svc.Remove(context.Background(), placement.ID))
	assert.NoError(t, svc.Remove(context.Background(), uuid.New()))
}
