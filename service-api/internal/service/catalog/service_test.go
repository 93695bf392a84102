package catalog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"movie-portal/pkg/config"
	"movie-portal/pkg/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMovieRepo struct {
	movies    map[uuid.UUID]*model.Movie
	published []model.Movie
	views     map[uuid.UUID]int
	downloads map[uuid.UUID]int
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{
		movies:    make(map[uuid.UUID]*model.Movie),
		views:     make(map[uuid.UUID]int),
		downloads: make(map[uuid.UUID]int),
	}
}

func (f *fakeMovieRepo) Create(movie *model.Movie) error {
	f.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) GetByID(id uuid.UUID) (*model.Movie, error) {
	return f.movies[id], nil
}

func (f *fakeMovieRepo) ListPublished(category string, limit int) ([]model.Movie, error) {
	return f.published, nil
}

func (f *fakeMovieRepo) ListAll(limit, offset int) ([]model.Movie, int, error) {
	return nil, 0, nil
}

func (f *fakeMovieRepo) Update(movie *model.Movie) error { return nil }
func (f *fakeMovieRepo) Delete(id uuid.UUID) error       { return nil }

func (f *fakeMovieRepo) IncrementViews(id uuid.UUID) error {
	f.views[id]++
	return nil
}

func (f *fakeMovieRepo) IncrementDownloads(id uuid.UUID) error {
	f.downloads[id]++
	return nil
}

func (f *fakeMovieRepo) CountByStatus() (map[model.MovieStatus]int, error) {
	return nil, nil
}

type fakeQualityRepo struct {
	byMovie map[uuid.UUID][]model.MovieQuality
}

func (f *fakeQualityRepo) CreateQuality(quality *model.MovieQuality) error { return nil }
func (f *fakeQualityRepo) CreateLink(link *model.MovieQualityLink) error   { return nil }

func (f *fakeQualityRepo) ListByMovie(movieID uuid.UUID) ([]model.MovieQuality, error) {
	return f.byMovie[movieID], nil
}

func (f *fakeQualityRepo) ListByMovies(movieIDs []uuid.UUID) (map[uuid.UUID][]model.MovieQuality, error) {
	return f.byMovie, nil
}

type fakeFeaturedRepo struct {
	placements []model.FeaturedMovie
}

func (f *fakeFeaturedRepo) ListBySection(sectionType string, limit int) ([]model.FeaturedMovie, error) {
	return f.placements, nil
}

func (f *fakeFeaturedRepo) Add(featured *model.FeaturedMovie) error { return nil }
func (f *fakeFeaturedRepo) Remove(id uuid.UUID) error               { return nil }

func testConfig() *config.TMDBConfig {
	return &config.TMDBConfig{ImageBaseURL: "https://image.example.com/t/p"}
}

func publishedMovie() *model.Movie {
	release := time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC)
	return &model.Movie{
		ID:          uuid.New(),
		Title:       "Inception",
		Overview:    "A thief who steals corporate secrets.",
		PosterPath:  "/poster.jpg",
		ReleaseDate: &release,
		Rating:      8.4,
		Category:    model.CategoryHollywood,
		GenreIDs:    []int64{28, 878},
		Status:      model.StatusPublished,
	}
}

func TestListMoviesViewDerivation(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	movieRepo.published = []model.Movie{*publishedMovie()}
	svc := NewCatalogService(testConfig(), movieRepo, &fakeQualityRepo{}, &fakeFeaturedRepo{})

	views, err := svc.ListMovies(context.Background(), "", 50)
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, 2010, view.Year)
	assert.Equal(t, []string{"Action", "Science Fiction"}, view.Genre)
	assert.Equal(t, "https://image.example.com/t/p/w300/poster.jpg", view.Poster)
	assert.Equal(t, backdropPlaceholder, view.Backdrop)
	assert.Equal(t, defaultDuration, view.Duration)
}

func TestListMoviesMissingReleaseDate(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	movie := publishedMovie()
	movie.ReleaseDate = nil
	movie.PosterPath = ""
	movie.GenreIDs = []int64{999}
	movieRepo.published = []model.Movie{*movie}
	svc := NewCatalogService(testConfig(), movieRepo, &fakeQualityRepo{}, &fakeFeaturedRepo{})

	views, err := svc.ListMovies(context.Background(), "", 50)
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, time.Now().Year(), view.Year)
	assert.Equal(t, []string{"Unknown"}, view.Genre)
	assert.Equal(t, posterPlaceholder, view.Poster)
}

func TestListMoviesNestsQualities(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	movie := publishedMovie()
	movieRepo.published = []model.Movie{*movie}

	qualityRepo := &fakeQualityRepo{
		byMovie: map[uuid.UUID][]model.MovieQuality{
			movie.ID: {
				{
					Quality:  "1080p",
					FileSize: "1.4 GB",
					Links: []model.MovieQualityLink{
						{Title: "Server 1", URL: "https://cdn.example.com/movie.mkv", Language: "en", Kind: model.LinkKindDownload},
					},
				},
			},
		},
	}
	svc := NewCatalogService(testConfig(), movieRepo, qualityRepo, &fakeFeaturedRepo{})

	views, err := svc.ListMovies(context.Background(), "", 50)
	require.NoError(t, err)
	require.Len(t, views, 1)

	require.Len(t, views[0].Qualities, 1)
	assert.Equal(t, "1080p", views[0].Qualities[0].Quality)
	require.Len(t, views[0].Qualities[0].Links, 1)
	assert.Equal(t, "https://cdn.example.com/movie.mkv", views[0].Qualities[0].Links[0].URL)

	// the wire payload carries the nested tiers
	payload, err := json.Marshal(views[0])
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"qualities"`)
	assert.Contains(t, string(payload), `"1080p"`)
}

func TestGetMovieNotFound(t *testing.T) {
	svc := NewCatalogService(testConfig(), newFakeMovieRepo(), &fakeQualityRepo{}, &fakeFeaturedRepo{})

	_, err := svc.GetMovie(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestGetMovieDraftHidden(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	movie := publishedMovie()
	movie.Status = model.StatusDraft
	movieRepo.movies[movie.ID] = movie
	svc := NewCatalogService(testConfig(), movieRepo, &fakeQualityRepo{}, &fakeFeaturedRepo{})

	_, err := svc.GetMovie(context.Background(), movie.ID)
	assert.ErrorIs(t, err, ErrMovieNotFound)
	assert.Zero(t, movieRepo.views[movie.ID])
}

func TestGetMovieSplitsGalleryFromTiers(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	movie := publishedMovie()
	movieRepo.movies[movie.ID] = movie

	qualityRepo := &fakeQualityRepo{
		byMovie: map[uuid.UUID][]model.MovieQuality{
			movie.ID: {
				{
					Quality:  "1080p",
					FileSize: "1.4 GB",
					Links: []model.MovieQualityLink{
						{Title: "Server 1", URL: "https://cdn.example.com/movie.mkv", Language: "en", Kind: model.LinkKindDownload},
						{Title: "Screenshot", URL: "https://cdn.example.com/shot.png", Kind: model.LinkKindImage},
					},
				},
				{
					Quality: model.QualityImages,
					Links: []model.MovieQualityLink{
						{Title: "Still 1", URL: "https://cdn.example.com/still1.jpg", Kind: model.LinkKindImage},
					},
				},
			},
		},
	}
	svc := NewCatalogService(testConfig(), movieRepo, qualityRepo, &fakeFeaturedRepo{})

	detail, err := svc.GetMovie(context.Background(), movie.ID)
	require.NoError(t, err)

	// the images sentinel never appears as a download tier
	require.Len(t, detail.Qualities, 1)
	assert.Equal(t, "1080p", detail.Qualities[0].Quality)
	require.Len(t, detail.Qualities[0].Links, 1)
	assert.Equal(t, "https://cdn.example.com/movie.mkv", detail.Qualities[0].Links[0].URL)

	// image-kind links from any tier join the gallery
	require.Len(t, detail.Gallery, 2)
	assert.Equal(t, "Screenshot", detail.Gallery[0].Title)
	assert.Equal(t, "Still 1", detail.Gallery[1].Title)

	// each fetch bumps the view counter
	assert.Equal(t, 1, movieRepo.views[movie.ID])
}

func TestRegisterDownload(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	movie := publishedMovie()
	movieRepo.movies[movie.ID] = movie
	svc := NewCatalogService(testConfig(), movieRepo, &fakeQualityRepo{}, &fakeFeaturedRepo{})

	err := svc.RegisterDownload(context.Background(), movie.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, movieRepo.downloads[movie.ID])

	err = svc.RegisterDownload(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestListFeatured(t *testing.T) {
	movie := publishedMovie()
	featuredRepo := &fakeFeaturedRepo{
		placements: []model.FeaturedMovie{
			{ID: uuid.New(), MovieID: movie.ID, SectionType: model.SectionTrending, DisplayOrder: 1, Movie: movie},
		},
	}
	qualityRepo := &fakeQualityRepo{
		byMovie: map[uuid.UUID][]model.MovieQuality{
			movie.ID: {
				{Quality: "720p", FileSize: "700 MB"},
			},
		},
	}
	svc := NewCatalogService(testConfig(), newFakeMovieRepo(), qualityRepo, featuredRepo)

	views, err := svc.ListFeatured(context.Background(), model.SectionTrending, 10)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, model.SectionTrending, views[0].SectionType)
	assert.Equal(t, "Inception", views[0].Movie.Title)

	// the joined movie carries its download tiers
	require.Len(t, views[0].Movie.Qualities, 1)
	assert.Equal(t, "720p", views[0].Movie.Qualities[0].Quality)
}
