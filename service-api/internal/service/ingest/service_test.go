package ingest

import (
	"context"
	"errors"
	"testing"

	"movie-portal/pkg/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMovieRepo struct {
	created   []*model.Movie
	createErr error
	movies    map[uuid.UUID]*model.Movie
	deleted   []uuid.UUID
	counts    map[model.MovieStatus]int
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uuid.UUID]*model.Movie)}
}

func (f *fakeMovieRepo) Create(movie *model.Movie) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, movie)
	f.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) GetByID(id uuid.UUID) (*model.Movie, error) {
	return f.movies[id], nil
}

func (f *fakeMovieRepo) ListPublished(category string, limit int) ([]model.Movie, error) {
	return nil, nil
}

func (f *fakeMovieRepo) ListAll(limit, offset int) ([]model.Movie, int, error) {
	movies := make([]model.Movie, 0, len(f.movies))
	for _, movie := range f.movies {
		movies = append(movies, *movie)
	}
	return movies, len(movies), nil
}

func (f *fakeMovieRepo) Update(movie *model.Movie) error {
	f.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) Delete(id uuid.UUID) error {
	delete(f.movies, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeMovieRepo) IncrementViews(id uuid.UUID) error     { return nil }
func (f *fakeMovieRepo) IncrementDownloads(id uuid.UUID) error { return nil }

func (f *fakeMovieRepo) CountByStatus() (map[model.MovieStatus]int, error) {
	return f.counts, nil
}

type fakeQualityRepo struct {
	qualities      []*model.MovieQuality
	links          []*model.MovieQualityLink
	failTiers      map[string]error
	failLinkSuffix string
}

func (f *fakeQualityRepo) CreateQuality(quality *model.MovieQuality) error {
	if err := f.failTiers[quality.Quality]; err != nil {
		return err
	}
	f.qualities = append(f.qualities, quality)
	return nil
}

func (f *fakeQualityRepo) CreateLink(link *model.MovieQualityLink) error {
	if f.failLinkSuffix != "" && len(link.URL) >= len(f.failLinkSuffix) &&
		link.URL[len(link.URL)-len(f.failLinkSuffix):] == f.failLinkSuffix {
		return errors.New("insert failed")
	}
	f.links = append(f.links, link)
	return nil
}

func (f *fakeQualityRepo) ListByMovie(movieID uuid.UUID) ([]model.MovieQuality, error) {
	return nil, nil
}

func (f *fakeQualityRepo) ListByMovies(movieIDs []uuid.UUID) (map[uuid.UUID][]model.MovieQuality, error) {
	return nil, nil
}

type fakeRequestRepo struct {
	pending int
}

func (f *fakeRequestRepo) Create(request *model.MovieRequest) error { return nil }
func (f *fakeRequestRepo) ListAll(limit, offset int) ([]model.MovieRequest, int, error) {
	return nil, 0, nil
}
func (f *fakeRequestRepo) UpdateStatus(id uuid.UUID, status string) error { return nil }
func (f *fakeRequestRepo) CountPending() (int, error)                     { return f.pending, nil }

func newService(movieRepo *fakeMovieRepo, qualityRepo *fakeQualityRepo) Service {
	return NewIngestService(movieRepo, qualityRepo, &fakeRequestRepo{})
}

func uploadRequest() *model.UploadMovieRequest {
	return &model.UploadMovieRequest{
		Title:    "Test Movie",
		Category: model.CategoryHollywood,
		FileSize: "1.4 GB",
		DownloadLinks: map[string][]model.UploadLink{
			"1080p": {
				{Title: "Server 1", URL: "https://cdn.example.com/movie-1080p.mkv"},
				{URL: "https://mirror.example.com/movie-1080p.mkv", Language: "hi"},
			},
			"720p": {
				{URL: "https://cdn.example.com/movie-720p.mkv"},
			},
		},
		Images: []model.UploadImage{
			{Title: "Still 1", URL: "https://cdn.example.com/still1.jpg"},
			{URL: "https://cdn.example.com/still2.jpg"},
		},
	}
}

func TestUploadRoundTrip(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	qualityRepo := &fakeQualityRepo{}
	svc := newService(movieRepo, qualityRepo)

	summary, err := svc.Upload(context.Background(), uploadRequest(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "Test Movie", summary.Title)
	assert.Equal(t, 2, summary.QualitiesSaved)
	assert.Equal(t, 2, summary.ImagesSaved)
	assert.Equal(t, `Movie "Test Movie" uploaded successfully with 2 download quality options and 2 images.`, summary.Message)

	require.Len(t, movieRepo.created, 1)
	assert.Equal(t, model.StatusPublished, movieRepo.created[0].Status)

	// two tiers plus the gallery sentinel quality
	require.Len(t, qualityRepo.qualities, 3)
	assert.Equal(t, "1080p", qualityRepo.qualities[0].Quality)
	assert.Equal(t, "720p", qualityRepo.qualities[1].Quality)
	assert.Equal(t, model.QualityImages, qualityRepo.qualities[2].Quality)
	assert.Equal(t, "1.4 GB", qualityRepo.qualities[0].FileSize)

	// 3 download links + 2 gallery images
	require.Len(t, qualityRepo.links, 5)
	assert.Equal(t, model.LinkKindDownload, qualityRepo.links[0].Kind)
	assert.Equal(t, "Server 1", qualityRepo.links[0].Title)
	assert.Equal(t, "Download", qualityRepo.links[1].Title)
	assert.Equal(t, "hi", qualityRepo.links[1].Language)
	assert.Equal(t, model.LinkKindImage, qualityRepo.links[3].Kind)
	assert.Equal(t, "Movie Image", qualityRepo.links[4].Title)
}

func TestUploadDropsImageURLsFromDownloadTiers(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	qualityRepo := &fakeQualityRepo{}
	svc := newService(movieRepo, qualityRepo)

	req := &model.UploadMovieRequest{
		Title:    "Test Movie",
		Category: model.CategoryBollywood,
		DownloadLinks: map[string][]model.UploadLink{
			"1080p": {
				{URL: "https://cdn.example.com/movie.mkv"},
				{URL: "https://cdn.example.com/screenshot.png"},
			},
		},
	}

	summary, err := svc.Upload(context.Background(), req, uuid.New())
	require.NoError(t, err)

	// the tier still counts, the image link inside it does not get written
	assert.Equal(t, 1, summary.QualitiesSaved)
	require.Len(t, qualityRepo.links, 1)
	assert.Equal(t, "https://cdn.example.com/movie.mkv", qualityRepo.links[0].URL)
}

func TestUploadMovieInsertFailureAborts(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	movieRepo.createErr = errors.New("connection reset")
	qualityRepo := &fakeQualityRepo{}
	svc := newService(movieRepo, qualityRepo)

	_, err := svc.Upload(context.Background(), uploadRequest(), uuid.New())
	assert.ErrorIs(t, err, ErrUploadFailed)

	// nothing else was written
	assert.Empty(t, qualityRepo.qualities)
	assert.Empty(t, qualityRepo.links)
}

func TestUploadTierFailureExcludedFromCount(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	qualityRepo := &fakeQualityRepo{
		failTiers: map[string]error{"720p": errors.New("insert failed")},
	}
	svc := newService(movieRepo, qualityRepo)

	summary, err := svc.Upload(context.Background(), uploadRequest(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.QualitiesSaved)
	assert.Equal(t, 2, summary.ImagesSaved)
}

func TestUploadAllTiersFailStillSucceeds(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	qualityRepo := &fakeQualityRepo{
		failTiers: map[string]error{
			"1080p":            errors.New("insert failed"),
			"720p":             errors.New("insert failed"),
			model.QualityImages: errors.New("insert failed"),
		},
	}
	svc := newService(movieRepo, qualityRepo)

	summary, err := svc.Upload(context.Background(), uploadRequest(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.QualitiesSaved)
	assert.Equal(t, 0, summary.ImagesSaved)
	require.Len(t, movieRepo.created, 1)
}

func TestUploadValidation(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	qualityRepo := &fakeQualityRepo{}
	svc := newService(movieRepo, qualityRepo)

	tests := []struct {
		name string
		req  *model.UploadMovieRequest
	}{
		{name: "missing title", req: &model.UploadMovieRequest{Category: model.CategoryHollywood}},
		{name: "missing category", req: &model.UploadMovieRequest{Title: "Some Movie"}},
		{name: "whitespace title", req: &model.UploadMovieRequest{Title: "   ", Category: model.CategoryHollywood}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), tt.req, uuid.New())
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// validation failures never reach storage
	assert.Empty(t, movieRepo.created)
	assert.Empty(t, qualityRepo.qualities)
}

func TestUploadTitleFromMetadata(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	qualityRepo := &fakeQualityRepo{}
	svc := newService(movieRepo, qualityRepo)

	rating := 7.5
	req := &model.UploadMovieRequest{
		Category: model.CategoryHollywood,
		Rating:   &rating,
		Metadata: &model.MetadataSelection{
			TMDBID:      27205,
			Title:       "Inception",
			Overview:    "A thief who steals corporate secrets.",
			ReleaseDate: "2010-07-16",
			VoteAverage: 8.4,
			PosterPath:  "/poster.jpg",
			GenreIDs:    []int64{28, 878},
		},
	}

	summary, err := svc.Upload(context.Background(), req, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "Inception", summary.Title)

	require.Len(t, movieRepo.created, 1)
	movie := movieRepo.created[0]
	assert.Equal(t, "A thief who steals corporate secrets.", movie.Overview)
	assert.Equal(t, 7.5, movie.Rating) // manual rating wins over metadata
	assert.Equal(t, "/poster.jpg", movie.PosterPath)
	require.NotNil(t, movie.TMDBID)
	assert.Equal(t, int64(27205), *movie.TMDBID)
	require.NotNil(t, movie.ReleaseDate)
	assert.Equal(t, 2010, movie.ReleaseDate.Year())
}

func TestUploadInvalidYearFallsBackToMetadata(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	svc := newService(movieRepo, &fakeQualityRepo{})

	req := &model.UploadMovieRequest{
		Title:    "Some Movie",
		Category: model.CategoryHollywood,
		Year:     "20xx",
		Metadata: &model.MetadataSelection{ReleaseDate: "2010-07-16"},
	}

	_, err := svc.Upload(context.Background(), req, uuid.New())
	require.NoError(t, err)

	require.Len(t, movieRepo.created, 1)
	require.NotNil(t, movieRepo.created[0].ReleaseDate)
	assert.Equal(t, 2010, movieRepo.created[0].ReleaseDate.Year())
}

func TestUpdateMovieNotFound(t *testing.T) {
	svc := newService(newFakeMovieRepo(), &fakeQualityRepo{})

	_, err := svc.UpdateMovie(context.Background(), uuid.New(), &model.UpdateMovieRequest{Title: "New"})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestDeleteMovie(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	qualityRepo := &fakeQualityRepo{}
	svc := newService(movieRepo, qualityRepo)

	summary, err := svc.Upload(context.Background(), uploadRequest(), uuid.New())
	require.NoError(t, err)

	err = svc.DeleteMovie(context.Background(), summary.MovieID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{summary.MovieID}, movieRepo.deleted)

	err = svc.DeleteMovie(context.Background(), summary.MovieID)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestStats(t *testing.T) {
	movieRepo := newFakeMovieRepo()
	movieRepo.counts = map[model.MovieStatus]int{
		model.StatusPublished: 10,
		model.StatusDraft:     3,
		model.StatusArchived:  1,
	}
	svc := NewIngestService(movieRepo, &fakeQualityRepo{}, &fakeRequestRepo{pending: 4})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 14, stats.TotalMovies)
	assert.Equal(t, 10, stats.Published)
	assert.Equal(t, 3, stats.Drafts)
	assert.Equal(t, 1, stats.Archived)
	assert.Equal(t, 4, stats.PendingRequests)
}
