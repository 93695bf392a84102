package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movie-portal/pkg/logger"
	"movie-portal/pkg/model"
	movieRepo "movie-portal/service-api/internal/repository/movie"
	qualityRepo "movie-portal/service-api/internal/repository/quality"
	requestRepo "movie-portal/service-api/internal/repository/request"

	"github.com/google/uuid"
)

var (
	// ErrValidation means required form fields were missing; storage is
	// never touched in that case.
	ErrValidation = errors.New("movie title and category are required")
	// ErrUploadFailed means the movie insert itself failed. No quality or
	// link rows exist when this is returned.
	ErrUploadFailed = errors.New("failed to upload movie")
	ErrMovieNotFound = errors.New("movie not found")
)

// imageExtensions classifies a URL as a gallery asset. Links under a quality
// tier ending in one of these are dropped from the tier at submit time.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// Service is the admin curation workflow: the multi-table upload sequence
// plus movie editing, deletion and the dashboard stats.
type Service interface {
	Upload(ctx context.Context, req *model.UploadMovieRequest, operatorID uuid.UUID) (*model.UploadSummary, error)
	UpdateMovie(ctx context.Context, id uuid.UUID, req *model.UpdateMovieRequest) (*model.Movie, error)
	DeleteMovie(ctx context.Context, id uuid.UUID) error
	ListMovies(ctx context.Context, page, pageSize int) (*model.MovieListResponse, error)
	Stats(ctx context.Context) (*model.CatalogStats, error)
}

type ingestService struct {
	movieRepo   movieRepo.Repository
	qualityRepo qualityRepo.Repository
	requestRepo requestRepo.Repository
}

// NewIngestService creates a new ingestion service instance.
func NewIngestService(
	movieRepo movieRepo.Repository,
	qualityRepo qualityRepo.Repository,
	requestRepo requestRepo.Repository,
) Service {
	return &ingestService{
		movieRepo:   movieRepo,
		qualityRepo: qualityRepo,
		requestRepo: requestRepo,
	}
}

// Upload runs the commit sequence: movie row, then per-tier quality and link
// rows, then the gallery rows. The steps are not atomic: a failed tier or
// gallery is logged and excluded from the summary counts, but only a failed
// movie insert aborts the whole run.
func (s *ingestService) Upload(ctx context.Context, req *model.UploadMovieRequest, operatorID uuid.UUID) (*model.UploadSummary, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" && req.Metadata != nil {
		title = strings.TrimSpace(req.Metadata.Title)
	}
	if title == "" || strings.TrimSpace(req.Category) == "" {
		return nil, ErrValidation
	}

	movie := s.resolveMovie(req, title, operatorID)

	err := s.movieRepo.Create(movie)
	if err != nil {
		logger.Error(err, "failed to save movie row")
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	qualitiesSaved := s.saveQualityTiers(req, movie.ID)
	imagesSaved := s.saveGallery(req.Images, movie.ID)

	summary := &model.UploadSummary{
		MovieID:        movie.ID,
		Title:          title,
		QualitiesSaved: qualitiesSaved,
		ImagesSaved:    imagesSaved,
		Message: fmt.Sprintf(
			"Movie %q uploaded successfully with %d download quality options and %d images.",
			title, qualitiesSaved, imagesSaved),
	}

	logger.Infof("movie ingested: %s (ID: %s, %d qualities, %d images)",
		title, movie.ID, qualitiesSaved, imagesSaved)
	return summary, nil
}

// resolveMovie merges manual form input with the metadata prefill. Manual
// fields always win; metadata only fills the gaps.
func (s *ingestService) resolveMovie(req *model.UploadMovieRequest, title string, operatorID uuid.UUID) *model.Movie {
	now := time.Now()
	movie := &model.Movie{
		ID:        uuid.New(),
		Title:     title,
		Overview:  req.Overview,
		Category:  req.Category,
		Language:  "en",
		Status:    model.StatusPublished,
		CreatedBy: &operatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// manual year wins; an unparseable year falls through to the metadata
	// release date, and only then to now
	releaseDate := now
	resolved := false
	if req.Year != "" {
		if parsed, err := time.Parse("2006", req.Year); err == nil {
			releaseDate = parsed
			resolved = true
		}
	}
	if !resolved && req.Metadata != nil && req.Metadata.ReleaseDate != "" {
		if parsed, err := time.Parse("2006-01-02", req.Metadata.ReleaseDate); err == nil {
			releaseDate = parsed
		}
	}
	movie.ReleaseDate = &releaseDate

	if req.Rating != nil {
		movie.Rating = *req.Rating
	}

	if req.Metadata != nil {
		meta := req.Metadata
		if movie.Overview == "" {
			movie.Overview = meta.Overview
		}
		if req.Rating == nil {
			movie.Rating = meta.VoteAverage
		}
		movie.PosterPath = meta.PosterPath
		movie.BackdropPath = meta.BackdropPath
		movie.GenreIDs = meta.GenreIDs
		if meta.TMDBID != 0 {
			tmdbID := meta.TMDBID
			movie.TMDBID = &tmdbID
		}
	}

	return movie
}

// saveQualityTiers walks the fixed tiers in order and persists one quality
// row plus its link rows per tier that has at least one usable URL. A tier
// counts as saved only when all of its inserts succeeded.
func (s *ingestService) saveQualityTiers(req *model.UploadMovieRequest, movieID uuid.UUID) int {
	saved := 0
	for _, tier := range model.QualityTiers {
		links := usableLinks(req.DownloadLinks[tier])
		if len(links) == 0 {
			continue
		}

		err := s.saveTier(movieID, tier, links, req.FileSize)
		if err != nil {
			logger.Errorf(err, "failed to save quality tier %s for movie %s", tier, movieID)
			continue
		}
		saved++
	}
	return saved
}

func (s *ingestService) saveTier(movieID uuid.UUID, tier string, links []model.UploadLink, fileSize string) error {
	if fileSize == "" {
		fileSize = "Unknown"
	}

	now := time.Now()
	quality := &model.MovieQuality{
		ID:           uuid.New(),
		MovieID:      movieID,
		Quality:      tier,
		DownloadLink: links[0].URL,
		FileSize:     fileSize,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.qualityRepo.CreateQuality(quality)
	if err != nil {
		return err
	}

	for _, link := range links {
		// image URLs entered under a download tier are silently dropped
		if isImageURL(link.URL) {
			continue
		}

		title := link.Title
		if title == "" {
			title = "Download"
		}
		language := link.Language
		if language == "" {
			language = "en"
		}

		err = s.qualityRepo.CreateLink(&model.MovieQualityLink{
			ID:             uuid.New(),
			MovieQualityID: quality.ID,
			Title:          title,
			URL:            link.URL,
			Language:       language,
			Kind:           model.LinkKindDownload,
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// saveGallery persists the image entries under the sentinel "images" quality.
// Returns the number of image rows actually written.
func (s *ingestService) saveGallery(images []model.UploadImage, movieID uuid.UUID) int {
	if len(images) == 0 {
		return 0
	}

	now := time.Now()
	gallery := &model.MovieQuality{
		ID:           uuid.New(),
		MovieID:      movieID,
		Quality:      model.QualityImages,
		DownloadLink: "gallery",
		FileSize:     "N/A",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.qualityRepo.CreateQuality(gallery)
	if err != nil {
		logger.Errorf(err, "failed to save gallery quality for movie %s", movieID)
		return 0
	}

	saved := 0
	for _, image := range images {
		title := image.Title
		if title == "" {
			title = "Movie Image"
		}

		err = s.qualityRepo.CreateLink(&model.MovieQualityLink{
			ID:             uuid.New(),
			MovieQualityID: gallery.ID,
			Title:          title,
			URL:            image.URL,
			Language:       "en",
			Kind:           model.LinkKindImage,
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			logger.Errorf(err, "failed to save gallery image for movie %s", movieID)
			continue
		}
		saved++
	}
	return saved
}

// UpdateMovie updates the editable metadata of a movie.
func (s *ingestService) UpdateMovie(ctx context.Context, id uuid.UUID, req *model.UpdateMovieRequest) (*model.Movie, error) {
	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	movie.Title = req.Title
	movie.Overview = req.Overview
	movie.Rating = req.Rating
	if req.Status != "" {
		movie.Status = model.MovieStatus(req.Status)
	}
	if req.Category != "" {
		movie.Category = req.Category
	}
	if req.ReleaseDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("invalid release date: %w", err)
		}
		movie.ReleaseDate = &parsed
	}

	err = s.movieRepo.Update(movie)
	if err != nil {
		return nil, err
	}

	return movie, nil
}

// DeleteMovie removes a movie; quality and link rows cascade in storage.
func (s *ingestService) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		return err
	}
	if movie == nil {
		return ErrMovieNotFound
	}

	err = s.movieRepo.Delete(id)
	if err != nil {
		return err
	}

	logger.Infof("movie deleted: %s (ID: %s)", movie.Title, id)
	return nil
}

// ListMovies retrieves movies of every status for the admin table.
func (s *ingestService) ListMovies(ctx context.Context, page, pageSize int) (*model.MovieListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	movies, totalCount, err := s.movieRepo.ListAll(pageSize, offset)
	if err != nil {
		return nil, err
	}

	return &model.MovieListResponse{
		Movies:     movies,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Stats summarizes the catalog for the dashboard cards.
func (s *ingestService) Stats(ctx context.Context) (*model.CatalogStats, error) {
	counts, err := s.movieRepo.CountByStatus()
	if err != nil {
		return nil, err
	}

	pending, err := s.requestRepo.CountPending()
	if err != nil {
		return nil, err
	}

	stats := &model.CatalogStats{
		Published:       counts[model.StatusPublished],
		Drafts:          counts[model.StatusDraft],
		Archived:        counts[model.StatusArchived],
		PendingRequests: pending,
	}
	for _, count := range counts {
		stats.TotalMovies += count
	}

	return stats, nil
}

// usableLinks drops entries with empty URLs.
func usableLinks(links []model.UploadLink) []model.UploadLink {
	usable := make([]model.UploadLink, 0, len(links))
	for _, link := range links {
		if strings.TrimSpace(link.URL) != "" {
			usable = append(usable, link)
		}
	}
	return usable
}

func isImageURL(url string) bool {
	lowered := strings.ToLower(url)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lowered, ext) {
			return true
		}
	}
	return false
}
