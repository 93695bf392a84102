package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-portal/pkg/config"
	"movie-portal/pkg/logger"
	"movie-portal/pkg/model"
	"movie-portal/pkg/tmdb"
	featuredRepo "movie-portal/service-api/internal/repository/featured"
	movieRepo "movie-portal/service-api/internal/repository/movie"
	qualityRepo "movie-portal/service-api/internal/repository/quality"

	"github.com/google/uuid"
)

var ErrMovieNotFound = errors.New("movie not found")

// Stock stills shown when a movie has no stored poster or backdrop.
const (
	posterPlaceholder   = "https://images.unsplash.com/photo-1489599134017-7aa99e9a3b8c?w=300&h=450&fit=crop"
	backdropPlaceholder = "https://images.unsplash.com/photo-1489599134017-7aa99e9a3b8c?w=800&h=450&fit=crop"
	defaultDuration     = "120 min"
)

// Service is the public read model: it reshapes stored rows into the view
// models the browse and detail pages render.
type Service interface {
	ListMovies(ctx context.Context, category string, limit int) ([]model.MovieView, error)
	GetMovie(ctx context.Context, id uuid.UUID) (*model.MovieDetailView, error)
	ListFeatured(ctx context.Context, sectionType string, limit int) ([]model.FeaturedMovieView, error)
	RegisterDownload(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	movieRepo    movieRepo.Repository
	qualityRepo  qualityRepo.Repository
	featuredRepo featuredRepo.Repository
	imageBaseURL string
}

// NewCatalogService creates a new catalog read service.
func NewCatalogService(
	cfg *config.TMDBConfig,
	movieRepo movieRepo.Repository,
	qualityRepo qualityRepo.Repository,
	featuredRepo featuredRepo.Repository,
) Service {
	return &catalogService{
		movieRepo:    movieRepo,
		qualityRepo:  qualityRepo,
		featuredRepo: featuredRepo,
		imageBaseURL: cfg.ImageBaseURL,
	}
}

// ListMovies returns published movies newest first as view models, each with
// its download tiers nested.
func (s *catalogService) ListMovies(ctx context.Context, category string, limit int) ([]model.MovieView, error) {
	movies, err := s.movieRepo.ListPublished(category, limit)
	if err != nil {
		logger.Error(err, "failed to list movies")
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(movies))
	for i := range movies {
		ids = append(ids, movies[i].ID)
	}
	qualitiesByMovie, err := s.qualityRepo.ListByMovies(ids)
	if err != nil {
		logger.Error(err, "failed to load qualities for movie listing")
		return nil, err
	}

	views := make([]model.MovieView, 0, len(movies))
	for i := range movies {
		view := s.toView(&movies[i])
		view.Qualities, _ = splitQualities(qualitiesByMovie[movies[i].ID])
		views = append(views, view)
	}
	return views, nil
}

// GetMovie returns the detail view of one published movie: download tiers,
// gallery and the derived display fields. Each fetch bumps the view counter.
func (s *catalogService) GetMovie(ctx context.Context, id uuid.UUID) (*model.MovieDetailView, error) {
	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movie == nil || movie.Status != model.StatusPublished {
		return nil, ErrMovieNotFound
	}

	qualities, err := s.qualityRepo.ListByMovie(id)
	if err != nil {
		return nil, err
	}

	tiers, gallery := splitQualities(qualities)
	detail := &model.MovieDetailView{
		MovieView: s.toView(movie),
		Qualities: tiers,
		Gallery:   gallery,
	}

	// view tracking is best effort, a failed bump never hides the movie
	err = s.movieRepo.IncrementViews(id)
	if err != nil {
		logger.Errorf(err, "failed to increment views for movie %s", id)
	}

	return detail, nil
}

// ListFeatured returns active placements of a section in display order, each
// joined with its movie and that movie's download tiers.
func (s *catalogService) ListFeatured(ctx context.Context, sectionType string, limit int) ([]model.FeaturedMovieView, error) {
	if sectionType == "" {
		sectionType = model.SectionPopular
	}

	featured, err := s.featuredRepo.ListBySection(sectionType, limit)
	if err != nil {
		logger.Errorf(err, "failed to list featured movies for section %s", sectionType)
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(featured))
	for _, placement := range featured {
		ids = append(ids, placement.MovieID)
	}
	qualitiesByMovie, err := s.qualityRepo.ListByMovies(ids)
	if err != nil {
		logger.Error(err, "failed to load qualities for featured listing")
		return nil, err
	}

	views := make([]model.FeaturedMovieView, 0, len(featured))
	for _, placement := range featured {
		movieView := s.toView(placement.Movie)
		movieView.Qualities, _ = splitQualities(qualitiesByMovie[placement.MovieID])
		views = append(views, model.FeaturedMovieView{
			ID:           placement.ID,
			SectionType:  placement.SectionType,
			DisplayOrder: placement.DisplayOrder,
			Movie:        movieView,
		})
	}
	return views, nil
}

// RegisterDownload bumps the download counter of a movie.
func (s *catalogService) RegisterDownload(ctx context.Context, id uuid.UUID) error {
	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		return err
	}
	if movie == nil || movie.Status != model.StatusPublished {
		return ErrMovieNotFound
	}

	return s.movieRepo.IncrementDownloads(id)
}

// splitQualities separates stored quality rows into download tiers and the
// image gallery. The images sentinel quality and image-kind links under any
// tier go to the gallery; everything else stays a download tier.
func splitQualities(qualities []model.MovieQuality) ([]model.QualityView, []model.GalleryImage) {
	tiers := []model.QualityView{}
	gallery := []model.GalleryImage{}

	for _, quality := range qualities {
		if quality.Quality == model.QualityImages {
			for _, link := range quality.Links {
				gallery = append(gallery, model.GalleryImage{
					Title: link.Title,
					URL:   link.URL,
				})
			}
			continue
		}

		view := model.QualityView{
			Quality:    quality.Quality,
			FileSize:   quality.FileSize,
			MagnetLink: quality.MagnetLink,
			Links:      []model.LinkView{},
		}
		for _, link := range quality.Links {
			if link.Kind == model.LinkKindImage {
				gallery = append(gallery, model.GalleryImage{
					Title: link.Title,
					URL:   link.URL,
				})
				continue
			}
			view.Links = append(view.Links, model.LinkView{
				Title:    link.Title,
				URL:      link.URL,
				Language: link.Language,
			})
		}
		tiers = append(tiers, view)
	}

	return tiers, gallery
}

// toView derives the rendered fields: year from the release date (current
// year when absent), genre names from the static map, image URLs composed
// from the CDN prefix with stock placeholders as fallback.
func (s *catalogService) toView(movie *model.Movie) model.MovieView {
	view := model.MovieView{
		ID:       movie.ID,
		Title:    movie.Title,
		Year:     time.Now().Year(),
		Rating:   movie.Rating,
		Genre:    model.GenreNames(movie.GenreIDs),
		Duration: defaultDuration,
		Poster:   posterPlaceholder,
		Backdrop: backdropPlaceholder,
		Overview: movie.Overview,
		Category: movie.Category,
		Status:   string(movie.Status),

		Qualities: []model.QualityView{},
	}

	if movie.ReleaseDate != nil {
		view.Year = movie.ReleaseDate.Year()
		view.ReleaseDate = movie.ReleaseDate.Format("2006-01-02")
	}
	if movie.PosterPath != "" {
		view.Poster = fmt.Sprintf("%s/%s%s", s.imageBaseURL, tmdb.CardSize, movie.PosterPath)
	}
	if movie.BackdropPath != "" {
		view.Backdrop = fmt.Sprintf("%s/%s%s", s.imageBaseURL, tmdb.BackdropSize, movie.BackdropPath)
	}

	return view
}
