package metadata

import (
	"context"
	"sync"

	"movie-portal/pkg/tmdb"
)

// MoviePreview bundles everything the upload form needs after the operator
// picks a search candidate.
type MoviePreview struct {
	Movie *tmdb.Movie       `json:"movie"`
	Cast  []tmdb.CastMember `json:"cast"`
	SEO   tmdb.SEOData      `json:"seo"`
}

// Service fronts the TMDB client for the admin upload form.
type Service interface {
	Search(ctx context.Context, query string) ([]tmdb.SearchResult, error)
	GetMoviePreview(ctx context.Context, movieID int64) (*MoviePreview, error)
	Popular(ctx context.Context) (*tmdb.SearchResponse, error)
}

type metadataService struct {
	client *tmdb.Client
}

// NewMetadataService creates a new metadata service instance.
func NewMetadataService(client *tmdb.Client) Service {
	return &metadataService{
		client: client,
	}
}

// Search returns candidate titles in upstream order.
func (s *metadataService) Search(ctx context.Context, query string) ([]tmdb.SearchResult, error) {
	return s.client.SearchMovies(ctx, query)
}

// GetMoviePreview fetches details and credits in parallel and derives the
// SEO block. Both fetches must succeed before the selection is usable.
func (s *metadataService) GetMoviePreview(ctx context.Context, movieID int64) (*MoviePreview, error) {
	var (
		wg         sync.WaitGroup
		movie      *tmdb.Movie
		credits    *tmdb.CreditsResponse
		detailsErr error
		creditsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		movie, detailsErr = s.client.GetMovieDetails(ctx, movieID)
	}()
	go func() {
		defer wg.Done()
		credits, creditsErr = s.client.GetMovieCredits(ctx, movieID)
	}()
	wg.Wait()

	if detailsErr != nil {
		return nil, detailsErr
	}
	if creditsErr != nil {
		return nil, creditsErr
	}

	return &MoviePreview{
		Movie: movie,
		Cast:  credits.Cast,
		SEO:   tmdb.GenerateSEOData(movie, credits.Cast),
	}, nil
}

// Popular returns the current popular titles page.
func (s *metadataService) Popular(ctx context.Context) (*tmdb.SearchResponse, error) {
	return s.client.GetPopularMovies(ctx)
}
