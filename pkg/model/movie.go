package model

import (
	"time"

	"github.com/google/uuid"
)

// MovieStatus defines the publication state of a catalog entry.
type MovieStatus string

const (
	StatusDraft     MovieStatus = "draft"
	StatusPublished MovieStatus = "published"
	StatusArchived  MovieStatus = "archived"
)

// Movie categories as used by the browse pages.
const (
	CategoryHollywood = "hollywood"
	CategoryBollywood = "bollywood"
	CategorySouth     = "south-movies"
	CategorySeries    = "series"
)

type Movie struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	Title         string         `json:"title" db:"title"`
	Overview      string         `json:"overview" db:"overview"`
	PosterPath    string         `json:"poster_path" db:"poster_path"`     // TMDB-relative path, composed with the image CDN prefix at read time
	BackdropPath  string         `json:"backdrop_path" db:"backdrop_path"` // same as PosterPath
	ReleaseDate   *time.Time     `json:"release_date" db:"release_date"`
	Rating        float64        `json:"rating" db:"rating"`
	Category      string         `json:"category" db:"category"`
	Language      string         `json:"language" db:"language"`
	GenreIDs      []int64        `json:"genre_ids" db:"genre_ids"`
	TMDBID        *int64         `json:"tmdb_id" db:"tmdb_id"`
	Status        MovieStatus    `json:"status" db:"status"`
	DownloadCount int64          `json:"download_count" db:"download_count"`
	ViewsCount    int64          `json:"views_count" db:"views_count"`
	CreatedBy     *uuid.UUID     `json:"created_by" db:"created_by"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
	Qualities     []MovieQuality `json:"qualities,omitempty"`
}

// UpdateMovieRequest carries the editable subset of a movie row.
type UpdateMovieRequest struct {
	Title       string  `json:"title" binding:"required"`
	Overview    string  `json:"overview"`
	Rating      float64 `json:"rating"`
	Status      string  `json:"status"`
	Category    string  `json:"category"`
	ReleaseDate string  `json:"release_date"` // YYYY-MM-DD
}

// MovieView is the shape the browse pages render: derived year, genre names
// and fully composed image URLs instead of raw columns.
type MovieView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Year        int       `json:"year"`
	Rating      float64   `json:"rating"`
	Genre       []string  `json:"genre"`
	Duration    string    `json:"duration"`
	Poster      string    `json:"poster"`
	Backdrop    string    `json:"backdrop,omitempty"`
	Overview    string    `json:"overview,omitempty"`
	ReleaseDate string    `json:"release_date,omitempty"`
	Category    string    `json:"category,omitempty"`
	Status      string    `json:"status,omitempty"`

	// Download tiers nested into every listing, as the browse cards need
	// them to render the quality badges.
	Qualities []QualityView `json:"qualities"`
}

// QualityView groups the download links of one quality tier.
type QualityView struct {
	Quality    string     `json:"quality"`
	FileSize   string     `json:"file_size"`
	MagnetLink string     `json:"magnet_link,omitempty"`
	Links      []LinkView `json:"links"`
}

type LinkView struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Language string `json:"language"`
}

// GalleryImage is one entry of the detail page screenshot gallery.
type GalleryImage struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// MovieDetailView is the movie page payload: the browse view model plus
// download tiers and the image gallery.
type MovieDetailView struct {
	MovieView
	Qualities []QualityView  `json:"qualities"`
	Gallery   []GalleryImage `json:"gallery"`
}

// MovieListResponse represents a paginated admin listing of movies
type MovieListResponse struct {
	Movies     []Movie `json:"movies"`
	TotalCount int     `json:"total_count"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
}

// CatalogStats summarizes the catalog for the admin dashboard cards.
type CatalogStats struct {
	TotalMovies     int `json:"total_movies"`
	Published       int `json:"published"`
	Drafts          int `json:"drafts"`
	Archived        int `json:"archived"`
	PendingRequests int `json:"pending_requests"`
}
