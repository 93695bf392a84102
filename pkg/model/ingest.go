package model

import "github.com/google/uuid"

// UploadLink is one download-link entry the operator filled under a quality tier.
type UploadLink struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Language string `json:"language"`
}

// UploadImage is one gallery entry (title + URL) from the image section.
type UploadImage struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// MetadataSelection carries the TMDB candidate the operator picked. All
// fields are fallbacks only: manual form input always wins at submit time.
type MetadataSelection struct {
	TMDBID       int64   `json:"tmdb_id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"` // YYYY-MM-DD
	VoteAverage  float64 `json:"vote_average"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	GenreIDs     []int64 `json:"genre_ids"`
}

// UploadMovieRequest is the ingestion payload: manual form fields, the
// optional metadata prefill, per-tier download links and gallery images.
type UploadMovieRequest struct {
	Title         string                  `json:"title"`
	Category      string                  `json:"category"`
	Year          string                  `json:"year"`
	Rating        *float64                `json:"rating"`
	Overview      string                  `json:"overview"`
	FileSize      string                  `json:"file_size"`
	Metadata      *MetadataSelection      `json:"metadata"`
	DownloadLinks map[string][]UploadLink `json:"download_links"`
	Images        []UploadImage           `json:"images"`
}

// UploadSummary reports the outcome of one ingestion run. QualitiesSaved and
// ImagesSaved count only the sub-steps that actually committed.
type UploadSummary struct {
	MovieID        uuid.UUID `json:"movie_id"`
	Title          string    `json:"title"`
	QualitiesSaved int       `json:"qualities_saved"`
	ImagesSaved    int       `json:"images_saved"`
	Message        string    `json:"message"`
}
