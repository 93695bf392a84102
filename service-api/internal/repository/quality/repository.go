package quality

import (
	"database/sql"
	"fmt"

	"movie-portal/pkg/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository defines the quality/link repository interface. Every insert
// commits independently: the ingestion workflow deliberately runs without a
// wrapping transaction and tracks partial failures itself.
type Repository interface {
	CreateQuality(quality *model.MovieQuality) error
	CreateLink(link *model.MovieQualityLink) error
	ListByMovie(movieID uuid.UUID) ([]model.MovieQuality, error)
	ListByMovies(movieIDs []uuid.UUID) (map[uuid.UUID][]model.MovieQuality, error)
}

// repository implements the quality repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new quality repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// CreateQuality inserts one quality tier row for a movie
func (r *repository) CreateQuality(quality *model.MovieQuality) error {
	query := `
		INSERT INTO movie_qualities (id, movie_id, quality, download_link, file_size,
			magnet_link, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		quality.ID, quality.MovieID, quality.Quality, quality.DownloadLink,
		quality.FileSize, quality.MagnetLink, quality.IsActive,
		quality.CreatedAt, quality.UpdatedAt)
	return err
}

// CreateLink inserts one link row under a quality tier
func (r *repository) CreateLink(link *model.MovieQualityLink) error {
	query := `
		INSERT INTO movie_quality_links (id, movie_quality_id, title, url, language,
			kind, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		link.ID, link.MovieQualityID, link.Title, link.URL, link.Language,
		link.Kind, link.IsActive, link.CreatedAt, link.UpdatedAt)
	return err
}

// ListByMovie retrieves the active quality tiers of a movie with their links
func (r *repository) ListByMovie(movieID uuid.UUID) ([]model.MovieQuality, error) {
	grouped, err := r.ListByMovies([]uuid.UUID{movieID})
	if err != nil {
		return nil, err
	}
	return grouped[movieID], nil
}

// ListByMovies retrieves active quality tiers for a set of movies, keyed by
// movie id, with their active links attached.
func (r *repository) ListByMovies(movieIDs []uuid.UUID) (map[uuid.UUID][]model.MovieQuality, error) {
	grouped := make(map[uuid.UUID][]model.MovieQuality)
	if len(movieIDs) == 0 {
		return grouped, nil
	}

	query := `
		SELECT id, movie_id, quality, download_link, file_size, magnet_link,
			is_active, created_at, updated_at
		FROM movie_qualities
		WHERE movie_id = ANY($1) AND is_active = true
		ORDER BY created_at ASC`

	rows, err := r.db.Query(query, pq.Array(movieIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query qualities: %w", err)
	}
	defer rows.Close()

	var qualityIDs []uuid.UUID
	byQualityID := make(map[uuid.UUID]*model.MovieQuality)
	order := make(map[uuid.UUID][]uuid.UUID) // movie id -> quality ids in row order

	for rows.Next() {
		var quality model.MovieQuality
		var magnetLink sql.NullString
		err := rows.Scan(&quality.ID, &quality.MovieID, &quality.Quality,
			&quality.DownloadLink, &quality.FileSize, &magnetLink,
			&quality.IsActive, &quality.CreatedAt, &quality.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quality: %w", err)
		}
		quality.MagnetLink = magnetLink.String

		qualityIDs = append(qualityIDs, quality.ID)
		byQualityID[quality.ID] = &quality
		order[quality.MovieID] = append(order[quality.MovieID], quality.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	err = r.attachLinks(qualityIDs, byQualityID)
	if err != nil {
		return nil, err
	}

	for movieID, ids := range order {
		for _, qualityID := range ids {
			grouped[movieID] = append(grouped[movieID], *byQualityID[qualityID])
		}
	}

	return grouped, nil
}

func (r *repository) attachLinks(qualityIDs []uuid.UUID, byQualityID map[uuid.UUID]*model.MovieQuality) error {
	if len(qualityIDs) == 0 {
		return nil
	}

	query := `
		SELECT id, movie_quality_id, title, url, language, kind, is_active,
			created_at, updated_at
		FROM movie_quality_links
		WHERE movie_quality_id = ANY($1) AND is_active = true
		ORDER BY created_at ASC`

	rows, err := r.db.Query(query, pq.Array(qualityIDs))
	if err != nil {
		return fmt.Errorf("failed to query quality links: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var link model.MovieQualityLink
		err := rows.Scan(&link.ID, &link.MovieQualityID, &link.Title, &link.URL,
			&link.Language, &link.Kind, &link.IsActive, &link.CreatedAt, &link.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to scan quality link: %w", err)
		}

		if quality, ok := byQualityID[link.MovieQualityID]; ok {
			quality.Links = append(quality.Links, link)
		}
	}

	return rows.Err()
}
