package featured

import (
	"database/sql"
	"fmt"

	"movie-portal/pkg/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository defines the featured-placement repository interface
type Repository interface {
	ListBySection(sectionType string, limit int) ([]model.FeaturedMovie, error)
	Add(featured *model.FeaturedMovie) error
	Remove(id uuid.UUID) error
}

// repository implements the featured repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new featured repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// ListBySection retrieves active placements for a section ordered by
// display_order ascending, each joined with its published movie.
func (r *repository) ListBySection(sectionType string, limit int) ([]model.FeaturedMovie, error) {
	query := `
		SELECT f.id, f.movie_id, f.section_type, f.display_order, f.is_active,
			f.created_by, f.created_at, f.updated_at,
			m.id, m.title, m.overview, m.poster_path, m.backdrop_path, m.release_date,
			m.rating, m.category, m.language, m.genre_ids, m.tmdb_id, m.status,
			m.download_count, m.views_count, m.created_by, m.created_at, m.updated_at
		FROM featured_movies f
		JOIN movies m ON m.id = f.movie_id
		WHERE f.section_type = $1 AND f.is_active = true AND m.status = $2
		ORDER BY f.display_order ASC`
	args := []interface{}{sectionType, model.StatusPublished}

	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query featured movies: %w", err)
	}
	defer rows.Close()

	var featured []model.FeaturedMovie
	for rows.Next() {
		var f model.FeaturedMovie
		var m model.Movie
		var genreIDs pq.Int64Array

		err := rows.Scan(&f.ID, &f.MovieID, &f.SectionType, &f.DisplayOrder,
			&f.IsActive, &f.CreatedBy, &f.CreatedAt, &f.UpdatedAt,
			&m.ID, &m.Title, &m.Overview, &m.PosterPath, &m.BackdropPath,
			&m.ReleaseDate, &m.Rating, &m.Category, &m.Language, &genreIDs,
			&m.TMDBID, &m.Status, &m.DownloadCount, &m.ViewsCount,
			&m.CreatedBy, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan featured movie: %w", err)
		}

		m.GenreIDs = []int64(genreIDs)
		f.Movie = &m
		featured = append(featured, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return featured, nil
}

// Add inserts one placement row. Nothing prevents the same movie appearing
// twice in a section; ordering is the operator's responsibility.
func (r *repository) Add(featured *model.FeaturedMovie) error {
	query := `
		INSERT INTO featured_movies (id, movie_id, section_type, display_order,
			is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		featured.ID, featured.MovieID, featured.SectionType, featured.DisplayOrder,
		featured.IsActive, featured.CreatedBy, featured.CreatedAt, featured.UpdatedAt)
	return err
}

// Remove deletes one placement row. Removing an id that is already gone is
// a no-op, so repeated removals are safe for callers.
func (r *repository) Remove(id uuid.UUID) error {
	_, err := r.db.Exec("DELETE FROM featured_movies WHERE id = $1", id)
	return err
}
