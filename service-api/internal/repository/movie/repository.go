package movie

import (
	"database/sql"
	"fmt"

	"movie-portal/pkg/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository defines the movie repository interface
type Repository interface {
	Create(movie *model.Movie) error
	GetByID(id uuid.UUID) (*model.Movie, error)
	ListPublished(category string, limit int) ([]model.Movie, error)
	ListAll(limit, offset int) ([]model.Movie, int, error)
	Update(movie *model.Movie) error
	Delete(id uuid.UUID) error
	IncrementViews(id uuid.UUID) error
	IncrementDownloads(id uuid.UUID) error
	CountByStatus() (map[model.MovieStatus]int, error)
}

// repository implements the movie repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new movie repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

const movieColumns = `id, title, overview, poster_path, backdrop_path, release_date, rating,
	category, language, genre_ids, tmdb_id, status, download_count, views_count,
	created_by, created_at, updated_at`

// Create inserts a new movie row. Status defaults to published when unset.
func (r *repository) Create(movie *model.Movie) error {
	if movie.Status == "" {
		movie.Status = model.StatusPublished
	}

	query := `
		INSERT INTO movies (id, title, overview, poster_path, backdrop_path, release_date,
			rating, category, language, genre_ids, tmdb_id, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.Exec(query,
		movie.ID, movie.Title, movie.Overview, movie.PosterPath, movie.BackdropPath,
		movie.ReleaseDate, movie.Rating, movie.Category, movie.Language,
		pq.Array(movie.GenreIDs), movie.TMDBID, movie.Status, movie.CreatedBy,
		movie.CreatedAt, movie.UpdatedAt)
	return err
}

// GetByID retrieves a movie by ID
func (r *repository) GetByID(id uuid.UUID) (*model.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies WHERE id = $1`, movieColumns)

	movie, err := scanMovie(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Movie not found
		}
		return nil, err
	}

	return movie, nil
}

// ListPublished retrieves published movies newest first, optionally filtered
// by category and capped at limit. Unpublished rows never leave this query.
func (r *repository) ListPublished(category string, limit int) ([]model.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies WHERE status = $1`, movieColumns)
	args := []interface{}{model.StatusPublished}

	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	return collectMovies(rows)
}

// ListAll retrieves movies of any status with pagination, for the admin panel.
func (r *repository) ListAll(limit, offset int) ([]model.Movie, int, error) {
	var totalCount int
	err := r.db.QueryRow("SELECT COUNT(*) FROM movies").Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get movies count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM movies
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, movieColumns)

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	movies, err := collectMovies(rows)
	if err != nil {
		return nil, 0, err
	}

	return movies, totalCount, nil
}

// Update updates the editable movie fields
func (r *repository) Update(movie *model.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, overview = $3, rating = $4, status = $5, category = $6,
			release_date = $7, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.Exec(query, movie.ID, movie.Title, movie.Overview,
		movie.Rating, movie.Status, movie.Category, movie.ReleaseDate)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("movie not found")
	}

	return nil
}

// Delete deletes a movie from the database. Quality and link rows go with it
// via the schema's ON DELETE CASCADE.
func (r *repository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec("DELETE FROM movies WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("movie not found")
	}

	return nil
}

// IncrementViews bumps the views counter for a movie
func (r *repository) IncrementViews(id uuid.UUID) error {
	_, err := r.db.Exec("UPDATE movies SET views_count = views_count + 1 WHERE id = $1", id)
	return err
}

// IncrementDownloads bumps the download counter for a movie
func (r *repository) IncrementDownloads(id uuid.UUID) error {
	_, err := r.db.Exec("UPDATE movies SET download_count = download_count + 1 WHERE id = $1", id)
	return err
}

// CountByStatus returns the number of movies per publication status
func (r *repository) CountByStatus() (map[model.MovieStatus]int, error) {
	rows, err := r.db.Query("SELECT status, COUNT(*) FROM movies GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("failed to count movies: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.MovieStatus]int)
	for rows.Next() {
		var status model.MovieStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMovie(row rowScanner) (*model.Movie, error) {
	movie := &model.Movie{}
	var genreIDs pq.Int64Array

	err := row.Scan(&movie.ID, &movie.Title, &movie.Overview, &movie.PosterPath,
		&movie.BackdropPath, &movie.ReleaseDate, &movie.Rating, &movie.Category,
		&movie.Language, &genreIDs, &movie.TMDBID, &movie.Status,
		&movie.DownloadCount, &movie.ViewsCount, &movie.CreatedBy,
		&movie.CreatedAt, &movie.UpdatedAt)
	if err != nil {
		return nil, err
	}

	movie.GenreIDs = []int64(genreIDs)
	return movie, nil
}

func collectMovies(rows *sql.Rows) ([]model.Movie, error) {
	var movies []model.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, *movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return movies, nil
}
