package request

import (
	"database/sql"
	"errors"
	"fmt"

	"movie-portal/pkg/model"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a status update targets a request id that
// does not exist.
var ErrNotFound = errors.New("request not found")

// Repository defines the movie-request repository interface
type Repository interface {
	Create(request *model.MovieRequest) error
	ListAll(limit, offset int) ([]model.MovieRequest, int, error)
	UpdateStatus(id uuid.UUID, status string) error
	CountPending() (int, error)
}

// repository implements the request repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new request repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// Create inserts one movie request with status pending
func (r *repository) Create(request *model.MovieRequest) error {
	query := `
		INSERT INTO movie_requests (id, movie_title, requester_name, email, genre,
			language, quality, release_year, additional_info, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(query,
		request.ID, request.MovieTitle, request.RequesterName, request.Email,
		request.Genre, request.Language, request.Quality, request.ReleaseYear,
		request.AdditionalInfo, request.Status, request.CreatedAt, request.UpdatedAt)
	return err
}

// ListAll retrieves movie requests newest first with pagination
func (r *repository) ListAll(limit, offset int) ([]model.MovieRequest, int, error) {
	var totalCount int
	err := r.db.QueryRow("SELECT COUNT(*) FROM movie_requests").Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get requests count: %w", err)
	}

	query := `
		SELECT id, movie_title, requester_name, email, genre, language, quality,
			release_year, additional_info, status, created_at, updated_at
		FROM movie_requests
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()

	var requests []model.MovieRequest
	for rows.Next() {
		var request model.MovieRequest
		err := rows.Scan(&request.ID, &request.MovieTitle, &request.RequesterName,
			&request.Email, &request.Genre, &request.Language, &request.Quality,
			&request.ReleaseYear, &request.AdditionalInfo, &request.Status,
			&request.CreatedAt, &request.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan request: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return requests, totalCount, nil
}

// UpdateStatus moves a request through the admin workflow
func (r *repository) UpdateStatus(id uuid.UUID, status string) error {
	result, err := r.db.Exec(
		"UPDATE movie_requests SET status = $2, updated_at = NOW() WHERE id = $1",
		id, status)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// CountPending returns the number of requests still awaiting review
func (r *repository) CountPending() (int, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM movie_requests WHERE status = $1",
		model.RequestStatusPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending requests: %w", err)
	}
	return count, nil
}
