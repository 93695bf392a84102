package model

import (
	"time"

	"github.com/google/uuid"
)

// Movie request workflow states. Only creation is exposed publicly; the
// admin panel moves requests to fulfilled or rejected.
const (
	RequestStatusPending   = "pending"
	RequestStatusFulfilled = "fulfilled"
	RequestStatusRejected  = "rejected"
)

type MovieRequest struct {
	ID             uuid.UUID `json:"id" db:"id"`
	MovieTitle     string    `json:"movie_title" db:"movie_title"`
	RequesterName  string    `json:"requester_name" db:"requester_name"`
	Email          string    `json:"email" db:"email"`
	Genre          string    `json:"genre" db:"genre"`
	Language       string    `json:"language" db:"language"`
	Quality        string    `json:"quality" db:"quality"`
	ReleaseYear    string    `json:"release_year" db:"release_year"`
	AdditionalInfo string    `json:"additional_info" db:"additional_info"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// CreateMovieRequestRequest is the public request-a-movie form payload.
type CreateMovieRequestRequest struct {
	MovieTitle     string `json:"movie_title" binding:"required"`
	RequesterName  string `json:"requester_name"`
	Email          string `json:"email"`
	Genre          string `json:"genre"`
	Language       string `json:"language"`
	Quality        string `json:"quality"`
	ReleaseYear    string `json:"release_year"`
	AdditionalInfo string `json:"additional_info"`
}

// UpdateRequestStatusRequest moves a request through the admin workflow.
type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
