package model

import (
	"time"

	"github.com/google/uuid"
)

// Featured section slots on the landing page.
const (
	SectionPopular  = "popular"
	SectionTrending = "trending"
	SectionNew      = "new"
)

type FeaturedMovie struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	MovieID      uuid.UUID  `json:"movie_id" db:"movie_id"`
	SectionType  string     `json:"section_type" db:"section_type"`
	DisplayOrder int        `json:"display_order" db:"display_order"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	CreatedBy    *uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	Movie        *Movie     `json:"movie,omitempty"`
}

// AddFeaturedRequest represents the admin request to place a movie in a section.
type AddFeaturedRequest struct {
	MovieID      uuid.UUID `json:"movie_id" binding:"required"`
	SectionType  string    `json:"section_type"`
	DisplayOrder int       `json:"display_order"`
}

// FeaturedMovieView pairs a placement with its rendered movie.
type FeaturedMovieView struct {
	ID           uuid.UUID `json:"id"`
	SectionType  string    `json:"section_type"`
	DisplayOrder int       `json:"display_order"`
	Movie        MovieView `json:"movie"`
}
