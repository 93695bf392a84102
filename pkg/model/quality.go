package model

import (
	"time"

	"github.com/google/uuid"
)

// QualityImages is the sentinel quality label that carries gallery assets
// instead of download links.
const QualityImages = "images"

// QualityTiers are the fixed tiers offered by the upload form, in the order
// they are persisted.
var QualityTiers = []string{"4k", "1080p", "720p", "480p", "360p"}

// LinkKind discriminates download links from gallery images at write time,
// so read paths never have to sniff file extensions.
type LinkKind string

const (
	LinkKindDownload LinkKind = "download"
	LinkKindImage    LinkKind = "image"
)

type MovieQuality struct {
	ID           uuid.UUID          `json:"id" db:"id"`
	MovieID      uuid.UUID          `json:"movie_id" db:"movie_id"`
	Quality      string             `json:"quality" db:"quality"`
	DownloadLink string             `json:"download_link" db:"download_link"` // legacy single-link field, first link of the tier
	FileSize     string             `json:"file_size" db:"file_size"`
	MagnetLink   string             `json:"magnet_link,omitempty" db:"magnet_link"`
	IsActive     bool               `json:"is_active" db:"is_active"`
	CreatedAt    time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" db:"updated_at"`
	Links        []MovieQualityLink `json:"links,omitempty"`
}

type MovieQualityLink struct {
	ID             uuid.UUID `json:"id" db:"id"`
	MovieQualityID uuid.UUID `json:"movie_quality_id" db:"movie_quality_id"`
	Title          string    `json:"title" db:"title"`
	URL            string    `json:"url" db:"url"`
	Language       string    `json:"language" db:"language"`
	Kind           LinkKind  `json:"kind" db:"kind"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
