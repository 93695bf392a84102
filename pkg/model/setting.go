package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingTMDBAPIKey names the api_settings row holding the metadata API key.
const SettingTMDBAPIKey = "TMDB_API_KEY"

type APISetting struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	KeyName     string     `json:"key_name" db:"key_name"`
	KeyValue    string     `json:"key_value" db:"key_value"`
	Description string     `json:"description" db:"description"`
	IsActive    bool       `json:"is_active" db:"is_active"`
	CreatedBy   *uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// UpsertSettingRequest creates or replaces a named setting.
type UpsertSettingRequest struct {
	KeyName     string `json:"key_name" binding:"required"`
	KeyValue    string `json:"key_value" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}
