package setting

import (
	"context"
	"database/sql"
	"fmt"

	"movie-portal/pkg/model"
)

// Repository defines the api_settings repository interface. GetValue is also
// the metadata client's settings provider: the value is fetched from storage
// on every call, never cached here.
type Repository interface {
	GetValue(ctx context.Context, keyName string) (string, error)
	List() ([]model.APISetting, error)
	Upsert(setting *model.APISetting) error
}

// repository implements the setting repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new setting repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// GetValue returns the active value for a named setting, or empty when the
// key is absent or inactive.
func (r *repository) GetValue(ctx context.Context, keyName string) (string, error) {
	var value sql.NullString
	query := `
		SELECT key_value FROM api_settings
		WHERE key_name = $1 AND is_active = true`

	err := r.db.QueryRowContext(ctx, query, keyName).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil // setting not configured
		}
		return "", fmt.Errorf("failed to fetch setting %q: %w", keyName, err)
	}

	return value.String, nil
}

// List retrieves all settings rows for the admin panel
func (r *repository) List() ([]model.APISetting, error) {
	query := `
		SELECT id, key_name, key_value, COALESCE(description, ''), is_active,
			created_by, created_at, updated_at
		FROM api_settings
		ORDER BY key_name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	var settings []model.APISetting
	for rows.Next() {
		var setting model.APISetting
		var value sql.NullString
		err := rows.Scan(&setting.ID, &setting.KeyName, &value, &setting.Description,
			&setting.IsActive, &setting.CreatedBy, &setting.CreatedAt, &setting.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		setting.KeyValue = value.String
		settings = append(settings, setting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return settings, nil
}

// Upsert creates or replaces a named setting
func (r *repository) Upsert(setting *model.APISetting) error {
	query := `
		INSERT INTO api_settings (id, key_name, key_value, description, is_active,
			created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (key_name) DO UPDATE
		SET key_value = EXCLUDED.key_value,
			description = EXCLUDED.description,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(query,
		setting.ID, setting.KeyName, setting.KeyValue, setting.Description,
		setting.IsActive, setting.CreatedBy, setting.CreatedAt, setting.UpdatedAt)
	return err
}
