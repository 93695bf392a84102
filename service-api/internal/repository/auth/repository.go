package auth

import (
	"database/sql"
	"time"

	"movie-portal/pkg/model"

	"github.com/google/uuid"
)

// Repository defines the auth repository interface
type Repository interface {
	StoreRefreshToken(userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	GetRefreshToken(tokenHash string) (*model.Token, error)
	DeleteRefreshToken(tokenHash string) error
	DeleteAllUserTokens(userID uuid.UUID) error
}

// repository implements the auth repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new auth repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// StoreRefreshToken persists a refresh-token hash for a user
func (r *repository) StoreRefreshToken(userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	query := `
		INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query, uuid.New(), userID, tokenHash, expiresAt, time.Now())
	return err
}

// GetRefreshToken retrieves a stored refresh token by its hash
func (r *repository) GetRefreshToken(tokenHash string) (*model.Token, error) {
	token := &model.Token{}
	query := `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM refresh_tokens
		WHERE token_hash = $1`

	row := r.db.QueryRow(query, tokenHash)
	err := row.Scan(&token.ID, &token.UserID, &token.TokenHash, &token.ExpiresAt, &token.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // token not found
		}
		return nil, err
	}

	return token, nil
}

// DeleteRefreshToken removes a stored refresh token by its hash
func (r *repository) DeleteRefreshToken(tokenHash string) error {
	_, err := r.db.Exec("DELETE FROM refresh_tokens WHERE token_hash = $1", tokenHash)
	return err
}

// DeleteAllUserTokens removes every refresh token of a user
func (r *repository) DeleteAllUserTokens(userID uuid.UUID) error {
	_, err := r.db.Exec("DELETE FROM refresh_tokens WHERE user_id = $1", userID)
	return err
}
