package user

import (
	"database/sql"
	"fmt"

	"movie-portal/pkg/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Repository defines the user repository interface. Roles live in the
// separate user_roles table; a user without a row there is a plain "user".
type Repository interface {
	Create(user *model.User) error
	GetByEmail(email string) (*model.User, error)
	GetByID(id uuid.UUID) (*model.User, error)
	GetRole(userID uuid.UUID) (string, error)
	SetRole(userID uuid.UUID, role string) error
	ListAll(limit, offset int) ([]model.User, int, error)
}

// repository implements the user repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new user repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// Create creates a new user in the database
func (r *repository) Create(user *model.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, user.ID, user.Email, user.PasswordHash, user.CreatedAt)
	return err
}

// GetByEmail retrieves a user by email, role included
func (r *repository) GetByEmail(email string) (*model.User, error) {
	return r.getBy("u.email = $1", email)
}

// GetByID retrieves a user by ID, role included
func (r *repository) GetByID(id uuid.UUID) (*model.User, error) {
	return r.getBy("u.id = $1", id)
}

func (r *repository) getBy(condition string, arg interface{}) (*model.User, error) {
	user := &model.User{}
	query := fmt.Sprintf(`
		SELECT u.id, u.email, u.password_hash, COALESCE(ur.role, 'user'), u.created_at
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.id
		WHERE %s`, condition)

	row := r.db.QueryRow(query, arg)
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, err
	}

	return user, nil
}

// GetRole resolves the role of a user, defaulting to "user" when no
// user_roles row exists.
func (r *repository) GetRole(userID uuid.UUID) (string, error) {
	var role string
	err := r.db.QueryRow(
		"SELECT role FROM user_roles WHERE user_id = $1", userID).Scan(&role)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.RoleUser, nil
		}
		return "", err
	}
	return role, nil
}

// SetRole assigns a role to a user, replacing any previous assignment
func (r *repository) SetRole(userID uuid.UUID, role string) error {
	query := `
		INSERT INTO user_roles (id, user_id, role, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role`

	_, err := r.db.Exec(query, uuid.New(), userID, role)
	return err
}

// ListAll retrieves users with their roles, for the admin panel
func (r *repository) ListAll(limit, offset int) ([]model.User, int, error) {
	var totalCount int
	err := r.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get users count: %w", err)
	}

	query := `
		SELECT u.id, u.email, u.password_hash, COALESCE(ur.role, 'user'), u.created_at
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.id
		ORDER BY u.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		err := rows.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return users, totalCount, nil
}

// VerifyPassword verifies a password against its hash
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
