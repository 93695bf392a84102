package user

import (
	"errors"
	"time"

	"movie-portal/pkg/model"
	userRepo "movie-portal/service-api/internal/repository/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidRole       = errors.New("invalid role")
)

// Service defines the user service interface
type Service interface {
	RegisterUser(req *model.RegisterRequest, role string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id uuid.UUID) (*model.User, error)
	ListUsers(page, pageSize int) ([]model.User, int, error)
	SetRole(userID uuid.UUID, role string) error
}

// userService provides user-related services.
type userService struct {
	userRepo userRepo.Repository
}

// NewUserService creates a new user service instance.
func NewUserService(userRepo userRepo.Repository) Service {
	return &userService{
		userRepo: userRepo,
	}
}

// RegisterUser registers a new user, assigning a user_roles row when the
// role is anything other than the default.
func (s *userService) RegisterUser(req *model.RegisterRequest, role string) (*model.User, error) {
	// check if user already exists
	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	// hash the password
	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	err = s.userRepo.Create(user)
	if err != nil {
		return nil, err
	}

	if role != model.RoleUser {
		err = s.userRepo.SetRole(user.ID, role)
		if err != nil {
			return nil, err
		}
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (s *userService) GetUserByEmail(email string) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListUsers retrieves users with their roles for the admin panel
func (s *userService) ListUsers(page, pageSize int) ([]model.User, int, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	return s.userRepo.ListAll(pageSize, (page-1)*pageSize)
}

// SetRole assigns a role to a user. Takes effect on their next login.
func (s *userService) SetRole(userID uuid.UUID, role string) error {
	switch role {
	case model.RoleUser, model.RoleModerator, model.RoleAdmin:
	default:
		return ErrInvalidRole
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	return s.userRepo.SetRole(userID, role)
}

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}
