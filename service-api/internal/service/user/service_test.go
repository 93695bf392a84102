package user

import (
	"testing"

	"movie-portal/pkg/model"
	userRepo "movie-portal/service-api/internal/repository/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*model.User
	byID    map[uuid.UUID]*model.User
	roles   map[uuid.UUID]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*model.User),
		byID:    make(map[uuid.UUID]*model.User),
		roles:   make(map[uuid.UUID]string),
	}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*model.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetByID(id uuid.UUID) (*model.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetRole(userID uuid.UUID) (string, error) {
	if role, ok := f.roles[userID]; ok {
		return role, nil
	}
	return model.RoleUser, nil
}

func (f *fakeUserRepo) SetRole(userID uuid.UUID, role string) error {
	f.roles[userID] = role
	return nil
}

func (f *fakeUserRepo) ListAll(limit, offset int) ([]model.User, int, error) {
	users := make([]model.User, 0, len(f.byID))
	for _, user := range f.byID {
		users = append(users, *user)
	}
	return users, len(users), nil
}

func TestRegisterUserHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.RegisterUser(&model.RegisterRequest{
		Email:    "user@example.com",
		Password: "super-secret",
	}, model.RoleUser)
	require.NoError(t, err)

	assert.NotEqual(t, "super-secret", user.PasswordHash)
	assert.NoError(t, userRepo.VerifyPassword(user.PasswordHash, "super-secret"))
	assert.Error(t, userRepo.VerifyPassword(user.PasswordHash, "wrong-password"))

	// plain users get no user_roles row
	_, hasRole := repo.roles[user.ID]
	assert.False(t, hasRole)
}

func TestRegisterAdminAssignsRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.RegisterUser(&model.RegisterRequest{
		Email:    "admin@example.com",
		Password: "super-secret",
	}, model.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, model.RoleAdmin, repo.roles[user.ID])
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	req := &model.RegisterRequest{Email: "user@example.com", Password: "super-secret"}
	_, err := svc.RegisterUser(req, model.RoleUser)
	require.NoError(t, err)

	_, err = svc.RegisterUser(req, model.RoleUser)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestSetRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.RegisterUser(&model.RegisterRequest{
		Email:    "user@example.com",
		Password: "super-secret",
	}, model.RoleUser)
	require.NoError(t, err)

	err = svc.SetRole(user.ID, model.RoleModerator)
	require.NoError(t, err)
	assert.Equal(t, model.RoleModerator, repo.roles[user.ID])

	err = svc.SetRole(user.ID, "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	err = svc.SetRole(uuid.New(), model.RoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
