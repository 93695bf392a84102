package helper

import (
	"database/sql"
	"errors"

	"movie-portal/pkg/config"
	"movie-portal/pkg/model"
	"movie-portal/service-api/internal/app"
	userRepo "movie-portal/service-api/internal/repository/user"
	userService "movie-portal/service-api/internal/service/user"
)

func NewAppServer(
	cfg *config.Config,
) *app.AppServer {
	return app.NewAppServer(cfg)
}

// SeedAdmin creates an admin account over the given connection. Seeding an
// email that is already registered is a no-op.
func SeedAdmin(db *sql.DB, email, password string) error {
	userSvc := userService.NewUserService(userRepo.NewRepository(db))

	_, err := userSvc.RegisterUser(&model.RegisterRequest{
		Email:    email,
		Password: password,
	}, model.RoleAdmin)
	if errors.Is(err, userService.ErrUserAlreadyExists) {
		return nil
	}
	return err
}
