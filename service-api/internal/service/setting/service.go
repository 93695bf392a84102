package setting

import (
	"context"
	"time"

	"movie-portal/pkg/logger"
	"movie-portal/pkg/model"
	settingRepo "movie-portal/service-api/internal/repository/setting"

	"github.com/google/uuid"
)

// Service manages the api_settings table from the admin panel.
type Service interface {
	List(ctx context.Context) ([]model.APISetting, error)
	Upsert(ctx context.Context, req *model.UpsertSettingRequest, operatorID uuid.UUID) (*model.APISetting, error)
}

type settingService struct {
	settingRepo settingRepo.Repository
}

// NewSettingService creates a new setting service instance.
func NewSettingService(settingRepo settingRepo.Repository) Service {
	return &settingService{
		settingRepo: settingRepo,
	}
}

// List retrieves all settings.
func (s *settingService) List(ctx context.Context) ([]model.APISetting, error) {
	return s.settingRepo.List()
}

// Upsert creates or replaces a named setting. Key rotation takes effect on
// the next metadata call because values are never cached.
func (s *settingService) Upsert(ctx context.Context, req *model.UpsertSettingRequest, operatorID uuid.UUID) (*model.APISetting, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	setting := &model.APISetting{
		ID:          uuid.New(),
		KeyName:     req.KeyName,
		KeyValue:    req.KeyValue,
		Description: req.Description,
		IsActive:    isActive,
		CreatedBy:   &operatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.settingRepo.Upsert(setting)
	if err != nil {
		logger.Errorf(err, "failed to upsert setting %s", req.KeyName)
		return nil, err
	}

	return setting, nil
}
