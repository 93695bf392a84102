package controller

import (
	"net/http"

	"movie-portal/pkg/logger"
	"movie-portal/pkg/model"
	settingService "movie-portal/service-api/internal/service/setting"

	"github.com/gin-gonic/gin"
)

// SettingsController manages API settings - ADMIN ONLY
type SettingsController struct {
	settingService settingService.Service
}

// NewSettingsController creates a new settings controller
func NewSettingsController(settingSvc settingService.Service) *SettingsController {
	return &SettingsController{
		settingService: settingSvc,
	}
}

// GetSettings lists all settings
func (sc *SettingsController) GetSettings(c *gin.Context) {
	settings, err := sc.settingService.List(c.Request.Context())
	if err != nil {
		logger.Error(err, "failed to list settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpsertSetting creates or replaces a named setting
func (sc *SettingsController) UpsertSetting(c *gin.Context) {
	operatorID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req model.UpsertSettingRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error(err, "failed to bind setting request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	setting, err := sc.settingService.Upsert(c.Request.Context(), &req, operatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save setting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "setting saved successfully",
		"setting": setting,
	})
}
