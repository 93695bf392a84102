package controller

import (
	"net/http"

	"movie-portal/pkg/logger"
	"movie-portal/pkg/model"
	userService "movie-portal/service-api/internal/service/user"

	"github.com/gin-gonic/gin"
)

// RegisterUser handles user registration
func (ctrl *controller) RegisterUser(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error(err, "failed to bind register request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	user, err := ctrl.authService.RegisterUser(&req)
	if err != nil {
		if err == userService.ErrUserAlreadyExists {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		logger.Error(err, "failed to register user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	logger.Infof("user registered successfully: %s", user.Email)
	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered successfully",
		"user":    user.ToProfile(),
	})
}

// RegisterAdmin handles admin registration
func (ctrl *controller) RegisterAdmin(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error(err, "failed to bind register request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	user, err := ctrl.authService.RegisterAdmin(&req)
	if err != nil {
		if err == userService.ErrUserAlreadyExists {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		logger.Error(err, "failed to register admin")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	logger.Infof("admin registered successfully: %s", user.Email)
	c.JSON(http.StatusCreated, gin.H{
		"message": "admin registered successfully",
		"user":    user.ToProfile(),
	})
}

// GetProfile returns the authenticated user's profile
func (ctrl *controller) GetProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	user, err := ctrl.userService.GetUserByID(userID)
	if err != nil {
		if err == userService.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.Error(err, "failed to get user profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.ToProfile()})
}
