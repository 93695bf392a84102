package controller

import (
	"net/http"
	"strconv"

	"movie-portal/pkg/logger"
	"movie-portal/pkg/model"
	userService "movie-portal/service-api/internal/service/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UsersController handles user administration - ADMIN ONLY
type UsersController struct {
	userService userService.Service
}

// NewUsersController creates a new users controller
func NewUsersController(userSvc userService.Service) *UsersController {
	return &UsersController{
		userService: userSvc,
	}
}

// GetUsers lists users with their roles
func (uc *UsersController) GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	users, totalCount, err := uc.userService.ListUsers(page, pageSize)
	if err != nil {
		logger.Error(err, "failed to list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve users"})
		return
	}

	profiles := make([]model.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].ToProfile())
	}

	c.JSON(http.StatusOK, gin.H{
		"users":       profiles,
		"total_count": totalCount,
	})
}

// GetUserRole returns a single user's role
func (uc *UsersController) GetUserRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	user, err := uc.userService.GetUserByID(userID)
	if err != nil {
		if err == userService.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.Error(err, "failed to get user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": user.ID,
		"role":    user.Role,
	})
}

// SetUserRole assigns a role to a user. The new role takes effect on the
// user's next login.
func (uc *UsersController) SetUserRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	var req model.SetRoleRequest
	err = c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error(err, "failed to bind role request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	err = uc.userService.SetRole(userID, req.Role)
	if err != nil {
		switch err {
		case userService.ErrInvalidRole:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		case userService.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			logger.Error(err, "failed to set user role")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update role"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "role updated successfully"})
}
