package controller

import (
	"movie-portal/pkg/auth"
	authService "movie-portal/service-api/internal/service/auth"
	userService "movie-portal/service-api/internal/service/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ControllerProvider defines the auth controller interface
type ControllerProvider interface {
	RegisterAdmin(c *gin.Context)
	RegisterUser(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	GetProfile(c *gin.Context)
}

// controller implements the controller interface
type controller struct {
	authService authService.Service
	userService userService.Service
}

// NewController creates a new controller instance
func NewController(authService authService.Service, userService userService.Service) ControllerProvider {
	return &controller{
		authService: authService,
		userService: userService,
	}
}

// callerID reads the authenticated user's id set by the auth middleware.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(auth.ContextUserID)
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return userID, true
}
