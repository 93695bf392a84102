package controller

import (
	"errors"
	"net/http"

	"movie-portal/pkg/logger"
	"movie-portal/pkg/model"
	featuredService "movie-portal/service-api/internal/service/featured"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FeaturedController manages featured-section placements - ADMIN ONLY
type FeaturedController struct {
	featuredService featuredService.Service
}

// NewFeaturedController creates a new featured controller
func NewFeaturedController(featuredSvc featuredService.Service) *FeaturedController {
	return &FeaturedController{
		featuredService: featuredSvc,
	}
}

// AddFeatured places a movie in a featured section
func (fc *FeaturedController) AddFeatured(c *gin.Context) {
	operatorID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req model.AddFeaturedRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error(err, "failed to bind featured request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	placement, err := fc.featuredService.Add(c.Request.Context(), &req, operatorID)
	if err != nil {
		if errors.Is(err, featuredService.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		logger.Error(err, "failed to add featured movie")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add featured movie"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "movie featured successfully",
		"featured": placement,
	})
}

// RemoveFeatured deletes a placement. Removing an id that is already gone
// still returns success.
func (fc *FeaturedController) RemoveFeatured(c *gin.Context) {
	placementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid featured ID"})
		return
	}

	err = fc.featuredService.Remove(c.Request.Context(), placementID)
	if err != nil {
		logger.Error(err, "failed to remove featured movie")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove featured movie"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "featured movie removed"})
}
