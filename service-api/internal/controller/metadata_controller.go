package controller

import (
	"errors"
	"net/http"
	"strconv"

	"movie-portal/pkg/logger"
	"movie-portal/pkg/tmdb"
	metadataService "movie-portal/service-api/internal/service/metadata"

	"github.com/gin-gonic/gin"
)

// MetadataController proxies the external metadata API for the admin
// upload form - ADMIN ONLY
type MetadataController struct {
	metadataService metadataService.Service
}

// NewMetadataController creates a new metadata controller
func NewMetadataController(metadataSvc metadataService.Service) *MetadataController {
	return &MetadataController{
		metadataService: metadataSvc,
	}
}

// SearchMovies searches the metadata provider by title
func (mc *MetadataController) SearchMovies(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	results, err := mc.metadataService.Search(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, tmdb.ErrMetadataUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "metadata service unavailable"})
			return
		}
		logger.Error(err, "metadata search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "metadata search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetMoviePreview returns full metadata, cast and SEO data for one movie
func (mc *MetadataController) GetMoviePreview(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie ID"})
		return
	}

	preview, err := mc.metadataService.GetMoviePreview(c.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, tmdb.ErrMetadataUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "metadata service unavailable"})
			return
		}
		logger.Error(err, "failed to get movie preview")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve movie metadata"})
		return
	}

	c.JSON(http.StatusOK, preview)
}

// GetPopular returns the metadata provider's popular movies list
func (mc *MetadataController) GetPopular(c *gin.Context) {
	popular, err := mc.metadataService.Popular(c.Request.Context())
	if err != nil {
		if errors.Is(err, tmdb.ErrMetadataUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "metadata service unavailable"})
			return
		}
		logger.Error(err, "failed to get popular movies")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve popular movies"})
		return
	}

	c.JSON(http.StatusOK, popular)
}
