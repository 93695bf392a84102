package controller

import (
	"errors"
	"net/http"
	"strconv"

	"movie-portal/pkg/logger"
	"movie-portal/pkg/model"
	catalogService "movie-portal/service-api/internal/service/catalog"
	ingestService "movie-portal/service-api/internal/service/ingest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MovieController handles both the public catalog endpoints and the admin
// movie management endpoints.
type MovieController struct {
	catalogService catalogService.Service
	ingestService  ingestService.Service
}

// NewMovieController creates a new movie controller
func NewMovieController(catalogSvc catalogService.Service, ingestSvc ingestService.Service) *MovieController {
	return &MovieController{
		catalogService: catalogSvc,
		ingestService:  ingestSvc,
	}
}

// ListMovies handles the public browse page listing
func (mc *MovieController) ListMovies(c *gin.Context) {
	category := c.Query("category")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	movies, err := mc.catalogService.ListMovies(c.Request.Context(), category, limit)
	if err != nil {
		logger.Error(err, "failed to list movies")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve movies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"movies": movies})
}

// GetMovie handles the public detail page
func (mc *MovieController) GetMovie(c *gin.Context) {
	movieID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie ID"})
		return
	}

	movie, err := mc.catalogService.GetMovie(c.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, catalogService.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		logger.Error(err, "failed to get movie")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve movie"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"movie": movie})
}

// RegisterDownload increments a movie's download counter
func (mc *MovieController) RegisterDownload(c *gin.Context) {
	movieID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie ID"})
		return
	}

	err = mc.catalogService.RegisterDownload(c.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, catalogService.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		logger.Error(err, "failed to register download")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register download"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "download registered"})
}

// GetFeatured handles the public featured sections
func (mc *MovieController) GetFeatured(c *gin.Context) {
	sectionType := c.Query("section")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	featured, err := mc.catalogService.ListFeatured(c.Request.Context(), sectionType, limit)
	if err != nil {
		logger.Error(err, "failed to list featured movies")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve featured movies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"featured": featured})
}

// UploadMovie handles the multi-table movie upload - ADMIN ONLY
func (mc *MovieController) UploadMovie(c *gin.Context) {
	operatorID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req model.UploadMovieRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error(err, "failed to bind upload movie request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data"})
		return
	}

	summary, err := mc.ingestService.Upload(c.Request.Context(), &req, operatorID)
	if err != nil {
		if errors.Is(err, ingestService.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error(err, "failed to upload movie")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload movie"})
		return
	}

	logger.Infof("movie uploaded successfully: %s", summary.Title)
	c.JSON(http.StatusCreated, summary)
}

// GetMovies handles listing movies of every status - ADMIN ONLY
func (mc *MovieController) GetMovies(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	response, err := mc.ingestService.ListMovies(c.Request.Context(), page, pageSize)
	if err != nil {
		logger.Error(err, "failed to get movies list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve movies"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateMovie handles updating movie metadata - ADMIN ONLY
func (mc *MovieController) UpdateMovie(c *gin.Context) {
	movieID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie ID"})
		return
	}

	var req model.UpdateMovieRequest
	err = c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error(err, "failed to bind update movie request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data"})
		return
	}

	movie, err := mc.ingestService.UpdateMovie(c.Request.Context(), movieID, &req)
	if err != nil {
		if errors.Is(err, ingestService.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		logger.Error(err, "failed to update movie")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update movie"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "movie updated successfully",
		"movie":   movie,
	})
}

// DeleteMovie handles deleting a movie - ADMIN ONLY
func (mc *MovieController) DeleteMovie(c *gin.Context) {
	movieID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie ID"})
		return
	}

	err = mc.ingestService.DeleteMovie(c.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, ingestService.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		logger.Error(err, "failed to delete movie")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete movie"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "movie deleted successfully"})
}

// GetStats handles the admin dashboard summary - ADMIN ONLY
func (mc *MovieController) GetStats(c *gin.Context) {
	stats, err := mc.ingestService.Stats(c.Request.Context())
	if err != nil {
		logger.Error(err, "failed to get catalog stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
