package controller

import (
	"errors"
	"net/http"
	"strconv"

	"movie-portal/pkg/logger"
	"movie-portal/pkg/model"
	requestService "movie-portal/service-api/internal/service/request"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestController handles the public request-a-movie form and the admin
// request workflow.
type RequestController struct {
	requestService requestService.Service
}

// NewRequestController creates a new request controller
func NewRequestController(requestSvc requestService.Service) *RequestController {
	return &RequestController{
		requestService: requestSvc,
	}
}

// CreateRequest handles a public movie request submission
func (rc *RequestController) CreateRequest(c *gin.Context) {
	var req model.CreateMovieRequestRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error(err, "failed to bind movie request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "movie title is required"})
		return
	}

	request, err := rc.requestService.Create(c.Request.Context(), &req)
	if err != nil {
		logger.Error(err, "failed to create movie request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "request submitted successfully",
		"request": request,
	})
}

// GetRequests lists movie requests - ADMIN ONLY
func (rc *RequestController) GetRequests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	requests, totalCount, err := rc.requestService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		logger.Error(err, "failed to list movie requests")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests":    requests,
		"total_count": totalCount,
	})
}

// UpdateRequestStatus moves a request to fulfilled or rejected - ADMIN ONLY
func (rc *RequestController) UpdateRequestStatus(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}

	var req model.UpdateRequestStatusRequest
	err = c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error(err, "failed to bind status update")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	err = rc.requestService.UpdateStatus(c.Request.Context(), requestID, req.Status)
	if err != nil {
		if errors.Is(err, requestService.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
			return
		}
		logger.Error(err, "failed to update request status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request updated successfully"})
}
