package controller

import (
	"net/http/httptest"
	"testing"

	"movie-portal/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallerIDReadsMiddlewareKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	// the auth middleware stores the id under auth.ContextUserID
	id := uuid.New()
	c.Set(auth.ContextUserID, id)

	got, ok := callerID(c)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestCallerIDUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := callerID(c)
	assert.False(t, ok)
}

func TestCallerIDWrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(auth.ContextUserID, "not-a-uuid")

	_, ok := callerID(c)
	assert.False(t, ok)
}
