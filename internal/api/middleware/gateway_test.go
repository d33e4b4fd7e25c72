package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(auth gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(auth)
	router.GET("/probe", func(c *gin.Context) {
		id, _ := GetUserIDFromGateway(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return router
}

func TestGatewayAuthRequiresUserHeader(t *testing.T) {
	router := setupAuthRouter(GatewayAuth())

	req, _ := http.NewRequest("GET", "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGatewayAuthTrustsHeaders(t *testing.T) {
	router := setupAuthRouter(GatewayAuth())

	req, _ := http.NewRequest("GET", "/probe", nil)
	req.Header.Set("X-User-ID", "42")
	req.Header.Set("X-User-Email", "dj@station.fm")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"42"`)
}

func TestNoAuthAllowsAnonymous(t *testing.T) {
	router := setupAuthRouter(NoAuth())

	req, _ := http.NewRequest("GET", "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"anonymous"`)
}
