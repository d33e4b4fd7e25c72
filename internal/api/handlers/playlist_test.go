package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetPlaylistInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewPlaylistHandler(nil)

	router := gin.New()
	router.GET("/api/v1/playlists/:id", handler.Get)

	for _, id := range []string{"abc", "-1", "1.5"} {
		req, _ := http.NewRequest("GET", "/api/v1/playlists/"+id, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", id)
	}
}
