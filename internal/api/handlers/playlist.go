package handlers

import (
	"net/http"
	"strconv"

	"github.com/airlog-fm/showrunner-api/internal/catalog"
	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	store *catalog.Store
}

func NewPlaylistHandler(store *catalog.Store) *PlaylistHandler {
	return &PlaylistHandler{store: store}
}

// List handles GET /api/v1/playlists
func (h *PlaylistHandler) List(c *gin.Context) {
	playlists, err := h.store.ListPlaylists(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list playlists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"playlists": playlists,
		"count":     len(playlists),
	})
}

// Get handles GET /api/v1/playlists/:id
func (h *PlaylistHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid playlist id"})
		return
	}

	playlist, err := h.store.GetPlaylist(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "playlist not found"})
		return
	}

	c.JSON(http.StatusOK, playlist)
}
