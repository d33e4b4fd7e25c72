package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/airlog-fm/showrunner-api/internal/catalog"
	"github.com/airlog-fm/showrunner-api/internal/config"
	"github.com/airlog-fm/showrunner-api/internal/metrics"
	"github.com/airlog-fm/showrunner-api/internal/schedule"
	"github.com/gin-gonic/gin"
)

// ScheduleHandler covers operations on an already-generated schedule: the
// dashboard submits the full schedule back with each mutation, so nothing
// here touches the database except Persist.
type ScheduleHandler struct {
	store   *catalog.Store
	metrics *metrics.SentryMetrics
	cfg     *config.Config
}

func NewScheduleHandler(cfg *config.Config, store *catalog.Store) *ScheduleHandler {
	return &ScheduleHandler{store: store, metrics: metrics.NewSentryMetrics(), cfg: cfg}
}

type ItemEditRequest struct {
	Schedule schedule.Generated `json:"schedule" binding:"required"`
	ItemID   string             `json:"itemId" binding:"required"`
	Title    *string            `json:"title"`
	Artist   *string            `json:"artist"`
	Duration *string            `json:"duration"`
	Notes    *string            `json:"notes"`
}

// UpdateItem handles PUT /api/v1/schedules/items. Edits apply to the
// submitted copy only and never cascade: changing an item's duration does
// not retime the items after it.
func (h *ScheduleHandler) UpdateItem(c *gin.Context) {
	var req ItemEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	found := false
	for i := range req.Schedule.Items {
		if req.Schedule.Items[i].ID != req.ItemID {
			continue
		}
		found = true
		if req.Title != nil {
			req.Schedule.Items[i].Title = *req.Title
		}
		if req.Artist != nil {
			req.Schedule.Items[i].Artist = *req.Artist
		}
		if req.Duration != nil {
			// Duration edits update the item only; downstream start/end
			// times are left as submitted, matching the dashboard's
			// no-cascade behavior.
			seconds := schedule.ParseDurationToSeconds(*req.Duration)
			req.Schedule.Items[i].Duration = schedule.FormatDurationDisplay(seconds)
			req.Schedule.Items[i].DurationSeconds = seconds
		}
		if req.Notes != nil {
			req.Schedule.Items[i].Notes = *req.Notes
		}
		break
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("item %s not found in schedule", req.ItemID)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": req.Schedule})
}

type ItemDeleteRequest struct {
	Schedule schedule.Generated `json:"schedule" binding:"required"`
	ItemID   string             `json:"itemId" binding:"required"`
}

// DeleteItem handles DELETE /api/v1/schedules/items. Removes the item from
// the submitted copy; remaining items keep their original times, so the
// timeline shows a gap until the schedule is regenerated.
func (h *ScheduleHandler) DeleteItem(c *gin.Context) {
	var req ItemDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := req.Schedule.Items[:0]
	found := false
	for _, item := range req.Schedule.Items {
		if item.ID == req.ItemID {
			found = true
			continue
		}
		items = append(items, item)
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("item %s not found in schedule", req.ItemID)})
		return
	}

	req.Schedule.Items = items
	c.JSON(http.StatusOK, gin.H{"schedule": req.Schedule})
}

type ExportRequest struct {
	Schedule schedule.Generated `json:"schedule" binding:"required"`
}

// Export handles POST /api/v1/schedules/export and returns the schedule as
// a downloadable JSON attachment.
func (h *ScheduleHandler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("schedule-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, req.Schedule)
}

// Persist handles POST /api/v1/schedules/persist. Database failures are the
// one hard-error surface of the schedule flow: no fallback, the caller gets
// a 500.
func (h *ScheduleHandler) Persist(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlist, err := h.store.PersistAsPlaylist(c.Request.Context(), &req.Schedule)
	if err != nil {
		log.Printf("❌ Persist: failed to save schedule %q: %v", req.Schedule.Title, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save schedule"})
		return
	}

	log.Printf("✅ Persist: saved schedule %q as playlist %d (%d entries)",
		playlist.Name, playlist.ID, len(playlist.Entries))

	h.metrics.RecordCustomMetric("playlist_saved", map[string]interface{}{
		"playlist_id": playlist.ID,
		"song_count":  playlist.SongCount,
	})

	c.JSON(http.StatusCreated, gin.H{
		"playlist_id": playlist.ID,
		"name":        playlist.Name,
		"song_count":  playlist.SongCount,
	})
}
