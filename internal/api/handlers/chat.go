package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/airlog-fm/showrunner-api/internal/api/middleware"
	"github.com/airlog-fm/showrunner-api/internal/config"
	"github.com/airlog-fm/showrunner-api/internal/logger"
	"github.com/airlog-fm/showrunner-api/internal/metrics"
	"github.com/airlog-fm/showrunner-api/internal/observability"
	"github.com/airlog-fm/showrunner-api/internal/schedule"
	"github.com/gin-gonic/gin"
)

const maxMessagePreviewLength = 200

// ChatHandler serves the dashboard's chat box: general questions get a
// plain model reply, scheduling requests get routed through the generation
// pipeline.
type ChatHandler struct {
	service *schedule.Service
	metrics *metrics.SentryMetrics
	cfg     *config.Config
}

func NewChatHandler(cfg *config.Config, service *schedule.Service) *ChatHandler {
	return &ChatHandler{
		service: service,
		metrics: metrics.NewSentryMetrics(),
		cfg:     cfg,
	}
}

type ChatRequest struct {
	Message string      `json:"message" binding:"required"`
	Context ChatContext `json:"context"`
}

type ChatContext struct {
	Duration string `json:"duration"`
	Genre    string `json:"genre"`
	Energy   string `json:"energy"`
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ Chat: JSON binding error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": schedule.ErrEmptyInstructions.Error()})
		return
	}

	log.Printf("📨 Chat: Received message (length: %d)", len(req.Message))
	if len(req.Message) > 0 {
		previewLen := maxMessagePreviewLength
		if len(req.Message) < previewLen {
			previewLen = len(req.Message)
		}
		log.Printf("   Message preview: %s", req.Message[:previewLen])
	}

	if userID, ok := middleware.GetUserIDFromGateway(c); ok {
		log.Printf("   User: %s", userID)
	}

	if !schedule.IsSchedulingRequest(req.Message) {
		h.plainChat(c, req.Message)
		return
	}

	h.generateSchedule(c, req)
}

// Generate handles POST /api/v1/schedule/generate. Same pipeline as Chat,
// classifier bypassed: the generate button in the UI is always a schedule
// request.
func (h *ChatHandler) Generate(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.generateSchedule(c, req)
}

func (h *ChatHandler) plainChat(c *gin.Context, message string) {
	lfClient := observability.GetClient()
	trace := lfClient.StartTrace(c.Request.Context(), "dashboard-chat", map[string]interface{}{
		"request_id": c.GetString("request_id"),
	})
	defer trace.Finish()

	gen := trace.Generation("chat", nil)
	gen.Input(message)

	reply, usage := h.service.Chat(c.Request.Context(), message)

	gen.Output(reply)
	gen.RecordUsage(h.cfg.ChatModel, usage)
	gen.Finish()

	h.metrics.RecordTokenUsage(c.Request.Context(), h.cfg.ChatModel,
		usage.TotalTokens, usage.InputTokens, usage.OutputTokens)

	c.JSON(http.StatusOK, gin.H{"message": reply})
}

func (h *ChatHandler) generateSchedule(c *gin.Context, req ChatRequest) {
	startTime := time.Now()

	lfClient := observability.GetClient()
	trace := lfClient.StartTrace(c.Request.Context(), "schedule-generation", map[string]interface{}{
		"request_id": c.GetString("request_id"),
	})
	defer trace.Finish()

	gen := trace.Generation("schedule-generator", nil)
	gen.Input(req.Message)

	gensched, meta, err := h.service.GenerateSchedule(c.Request.Context(), schedule.Request{
		Instructions: req.Message,
		DurationHint: req.Context.Duration,
		GenreHint:    req.Context.Genre,
		EnergyHint:   req.Context.Energy,
	})
	if err != nil {
		// The only pipeline error is an empty request, rejected before I/O
		if errors.Is(err, schedule.ErrEmptyInstructions) {
			gen.SetLevel("WARNING")
			gen.Finish()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		gen.SetLevel("ERROR")
		gen.Output(err.Error())
		gen.Finish()
		logger.Error("Schedule generation failed", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	gen.Output(map[string]interface{}{
		"title":       gensched.Title,
		"items_count": len(gensched.Items),
		"degraded":    gensched.Degraded,
	})
	gen.RecordUsage(meta.Model, meta.Usage)
	gen.Metadata(map[string]interface{}{
		"provider": meta.Provider,
		"degraded": meta.Degraded,
	})
	gen.Finish()

	h.metrics.RecordTokenUsage(c.Request.Context(), meta.Model,
		meta.Usage.TotalTokens, meta.Usage.InputTokens, meta.Usage.OutputTokens)
	h.metrics.RecordGenerationDuration(c.Request.Context(), time.Since(startTime), meta.Degraded)

	logger.LogGenerationRequest(c.Request.Context(), meta.Model, meta.Duration, meta.Usage.Map(), logger.Fields{
		"items":    len(gensched.Items),
		"degraded": meta.Degraded,
	})
	log.Printf("✅ Chat: Schedule generated (%d items, total %s, degraded=%t)",
		len(gensched.Items), gensched.TotalDuration, gensched.Degraded)

	message := "Here's your schedule: " + gensched.Title
	if gensched.Degraded {
		message = "I put together a schedule from the library. " + gensched.Notes
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": c.GetString("request_id"),
		"message":    message,
		"type":       "schedule",
		"schedule":   gensched,
	})
}
