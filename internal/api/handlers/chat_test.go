package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/airlog-fm/showrunner-api/internal/config"
	"github.com/airlog-fm/showrunner-api/internal/llm"
	"github.com/airlog-fm/showrunner-api/internal/models"
	"github.com/airlog-fm/showrunner-api/internal/schedule"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	text string
	err  error
}

func (p *stubProvider) Complete(_ context.Context, _ *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &llm.CompletionResponse{
		Text:  p.text,
		Usage: llm.TokenUsage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}, nil
}

func (p *stubProvider) Name() string { return "stub" }

type stubCatalog struct {
	tracks []models.Track
}

func (c *stubCatalog) FetchCandidates(_ context.Context, _ int) []models.Track {
	return c.tracks
}

func testTracks(n int) []models.Track {
	tracks := make([]models.Track, n)
	for i := range tracks {
		tracks[i] = models.Track{
			ID:     uint(i + 1),
			Title:  fmt.Sprintf("Track %d", i+1),
			Artist: fmt.Sprintf("Artist %d", i+1),
			Runs:   "3:00",
		}
	}
	return tracks
}

func setupChatRouter(provider llm.Provider, tracks []models.Track) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ChatModel:         "gpt-4o-mini",
		ModelTimeout:      5 * time.Second,
		CatalogFetchLimit: 1000,
		HintDefaults: config.HintDefaults{
			Duration: "not specified",
			Genre:    "Any",
			Energy:   "Mixed",
		},
	}

	prompts := schedule.NewPromptBuilder(cfg.HintDefaults)
	service := schedule.NewService(provider, &stubCatalog{tracks: tracks}, prompts,
		cfg.ChatModel, cfg.ModelTimeout, cfg.CatalogFetchLimit)
	handler := NewChatHandler(cfg, service)

	router := gin.New()
	router.POST("/api/v1/chat", handler.Chat)
	router.POST("/api/v1/schedule/generate", handler.Generate)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return doJSONRequest(t, router, "POST", path, body)
}

func TestChatSchedulingRequestReturnsSchedule(t *testing.T) {
	provider := &stubProvider{text: `{
		"title": "Drive Time",
		"selectedSongs": [
			{"id": "1", "title": "Track 1", "artist": "Artist 1", "duration": "3:00", "reason": "fits"}
		]
	}`}
	router := setupChatRouter(provider, testTracks(20))

	w := postJSON(t, router, "/api/v1/chat", ChatRequest{Message: "build me a playlist for drive time"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "schedule", response["type"])
	assert.Contains(t, response["message"], "Drive Time")

	sched, ok := response["schedule"].(map[string]interface{})
	require.True(t, ok, "response should have a schedule object")
	assert.Equal(t, "Drive Time", sched["title"])

	items, ok := sched["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)

	item := items[0].(map[string]interface{})
	assert.Equal(t, "song", item["type"])
	assert.Equal(t, "3:00", item["duration"])
	assert.Equal(t, "0:00", item["startTime"])
	assert.Equal(t, "3:00", item["endTime"])
	assert.Equal(t, float64(180), item["durationSeconds"])
}

func TestChatGeneralQuestionSkipsPipeline(t *testing.T) {
	provider := &stubProvider{text: "We mostly carry jazz and classic rock."}
	router := setupChatRouter(provider, testTracks(5))

	w := postJSON(t, router, "/api/v1/chat", ChatRequest{Message: "what genres do we carry?"})
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "We mostly carry jazz and classic rock.", response["message"])
	assert.NotContains(t, response, "schedule")
}

func TestChatMissingMessageRejected(t *testing.T) {
	router := setupChatRouter(&stubProvider{}, nil)

	w := postJSON(t, router, "/api/v1/chat", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// whitespace passes binding but is rejected before any model call
	w = postJSON(t, router, "/api/v1/chat", ChatRequest{Message: "  \n\t"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "please describe what kind of show you want")
}

func TestGenerateBypassesClassifier(t *testing.T) {
	provider := &stubProvider{text: `{
		"title": "No Keywords Here",
		"selectedSongs": [{"id": "1", "title": "Track 1", "artist": "Artist 1", "duration": "3:00"}]
	}`}
	router := setupChatRouter(provider, testTracks(5))

	// no scheduling keyword in the message; the generate endpoint runs the
	// pipeline anyway
	w := postJSON(t, router, "/api/v1/schedule/generate", ChatRequest{Message: "something upbeat"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "schedule", response["type"])
}

func TestGenerateWhitespaceInstructionsRejected(t *testing.T) {
	router := setupChatRouter(&stubProvider{}, testTracks(5))

	w := postJSON(t, router, "/api/v1/schedule/generate", ChatRequest{Message: "   "})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "please describe what kind of show you want", response["error"])
}

func TestChatModelFailureDegradedSchedule(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream timeout")}
	router := setupChatRouter(provider, testTracks(20))

	w := postJSON(t, router, "/api/v1/chat", ChatRequest{Message: "an hour of rock"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "schedule", response["type"])
	sched := response["schedule"].(map[string]interface{})
	assert.Equal(t, "Library Mix", sched["title"])
	assert.Equal(t, true, sched["degraded"])

	items := sched["items"].([]interface{})
	assert.Len(t, items, 10)
}

func TestChatHonorsContextHints(t *testing.T) {
	provider := &stubProvider{text: `{
		"title": "Hinted",
		"selectedSongs": [{"id": "1", "title": "Track 1", "artist": "Artist 1", "duration": "3:00"}]
	}`}
	router := setupChatRouter(provider, testTracks(5))

	w := postJSON(t, router, "/api/v1/chat", ChatRequest{
		Message: "a jazz show",
		Context: ChatContext{Duration: "2 hours", Genre: "Jazz", Energy: "Low"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
