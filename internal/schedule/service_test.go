package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/airlog-fm/showrunner-api/internal/llm"
	"github.com/airlog-fm/showrunner-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	text string
	err  error
	last *llm.CompletionRequest
}

func (p *stubProvider) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.last = req
	if p.err != nil {
		return nil, p.err
	}
	return &llm.CompletionResponse{
		Text:  p.text,
		Usage: llm.TokenUsage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}, nil
}

func (p *stubProvider) Name() string { return "stub" }

type stubCatalog struct {
	tracks []models.Track
}

func (c *stubCatalog) FetchCandidates(_ context.Context, _ int) []models.Track {
	return c.tracks
}

func newTestService(provider llm.Provider, tracks []models.Track) *Service {
	return NewService(provider, &stubCatalog{tracks: tracks},
		NewPromptBuilder(testDefaults()), "gpt-4o-mini", 5*time.Second, 1000)
}

func TestGenerateScheduleRejectsEmptyInstructions(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(provider, makeTracks(5))

	for _, instructions := range []string{"", "   ", "\n\t"} {
		gen, meta, err := svc.GenerateSchedule(context.Background(), Request{Instructions: instructions})
		require.ErrorIs(t, err, ErrEmptyInstructions)
		assert.Nil(t, gen)
		assert.Nil(t, meta)
	}

	// rejection happens before any model call
	assert.Nil(t, provider.last)
}

func TestGenerateScheduleHappyPath(t *testing.T) {
	provider := &stubProvider{text: `{
		"title": "Test Hour",
		"selectedSongs": [
			{"id": "1", "title": "Track 1", "artist": "Artist 1", "duration": "3:00", "reason": "opener"},
			{"id": "2", "title": "Track 2", "artist": "Artist 2", "duration": "4:00", "reason": "follow"}
		],
		"breaks": [{"afterTrack": 1, "duration": "1:00", "type": "Station ID"}]
	}`}
	svc := newTestService(provider, makeTracks(20))

	gen, meta, err := svc.GenerateSchedule(context.Background(), Request{Instructions: "one test hour"})
	require.NoError(t, err)

	assert.Equal(t, "Test Hour", gen.Title)
	assert.Len(t, gen.Items, 3)
	assert.False(t, gen.Degraded)

	assert.Equal(t, "gpt-4o-mini", meta.Model)
	assert.Equal(t, "stub", meta.Provider)
	assert.Equal(t, 150, meta.Usage.TotalTokens)
	assert.False(t, meta.Degraded)

	require.NotNil(t, provider.last)
	assert.Contains(t, provider.last.UserPrompt, "one test hour")
	assert.Contains(t, provider.last.SystemPrompt, "selectedSongs")
}

func TestGenerateScheduleModelFailureFallsBack(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	svc := newTestService(provider, makeTracks(20))

	gen, meta, err := svc.GenerateSchedule(context.Background(), Request{Instructions: "an hour of rock"})
	require.NoError(t, err)

	assert.True(t, gen.Degraded)
	assert.True(t, meta.Degraded)
	assert.Equal(t, "Library Mix", gen.Title)
	assert.Len(t, gen.Items, 10)
}

func TestGenerateScheduleUnusableOutputFallsBack(t *testing.T) {
	provider := &stubProvider{text: "I'd love to help but I can't."}
	svc := newTestService(provider, makeTracks(6))

	gen, _, err := svc.GenerateSchedule(context.Background(), Request{Instructions: "an hour of rock"})
	require.NoError(t, err)

	assert.True(t, gen.Degraded)
	assert.Len(t, gen.Items, 6)
}

func TestChat(t *testing.T) {
	provider := &stubProvider{text: "We carry jazz, rock, and classical."}
	svc := newTestService(provider, nil)

	reply, usage := svc.Chat(context.Background(), "what genres do we have?")
	assert.Equal(t, "We carry jazz, rock, and classical.", reply)
	assert.Equal(t, 150, usage.TotalTokens)
}

func TestChatFailureCannedReply(t *testing.T) {
	provider := &stubProvider{err: errors.New("boom")}
	svc := newTestService(provider, nil)

	reply, usage := svc.Chat(context.Background(), "hello")
	assert.Equal(t, chatFallbackReply, reply)
	assert.Zero(t, usage.TotalTokens)
}
