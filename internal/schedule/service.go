package schedule

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/airlog-fm/showrunner-api/internal/llm"
	"github.com/airlog-fm/showrunner-api/internal/models"
)

// ErrEmptyInstructions rejects a generation request before any I/O happens.
// The message doubles as the user-facing error string.
var ErrEmptyInstructions = errors.New("please describe what kind of show you want")

// CatalogSource supplies candidate tracks for prompt grounding. It never
// fails: a broken library read shows up as an empty slice.
type CatalogSource interface {
	FetchCandidates(ctx context.Context, limit int) []models.Track
}

const chatSystemPrompt = `You are a friendly assistant for a radio station's programming dashboard.
Answer questions about radio programming, music scheduling, and the station library.
Keep answers short and practical.`

const chatFallbackReply = "Sorry, I couldn't reach the assistant just now. Please try again in a moment."

// Service runs the generation pipeline: fetch candidates, assemble prompts,
// call the model, parse, build the timeline. One sequential chain per
// request; the model call and the catalog read are the only suspension
// points, everything after is pure computation.
type Service struct {
	provider   llm.Provider
	catalog    CatalogSource
	prompts    *PromptBuilder
	model      string
	timeout    time.Duration
	fetchLimit int
}

// GenerationMeta carries bookkeeping about one pipeline run for logging and
// tracing; it is not part of the schedule itself.
type GenerationMeta struct {
	Model    string
	Provider string
	Usage    llm.TokenUsage
	Degraded bool
	Duration time.Duration
}

func NewService(provider llm.Provider, catalog CatalogSource, prompts *PromptBuilder, model string, timeout time.Duration, fetchLimit int) *Service {
	return &Service{
		provider:   provider,
		catalog:    catalog,
		prompts:    prompts,
		model:      model,
		timeout:    timeout,
		fetchLimit: fetchLimit,
	}
}

// GenerateSchedule runs the full pipeline for one request. Apart from the
// empty-instructions rejection it always produces a schedule: model
// failures, timeouts, and unparsable output all resolve through the
// deterministic library fallback rather than an error.
func (s *Service) GenerateSchedule(ctx context.Context, req Request) (*Generated, *GenerationMeta, error) {
	if strings.TrimSpace(req.Instructions) == "" {
		return nil, nil, ErrEmptyInstructions
	}

	startTime := time.Now()
	meta := &GenerationMeta{
		Model:    s.model,
		Provider: s.provider.Name(),
	}

	candidates := s.catalog.FetchCandidates(ctx, s.fetchLimit)
	log.Printf("📚 Schedule generation: %d candidate tracks fetched", len(candidates))

	systemPrompt, userPrompt := s.prompts.BuildPrompts(req, candidates)

	sel := s.runModel(ctx, systemPrompt, userPrompt, candidates, meta)

	gen := Assemble(sel)
	meta.Degraded = gen.Degraded
	meta.Duration = time.Since(startTime)

	log.Printf("✅ Schedule assembled: %d items, total %s, degraded=%t",
		len(gen.Items), gen.TotalDuration, gen.Degraded)

	return gen, meta, nil
}

// runModel calls the provider under the configured timeout and normalizes
// whatever comes back. Every failure mode lands in the fallback selection.
func (s *Service) runModel(ctx context.Context, systemPrompt, userPrompt string, candidates []models.Track, meta *GenerationMeta) NormalizedSelection {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.provider.Complete(callCtx, &llm.CompletionRequest{
		Model:        s.model,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		log.Printf("⚠️  Model call failed, using library fallback: %v", err)
		return FallbackSelection(candidates)
	}

	meta.Usage = resp.Usage
	return ParseModelOutput(resp.Text, candidates)
}

// Chat answers a non-scheduling message. Model failures produce a canned
// reply, never an error: the chat box should always say something.
func (s *Service) Chat(ctx context.Context, message string) (string, llm.TokenUsage) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.provider.Complete(callCtx, &llm.CompletionRequest{
		Model:        s.model,
		SystemPrompt: chatSystemPrompt,
		UserPrompt:   message,
	})
	if err != nil {
		log.Printf("⚠️  Chat completion failed: %v", err)
		return chatFallbackReply, llm.TokenUsage{}
	}

	return resp.Text, resp.Usage
}
