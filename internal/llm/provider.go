package llm

import "context"

// Provider is the interface to a generative text model. The scheduler
// treats the model as an opaque, fallible text function: system prompt plus
// user prompt in, free-form text out.
type Provider interface {
	// Complete runs one completion. Callers bound it with a context
	// deadline; a timeout surfaces as an error like any other failure.
	Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// CompletionRequest contains everything needed for one model call
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
}

// CompletionResponse contains the raw text result from the model
type CompletionResponse struct {
	Text  string     `json:"text"`
	Usage TokenUsage `json:"usage"`
}

// TokenUsage is the normalized token accounting across providers
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Map converts usage into the loose map shape the logger and Langfuse
// wrapper consume.
func (u TokenUsage) Map() map[string]interface{} {
	return map[string]interface{}{
		"input_tokens":  u.InputTokens,
		"output_tokens": u.OutputTokens,
		"total_tokens":  u.TotalTokens,
	}
}
