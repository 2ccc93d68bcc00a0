package llm

import "context"

// Provider abstracts the generative-AI backend that produces exam content.
// Handlers and services depend on this interface, never on a vendor SDK.
type Provider interface {
	// GenerateExam submits the prompt and returns the raw model output,
	// expected to be a JSON document matching the exam schema.
	GenerateExam(ctx context.Context, prompt string) (string, error)
	// Name identifies the provider for logging.
	Name() string
}

// ProviderError represents an error from an LLM provider.
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Common error codes.
const (
	ErrCodeAPIKey        = "invalid_api_key"
	ErrCodeServiceDown   = "service_unavailable"
	ErrCodeEmptyResponse = "empty_response"
)
