package gemini

import (
	"context"

	"google.golang.org/genai"

	"github.com/examforge/examgen-backend/internal/llm"
)

// Client calls the Gemini API with a structured-output exam schema.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini client using the Gemini API backend.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{client: client, model: model}, nil
}

// GenerateExam submits the prompt with the exam response schema attached,
// so the model is constrained to emit schema-conforming JSON.
func (c *Client) GenerateExam(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   examSchema(),
		},
	)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "generate content call failed",
			Err:      err,
		}
	}
	if result == nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeEmptyResponse,
			Message:  "no response generated",
		}
	}

	text, err := result.Text()
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeEmptyResponse,
			Message:  "failed to extract response text",
			Err:      err,
		}
	}
	if text == "" {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeEmptyResponse,
			Message:  "empty response generated",
		}
	}
	return text, nil
}

// Name implements llm.Provider.
func (c *Client) Name() string { return "gemini" }
