package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/2beens/ecochat/internal/telemetry/tracing"

	"google.golang.org/genai"
)

var ErrEmptyModelResponse = errors.New("empty model response")

const DefaultModel = "gemma-3-4b-it"

// GeminiClient generates text completions via the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(
	ctx context.Context,
	apiKey string,
	model string,
	httpClient *http.Client,
) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key not set")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("new genai client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ai.gemini.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyModelResponse
	}

	return text, nil
}
