package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/yungbote/goal-achiever-backend/internal/logger"
	"github.com/yungbote/goal-achiever-backend/internal/utils"
)

// NotConfiguredReply is returned verbatim when no API key is present so the
// rest of the pipeline can run (and degrade to fallbacks) without a network
// dependency.
const NotConfiguredReply = "AI service not configured: GEMINI_API_KEY is missing."

// AIClient is the single capability the generation pipeline consumes. Tests
// substitute it with a fake.
type AIClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	log    *logger.Logger
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, log *logger.Logger) (AIClient, error) {
	serviceLog := log.With("service", "GeminiClient")
	apiKey := utils.GetEnv("GEMINI_API_KEY", "", log)
	model := utils.GetEnv("GEMINI_MODEL", "gemini-3-flash-preview", log)
	if apiKey == "" {
		serviceLog.Warn("GEMINI_API_KEY is not set, generation calls will return a fixed notice")
		return &geminiClient{log: serviceLog, client: nil, model: model}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("Failed to create Gemini client: %w", err)
	}
	return &geminiClient{log: serviceLog, client: client, model: model}, nil
}

func (c *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return NotConfiguredReply, nil
	}
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		c.log.Warn("Gemini API call failed", "error", err)
		return "", fmt.Errorf("Gemini API call failed: %w", err)
	}
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("Gemini API returned an empty response")
	}
	return text, nil
}
