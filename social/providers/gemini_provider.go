package providers

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/ezdiharweb/agency-api/core/config"
	pkgError "github.com/ezdiharweb/agency-api/pkg/error"
)

// GeminiGateway is the adapter for the Gemini API.
type GeminiGateway struct {
	apiKey      string
	model       string
	temperature float64
}

// NewGeminiGateway creates a new Gemini gateway from the AI config.
func NewGeminiGateway(cfg config.AIConfig) *GeminiGateway {
	model := cfg.GeminiModel
	if model == "" {
		model = config.DefaultGeminiModel
	}
	return &GeminiGateway{
		apiKey:      cfg.GeminiKey,
		model:       model,
		temperature: cfg.Temperature,
	}
}

func (g *GeminiGateway) Name() string {
	return config.ProviderGemini
}

// Generate sends prompt as a single user turn with a JSON response MIME
// type and returns the raw response text. An empty response collapses
// to "{}" so downstream decoding always has something to parse.
func (g *GeminiGateway) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", pkgError.ConfigurationError("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", pkgError.ProviderError{Provider: "Gemini", Message: err.Error()}
	}

	temperature := float32(g.temperature)
	genConfig := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	contents := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	result, err := client.Models.GenerateContent(ctx, g.model, contents, genConfig)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", pkgError.ProviderError{
				Provider: "Gemini",
				Status:   apiErr.Code,
				Message:  apiErr.Message,
			}
		}
		return "", pkgError.ProviderError{Provider: "Gemini", Message: err.Error()}
	}

	logrus.WithFields(logrus.Fields{
		"model": g.model,
	}).Debug("[GEMINI] Generation completed")

	text := ""
	if result != nil {
		text = strings.TrimSpace(result.Text())
	}
	if text == "" {
		text = "{}"
	}
	return text, nil
}
