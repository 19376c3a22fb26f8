package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/sirupsen/logrus"

	"github.com/ezdiharweb/agency-api/core/config"
	pkgError "github.com/ezdiharweb/agency-api/pkg/error"
)

// OpenAIGateway is the adapter for the OpenAI chat completions API.
type OpenAIGateway struct {
	apiKey      string
	model       string
	temperature float64
}

// NewOpenAIGateway creates a new OpenAI gateway from the AI config.
func NewOpenAIGateway(cfg config.AIConfig) *OpenAIGateway {
	model := cfg.OpenAIModel
	if model == "" {
		model = config.DefaultOpenAIModel
	}
	return &OpenAIGateway{
		apiKey:      cfg.OpenAIKey,
		model:       model,
		temperature: cfg.Temperature,
	}
}

func (g *OpenAIGateway) Name() string {
	return config.ProviderOpenAI
}

// Generate sends prompt as a single-turn JSON-mode completion and
// returns the raw response text.
func (g *OpenAIGateway) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", pkgError.ConfigurationError("OPENAI_API_KEY is not set")
	}

	client := openai.NewClient(
		option.WithAPIKey(g.apiKey),
	)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(g.temperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
	}

	completion, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", pkgError.ProviderError{
				Provider: "OpenAI",
				Status:   apiErr.StatusCode,
				Message:  apiErr.Message,
			}
		}
		return "", pkgError.ProviderError{Provider: "OpenAI", Message: err.Error()}
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	logrus.WithFields(logrus.Fields{
		"model":         g.model,
		"input_tokens":  completion.Usage.PromptTokens,
		"output_tokens": completion.Usage.CompletionTokens,
	}).Debug("[OPENAI] Generation completed")

	content := completion.Choices[0].Message.Content
	if content == "" {
		content = "{}"
	}
	return content, nil
}
