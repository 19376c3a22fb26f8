package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezdiharweb/agency-api/core/config"
	pkgError "github.com/ezdiharweb/agency-api/pkg/error"
)

func TestNewFromConfig(t *testing.T) {
	gw, err := NewFromConfig(config.AIConfig{Provider: config.ProviderOpenAI})
	require.NoError(t, err)
	assert.Equal(t, "openai", gw.Name())

	gw, err = NewFromConfig(config.AIConfig{Provider: config.ProviderGemini})
	require.NoError(t, err)
	assert.Equal(t, "gemini", gw.Name())

	_, err = NewFromConfig(config.AIConfig{Provider: "claude"})
	require.Error(t, err)
	assert.IsType(t, pkgError.ConfigurationError(""), err)
}

func TestGenerateWithoutAPIKey(t *testing.T) {
	ctx := context.Background()

	_, err := NewOpenAIGateway(config.AIConfig{}).Generate(ctx, "prompt")
	require.Error(t, err)
	assert.Equal(t, pkgError.ConfigurationError("OPENAI_API_KEY is not set"), err)

	_, err = NewGeminiGateway(config.AIConfig{}).Generate(ctx, "prompt")
	require.Error(t, err)
	assert.Equal(t, pkgError.ConfigurationError("GEMINI_API_KEY is not set"), err)
}

func TestGatewayModelDefaults(t *testing.T) {
	o := NewOpenAIGateway(config.AIConfig{})
	assert.Equal(t, config.DefaultOpenAIModel, o.model)

	o = NewOpenAIGateway(config.AIConfig{OpenAIModel: "gpt-4o-mini"})
	assert.Equal(t, "gpt-4o-mini", o.model)

	g := NewGeminiGateway(config.AIConfig{})
	assert.Equal(t, config.DefaultGeminiModel, g.model)
}
