package providers

import (
	"context"
	"fmt"

	"github.com/ezdiharweb/agency-api/core/config"
	pkgError "github.com/ezdiharweb/agency-api/pkg/error"
)

// systemPrompt is the persona sent to every provider alongside the
// weekly prompt. Providers are also instructed to answer in JSON mode,
// so the "valid JSON" reminder here is belt and suspenders.
const systemPrompt = "You are an expert social media strategist for businesses in the Middle East. " +
	"You create engaging, culturally relevant content in Arabic and English. Always return valid JSON."

// Gateway is a single text-in, JSON-text-out call against one AI
// provider. Implementations resolve credentials lazily so a missing
// key surfaces as a per-call error, not a startup failure.
type Gateway interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// NewFromConfig builds the gateway selected by cfg.Provider.
func NewFromConfig(cfg config.AIConfig) (Gateway, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIGateway(cfg), nil
	case config.ProviderGemini:
		return NewGeminiGateway(cfg), nil
	}
	return nil, pkgError.ConfigurationError(fmt.Sprintf("unsupported AI provider: %s", cfg.Provider))
}
