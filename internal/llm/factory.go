package llm

import (
	"context"
	"fmt"

	"github.com/fablingo/fablingo/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with logging, retry, and rate-limit
// middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → rate limit → logging → base.
	// The limiter sits inside retry so every attempt, retries included,
	// consumes a token.
	logged := WithLogging(base, eventRepo)
	limited := WithRateLimit(logged, cfg.RequestsPerMinute)
	retried := WithRetry(limited, cfg.Retry)

	return retried, nil
}
