package storygen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fablingo/fablingo/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces a single story for the given request. It parses the
// structured output but runs no content rules; rule checks belong to
// GenerateValidated so that rule violations and generator failures stay
// distinct outcomes.
func (g *LLMGenerator) Generate(ctx context.Context, req StoryRequest) (*Story, error) {
	ctx = llm.WithPurpose(ctx, "story-gen")

	userMsg := buildUserMessage(req)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      StorySchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var story Story
	if err := json.Unmarshal(resp.Content, &story); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	return &story, nil
}
