package exercise

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fablingo/fablingo/internal/llm"
)

const systemPrompt = `You write one short exercise for a language learner who just read a tiny bilingual story.

Rules:
- Follow the exercise instructions exactly. Do not invent extra structure.
- Only use target-language words that appear in the story's vocabulary list.
- When choices are requested, provide exactly 4, with exactly one correct.
- When a blank is requested, the text must contain exactly one ____ marker.
- Keep the prompt in plain English, short, and encouraging.`

// ExerciseSchema defines the JSON schema for LLM exercise responses.
var ExerciseSchema = &llm.Schema{
	Name:        "story-exercise",
	Description: "A single post-story exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "The instruction shown to the learner, in English",
			},
			"text": map[string]any{
				"type":        "string",
				"description": "The exercise body. Contains exactly one ____ when a blank is requested; may be empty for production exercises.",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 candidate answers when choices are requested, else an empty array",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct choice, or a model solution. Empty only for open production.",
			},
		},
		"required":             []any{"prompt", "text", "choices", "answer"},
		"additionalProperties": false,
	},
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces a single exercise for the given request. Field
// rules are checked by GenerateValidated, not here.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) (*Exercise, error) {
	ctx = llm.WithPurpose(ctx, "exercise-gen")

	spec := SelectSpec(req.Stage)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req, spec)},
		},
		Schema:      ExerciseSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var ex Exercise
	if err := json.Unmarshal(resp.Content, &ex); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	ex.Type = spec.Type

	return &ex, nil
}

// buildUserMessage constructs the user message from the request and spec.
func buildUserMessage(req Request, spec Spec) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target language: %s\n", req.Language)
	fmt.Fprintf(&b, "Exercise type: %s\n", spec.Type)
	fmt.Fprintf(&b, "Instructions: %s\n", spec.Instructions)

	b.WriteString("\nThe story:\n")
	if req.Story != nil {
		b.WriteString(req.Story.Text())
		b.WriteString("\n")
	}

	b.WriteString("\nStory vocabulary:\n")
	fmt.Fprintf(&b, "%s\n", strings.Join(req.TargetLemmas, ", "))

	return b.String()
}

// GenerateValidated runs the generate-validate-repair loop for
// exercises. It shares the story loop's failure-open policy: after
// retries are exhausted, a parseable-but-invalid exercise is served
// flagged rather than rejected.
func GenerateValidated(ctx context.Context, gen Generator, req Request, cfg Config) (*Result, error) {
	spec := SelectSpec(req.Stage)
	maxAttempts := cfg.MaxRetries + 1

	var lastEx *Exercise
	var lastViolations []string
	var lastErr error
	attempts := 0

	for range maxAttempts {
		if err := ctx.Err(); err != nil {
			break
		}
		attempts++

		ex, err := gen.Generate(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}
		lastEx = ex

		lastViolations = nil
		for _, v := range cfg.Validators {
			if verr := v.Validate(ex, spec); verr != nil {
				lastViolations = append(lastViolations, verr.Error())
			}
		}
		if len(lastViolations) == 0 {
			return &Result{Exercise: ex, Accepted: true, Attempts: attempts}, nil
		}
	}

	if lastEx != nil {
		return &Result{
			Exercise:   lastEx,
			Accepted:   false,
			Attempts:   attempts,
			Violations: lastViolations,
		}, nil
	}

	if lastErr == nil {
		lastErr = ctx.Err()
	}
	return nil, fmt.Errorf("all %d generation attempts failed: %w", attempts, lastErr)
}
