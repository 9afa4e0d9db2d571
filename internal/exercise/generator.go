package exercise

import (
	"context"

	"github.com/fablingo/fablingo/internal/stage"
	"github.com/fablingo/fablingo/internal/storygen"
)

// Request is the structural request for one exercise generation.
type Request struct {
	// Language is the target language code, e.g. "es".
	Language string

	// Stage selects the exercise type via SelectSpec.
	Stage stage.Config

	// Story is the just-served story the exercise follows.
	Story *storygen.Story

	// TargetLemmas is the allowed-vocabulary closure of the story, for
	// choosing blanks and fillers.
	TargetLemmas []string
}

// Generator produces exercises from a structural request. Output is
// untrusted until it passes GenerateValidated.
type Generator interface {
	// Generate produces a single exercise. An error means the
	// generator itself failed, never that a field rule was broken.
	Generate(ctx context.Context, req Request) (*Exercise, error)
}

// Result is the tagged outcome of the exercise repair loop.
type Result struct {
	Exercise   *Exercise
	Accepted   bool
	Attempts   int
	Violations []string
}

// Config controls the LLM generator and the repair loop.
type Config struct {
	Validators  []Validator
	MaxRetries  int
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators:  DefaultValidators(),
		MaxRetries:  2,
		MaxTokens:   512,
		Temperature: 0.7,
	}
}
