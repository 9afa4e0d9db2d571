package storygen

import (
	"context"

	"github.com/fablingo/fablingo/internal/allocate"
	"github.com/fablingo/fablingo/internal/stage"
)

// StoryRequest is the structural request for one story generation. The
// same request is re-sent unchanged on every repair attempt; the
// generator's non-determinism is the retry's only lever.
type StoryRequest struct {
	// Language is the target language code, e.g. "es".
	Language string

	// Stage fixes the English-to-target mixing ratio.
	Stage stage.Config

	// Allocation is the vocabulary pool the story may draw from.
	Allocation allocate.Allocation

	// Tone and Theme come from the rotation state.
	Tone  string
	Theme string
}

// Generator produces micro-stories from a structural request. The
// output is untrusted: callers must run it through GenerateValidated
// before serving it.
type Generator interface {
	// Generate produces a single story. An error means the generator
	// itself failed (timeout, malformed output, network); it never
	// means the story broke a content rule.
	Generate(ctx context.Context, req StoryRequest) (*Story, error)
}
