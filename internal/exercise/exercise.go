// Package exercise maps progression tiers to post-story exercise
// shapes and generates exercise content under field-level rules.
package exercise

import (
	"github.com/fablingo/fablingo/internal/stage"
)

// BlankMarker is the placeholder a guided-recall exercise removes a
// word into.
const BlankMarker = "____"

// Exercise is one generated post-story exercise.
type Exercise struct {
	Type stage.ExerciseType `json:"type"`

	// Prompt is the instruction shown to the learner, in English.
	Prompt string `json:"prompt"`

	// Text is the exercise body. For guided-recall it contains exactly
	// one BlankMarker; for production types it may be empty.
	Text string `json:"text"`

	// Choices are the candidate answers for choice-based types.
	Choices []string `json:"choices"`

	// Answer is the correct choice, or a model solution for
	// production types.
	Answer string `json:"answer"`
}

// Spec describes the structural shape of one exercise type. It is a
// pure descriptor: SelectSpec involves no I/O and no randomness.
type Spec struct {
	Type         stage.ExerciseType
	Instructions string

	// ChoiceCount is the exact number of choices required, 0 for
	// free-production types.
	ChoiceCount int

	// RequiresBlank means Text must contain exactly one BlankMarker.
	RequiresBlank bool

	// RequiresAnswer means Answer must be non-empty and, when choices
	// are present, one of them.
	RequiresAnswer bool
}

// specs maps each exercise type to its fixed shape.
var specs = map[stage.ExerciseType]Spec{
	stage.ExerciseComprehension: {
		Type:           stage.ExerciseComprehension,
		Instructions:   "Ask one English comprehension question about the story. Offer 4 answer choices in English; exactly one is correct.",
		ChoiceCount:    4,
		RequiresAnswer: true,
	},
	stage.ExerciseGuidedRecall: {
		Type:           stage.ExerciseGuidedRecall,
		Instructions:   "Take one sentence from the story and remove exactly one known target-language word, replacing it with ____. Offer 4 candidate fillers including the removed word.",
		ChoiceCount:    4,
		RequiresBlank:  true,
		RequiresAnswer: true,
	},
	stage.ExerciseConstrainedProduction: {
		Type:           stage.ExerciseConstrainedProduction,
		Instructions:   "Ask the learner to write one short sentence in the target language using two named words from the story. Provide a model solution as the answer.",
		RequiresAnswer: true,
	},
	stage.ExerciseFullProduction: {
		Type:         stage.ExerciseFullProduction,
		Instructions: "Ask the learner an open question about the story, to be answered in the target language in one or two sentences.",
	},
}

// SelectSpec returns the exercise shape for the given tier. Pure
// lookup from the tier's exercise type.
func SelectSpec(s stage.Config) Spec {
	return specs[s.Exercise]
}
