package exercise

import (
	"fmt"
	"strings"
)

// Validator checks a generated exercise against its spec.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g.
	// "blank-marker", "choice-set".
	Name() string

	// Validate checks the exercise and returns nil if it passes.
	Validate(e *Exercise, spec Spec) *ValidationError
}

// ValidationError describes why an exercise failed validation.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the standard validator chain, in order.
func DefaultValidators() []Validator {
	return []Validator{
		&PromptValidator{},
		&BlankMarkerValidator{},
		&ChoiceSetValidator{},
	}
}

// PromptValidator checks that the instruction text is present.
type PromptValidator struct{}

func (v *PromptValidator) Name() string { return "prompt" }

func (v *PromptValidator) Validate(e *Exercise, _ Spec) *ValidationError {
	if strings.TrimSpace(e.Prompt) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt is empty",
			Retryable: true,
		}
	}
	return nil
}

// BlankMarkerValidator checks that guided-recall text contains exactly
// one blank marker.
type BlankMarkerValidator struct{}

func (v *BlankMarkerValidator) Name() string { return "blank-marker" }

func (v *BlankMarkerValidator) Validate(e *Exercise, spec Spec) *ValidationError {
	if !spec.RequiresBlank {
		return nil
	}
	if n := strings.Count(e.Text, BlankMarker); n != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("text contains %d blank markers, want exactly 1", n),
			Retryable: true,
		}
	}
	return nil
}

// ChoiceSetValidator checks the choice count and that the answer is
// among the choices.
type ChoiceSetValidator struct{}

func (v *ChoiceSetValidator) Name() string { return "choice-set" }

func (v *ChoiceSetValidator) Validate(e *Exercise, spec Spec) *ValidationError {
	if spec.ChoiceCount == 0 {
		if spec.RequiresAnswer && strings.TrimSpace(e.Answer) == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "answer is empty",
				Retryable: true,
			}
		}
		return nil
	}

	if len(e.Choices) != spec.ChoiceCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("got %d choices, want exactly %d", len(e.Choices), spec.ChoiceCount),
			Retryable: true,
		}
	}

	found := false
	for _, c := range e.Choices {
		if strings.EqualFold(strings.TrimSpace(c), strings.TrimSpace(e.Answer)) {
			found = true
			break
		}
	}
	if !found {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer is not among the choices",
			Retryable: true,
		}
	}
	return nil
}
