package storygen

import (
	"fmt"

	"github.com/fablingo/fablingo/internal/allocate"
	"github.com/fablingo/fablingo/internal/words"
)

// RuleSet is the verification oracle for one generation request. It is
// data, not prose: the same structure drives both the prompt and the
// validators, so the checks can never drift from the instructions.
type RuleSet struct {
	// SentenceCount is the exact number of sentences required.
	SentenceCount int

	// MaxWordsPerSentence caps the length of every sentence.
	MaxWordsPerSentence int

	// AllowedLemmas is the allowed-vocabulary closure: every
	// target-language word used must be a case-insensitive member.
	AllowedLemmas map[string]bool

	// MaxNewLemmas caps how many lemmas may be flagged as first
	// appearances.
	MaxNewLemmas int
}

// NewRuleSet builds the standard rule set over an allocation's closure.
func NewRuleSet(alloc allocate.Allocation) RuleSet {
	allowed := make(map[string]bool, len(alloc.TargetLemmas))
	for _, l := range alloc.TargetLemmas {
		allowed[words.NormalizeLemma(l)] = true
	}
	return RuleSet{
		SentenceCount:       5,
		MaxWordsPerSentence: 5,
		AllowedLemmas:       allowed,
		MaxNewLemmas:        allocate.MaxNewWords,
	}
}

// Validator checks a generated story against the rule set.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "sentence-count", "vocabulary-closure".
	Name() string

	// Validate checks the story and returns nil if it passes.
	// Returns a ValidationError if the story fails the check.
	Validate(s *Story, rules RuleSet) *ValidationError
}

// ValidationError describes why a story failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the standard validator chain, in order.
func DefaultValidators() []Validator {
	return []Validator{
		&SentenceCountValidator{},
		&SentenceLengthValidator{},
		&VocabularyClosureValidator{},
		&NoveltyCeilingValidator{},
	}
}

// SentenceCountValidator checks the exact sentence count.
type SentenceCountValidator struct{}

func (v *SentenceCountValidator) Name() string { return "sentence-count" }

func (v *SentenceCountValidator) Validate(s *Story, rules RuleSet) *ValidationError {
	if len(s.Sentences) != rules.SentenceCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("got %d sentences, want exactly %d", len(s.Sentences), rules.SentenceCount),
			Retryable: true,
		}
	}
	return nil
}

// SentenceLengthValidator checks the per-sentence word cap.
type SentenceLengthValidator struct{}

func (v *SentenceLengthValidator) Name() string { return "sentence-length" }

func (v *SentenceLengthValidator) Validate(s *Story, rules RuleSet) *ValidationError {
	for i, sent := range s.Sentences {
		if n := wordCount(sent.Text); n > rules.MaxWordsPerSentence {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("sentence %d has %d words, max %d", i+1, n, rules.MaxWordsPerSentence),
				Retryable: true,
			}
		}
	}
	return nil
}

// VocabularyClosureValidator checks that every target-language word
// used is in the allowed-vocabulary closure.
type VocabularyClosureValidator struct{}

func (v *VocabularyClosureValidator) Name() string { return "vocabulary-closure" }

func (v *VocabularyClosureValidator) Validate(s *Story, rules RuleSet) *ValidationError {
	for i, sent := range s.Sentences {
		for _, w := range sent.TargetWords {
			if !rules.AllowedLemmas[words.NormalizeLemma(w)] {
				return &ValidationError{
					Validator: v.Name(),
					Message:   fmt.Sprintf("sentence %d uses %q, not in the allowed vocabulary", i+1, w),
					Retryable: true,
				}
			}
		}
	}
	return nil
}

// NoveltyCeilingValidator checks the count of first-appearance lemmas.
type NoveltyCeilingValidator struct{}

func (v *NoveltyCeilingValidator) Name() string { return "novelty-ceiling" }

func (v *NoveltyCeilingValidator) Validate(s *Story, rules RuleSet) *ValidationError {
	if len(s.NewLemmas) > rules.MaxNewLemmas {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%d lemmas flagged as new, max %d", len(s.NewLemmas), rules.MaxNewLemmas),
			Retryable: true,
		}
	}
	return nil
}
