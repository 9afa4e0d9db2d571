// Package stage maps a learner's mastered-word count to one of five
// fixed progression tiers. Each tier fixes the English-to-target
// language mixing ratio of generated stories and the exercise type
// that follows them.
package stage

// ExerciseType selects the post-story exercise shape for a tier.
type ExerciseType string

const (
	ExerciseComprehension         ExerciseType = "comprehension"
	ExerciseGuidedRecall          ExerciseType = "guided-recall"
	ExerciseConstrainedProduction ExerciseType = "constrained-production"
	ExerciseFullProduction        ExerciseType = "full-production"
)

// Config describes one progression tier. Derived, never persisted.
type Config struct {
	Stage      int
	Label      string
	MinMastery int

	// EnglishRatio and TargetRatio always sum to 100.
	EnglishRatio int
	TargetRatio  int

	Exercise ExerciseType
}

// tiers is ordered by ascending MinMastery. The first tier has
// MinMastery 0, which makes Resolve total over non-negative counts.
var tiers = []Config{
	{Stage: 1, Label: "foundation", MinMastery: 0, EnglishRatio: 80, TargetRatio: 20, Exercise: ExerciseComprehension},
	{Stage: 2, Label: "emerging", MinMastery: 30, EnglishRatio: 60, TargetRatio: 40, Exercise: ExerciseGuidedRecall},
	{Stage: 3, Label: "developing", MinMastery: 50, EnglishRatio: 40, TargetRatio: 60, Exercise: ExerciseGuidedRecall},
	{Stage: 4, Label: "advancing", MinMastery: 75, EnglishRatio: 20, TargetRatio: 80, Exercise: ExerciseConstrainedProduction},
	{Stage: 5, Label: "immersion", MinMastery: 150, EnglishRatio: 0, TargetRatio: 100, Exercise: ExerciseFullProduction},
}

// Resolve returns the tier for the given mastered-word count. It scans
// from the highest threshold downward and returns the first tier whose
// MinMastery is satisfied. Pure, total, no error conditions: negative
// input clamps to the first tier.
func Resolve(masteryCount int) Config {
	for i := len(tiers) - 1; i >= 0; i-- {
		if masteryCount >= tiers[i].MinMastery {
			return tiers[i]
		}
	}
	return tiers[0]
}

// All returns the tier table in ascending order, for display.
func All() []Config {
	out := make([]Config, len(tiers))
	copy(out, tiers)
	return out
}
