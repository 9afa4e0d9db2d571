package stage

import "testing"

func TestResolve_TierBoundaries(t *testing.T) {
	cases := []struct {
		count   int
		stage   int
		english int
		target  int
		ex      ExerciseType
	}{
		{0, 1, 80, 20, ExerciseComprehension},
		{29, 1, 80, 20, ExerciseComprehension},
		{30, 2, 60, 40, ExerciseGuidedRecall},
		{49, 2, 60, 40, ExerciseGuidedRecall},
		{50, 3, 40, 60, ExerciseGuidedRecall},
		{74, 3, 40, 60, ExerciseGuidedRecall},
		{75, 4, 20, 80, ExerciseConstrainedProduction},
		{149, 4, 20, 80, ExerciseConstrainedProduction},
		{150, 5, 0, 100, ExerciseFullProduction},
		{10000, 5, 0, 100, ExerciseFullProduction},
	}

	for _, c := range cases {
		got := Resolve(c.count)
		if got.Stage != c.stage {
			t.Errorf("Resolve(%d): stage %d, want %d", c.count, got.Stage, c.stage)
		}
		if got.EnglishRatio != c.english || got.TargetRatio != c.target {
			t.Errorf("Resolve(%d): ratio %d:%d, want %d:%d",
				c.count, got.EnglishRatio, got.TargetRatio, c.english, c.target)
		}
		if got.Exercise != c.ex {
			t.Errorf("Resolve(%d): exercise %q, want %q", c.count, got.Exercise, c.ex)
		}
	}
}

func TestResolve_TotalAndContiguous(t *testing.T) {
	// Every non-negative count maps to exactly one tier, and the tier
	// sequence is non-decreasing with no gaps.
	prev := Resolve(0).Stage
	if prev != 1 {
		t.Fatalf("Resolve(0) must be stage 1, got %d", prev)
	}
	for n := 1; n <= 500; n++ {
		s := Resolve(n).Stage
		if s < prev || s > prev+1 {
			t.Fatalf("stage jumped from %d to %d at count %d", prev, s, n)
		}
		prev = s
	}
}

func TestResolve_RatiosSumTo100(t *testing.T) {
	for _, c := range All() {
		if c.EnglishRatio+c.TargetRatio != 100 {
			t.Errorf("tier %d: ratios sum to %d", c.Stage, c.EnglishRatio+c.TargetRatio)
		}
	}
}

func TestResolve_NegativeClampsToFirstTier(t *testing.T) {
	if got := Resolve(-1); got.Stage != 1 {
		t.Errorf("expected stage 1 for negative input, got %d", got.Stage)
	}
}
