package exercise

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fablingo/fablingo/internal/stage"
)

func TestSelectSpec_AllTiersCovered(t *testing.T) {
	for _, tier := range stage.All() {
		spec := SelectSpec(tier)
		if spec.Type != tier.Exercise {
			t.Fatalf("tier %d: got spec type %q, want %q", tier.Stage, spec.Type, tier.Exercise)
		}
		if spec.Instructions == "" {
			t.Fatalf("tier %d: spec has no instructions", tier.Stage)
		}
	}
}

func TestSelectSpec_GuidedRecallShape(t *testing.T) {
	spec := SelectSpec(stage.Resolve(30))
	if spec.Type != stage.ExerciseGuidedRecall {
		t.Fatalf("expected guided-recall at mastery 30, got %q", spec.Type)
	}
	if !spec.RequiresBlank || spec.ChoiceCount != 4 || !spec.RequiresAnswer {
		t.Fatalf("unexpected guided-recall shape: %+v", spec)
	}
}

func guidedRecallSpec() Spec {
	return specs[stage.ExerciseGuidedRecall]
}

func validGuidedRecall() *Exercise {
	return &Exercise{
		Type:    stage.ExerciseGuidedRecall,
		Prompt:  "Fill in the missing word.",
		Text:    "The ____ is warm.",
		Choices: []string{"casa", "perro", "agua", "ser"},
		Answer:  "casa",
	}
}

func TestValidators_PassOnValidExercise(t *testing.T) {
	ex := validGuidedRecall()
	for _, v := range DefaultValidators() {
		if err := v.Validate(ex, guidedRecallSpec()); err != nil {
			t.Fatalf("validator %q rejected a valid exercise: %v", v.Name(), err)
		}
	}
}

func TestBlankMarker_RejectsMissingBlank(t *testing.T) {
	ex := validGuidedRecall()
	ex.Text = "The casa is warm."

	v := &BlankMarkerValidator{}
	if err := v.Validate(ex, guidedRecallSpec()); err == nil {
		t.Fatal("expected error for missing blank marker")
	}
}

func TestBlankMarker_RejectsTwoBlanks(t *testing.T) {
	ex := validGuidedRecall()
	ex.Text = "The ____ is ____."

	v := &BlankMarkerValidator{}
	if err := v.Validate(ex, guidedRecallSpec()); err == nil {
		t.Fatal("expected error for two blank markers")
	}
}

func TestBlankMarker_SkippedWhenNotRequired(t *testing.T) {
	ex := &Exercise{Prompt: "What happened?", Choices: []string{"a", "b", "c", "d"}, Answer: "a"}

	v := &BlankMarkerValidator{}
	if err := v.Validate(ex, specs[stage.ExerciseComprehension]); err != nil {
		t.Fatalf("blank rule should not apply to comprehension: %v", err)
	}
}

func TestChoiceSet_RejectsWrongCount(t *testing.T) {
	ex := validGuidedRecall()
	ex.Choices = ex.Choices[:3]

	v := &ChoiceSetValidator{}
	if err := v.Validate(ex, guidedRecallSpec()); err == nil {
		t.Fatal("expected error for 3 choices")
	}
}

func TestChoiceSet_RejectsAnswerNotAmongChoices(t *testing.T) {
	ex := validGuidedRecall()
	ex.Answer = "gato"

	v := &ChoiceSetValidator{}
	if err := v.Validate(ex, guidedRecallSpec()); err == nil {
		t.Fatal("expected error for answer outside choices")
	}
}

func TestChoiceSet_AnswerMatchIsCaseInsensitive(t *testing.T) {
	ex := validGuidedRecall()
	ex.Answer = "Casa"

	v := &ChoiceSetValidator{}
	if err := v.Validate(ex, guidedRecallSpec()); err != nil {
		t.Fatalf("answer matching should be case-insensitive: %v", err)
	}
}

func TestChoiceSet_ProductionNeedsModelAnswer(t *testing.T) {
	ex := &Exercise{Prompt: "Write a sentence.", Answer: ""}

	v := &ChoiceSetValidator{}
	if err := v.Validate(ex, specs[stage.ExerciseConstrainedProduction]); err == nil {
		t.Fatal("expected error for missing model answer")
	}
}

// scriptedGenerator returns canned outcomes in order, repeating the
// last one once the script runs out.
type scriptedGenerator struct {
	exercises []*Exercise
	errs      []error
	calls     int
}

func (g *scriptedGenerator) Generate(_ context.Context, _ Request) (*Exercise, error) {
	i := g.calls
	if i >= len(g.exercises) {
		i = len(g.exercises) - 1
	}
	g.calls++
	return g.exercises[i], g.errs[i]
}

func recallRequest() Request {
	return Request{
		Language:     "es",
		Stage:        stage.Resolve(30),
		TargetLemmas: []string{"casa", "perro", "agua", "ser"},
	}
}

func TestGenerateValidated_AcceptsValid(t *testing.T) {
	gen := &scriptedGenerator{
		exercises: []*Exercise{validGuidedRecall()},
		errs:      []error{nil},
	}

	res, err := GenerateValidated(context.Background(), gen, recallRequest(), DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Accepted || res.Attempts != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestGenerateValidated_FailsOpen(t *testing.T) {
	broken := validGuidedRecall()
	broken.Text = "No blank here."

	gen := &scriptedGenerator{
		exercises: []*Exercise{broken},
		errs:      []error{nil},
	}

	res, err := GenerateValidated(context.Background(), gen, recallRequest(), DefaultConfig())
	if err != nil {
		t.Fatalf("expected fail-open result, got error: %v", err)
	}
	if res.Accepted {
		t.Fatal("degraded exercise must not be marked accepted")
	}
	if res.Attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", res.Attempts)
	}
	if len(res.Violations) == 0 || !strings.Contains(res.Violations[0], "blank-marker") {
		t.Fatalf("expected recorded violations, got: %v", res.Violations)
	}
}

func TestGenerateValidated_AllGeneratorErrors(t *testing.T) {
	gen := &scriptedGenerator{
		exercises: []*Exercise{nil},
		errs:      []error{errors.New("timeout")},
	}

	_, err := GenerateValidated(context.Background(), gen, recallRequest(), DefaultConfig())
	if err == nil {
		t.Fatal("expected error when no attempt produced parseable output")
	}
}
