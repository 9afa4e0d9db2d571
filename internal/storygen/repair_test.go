package storygen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fablingo/fablingo/internal/allocate"
	"github.com/fablingo/fablingo/internal/words"
)

// scriptedGenerator returns canned outcomes in order, repeating the
// last one once the script runs out.
type scriptedGenerator struct {
	stories []*Story
	errs    []error
	calls   int
}

func (g *scriptedGenerator) Generate(_ context.Context, _ StoryRequest) (*Story, error) {
	i := g.calls
	if i >= len(g.stories) {
		i = len(g.stories) - 1
	}
	g.calls++
	return g.stories[i], g.errs[i]
}

func sixSentenceStory() *Story {
	s := validStory()
	s.Sentences = append(s.Sentences, Sentence{Text: "One extra sentence here."})
	return s
}

func testRequest() StoryRequest {
	return StoryRequest{
		Language: "es",
		Allocation: allocate.Allocation{
			Known:        []words.LearnerWord{{Lemma: "casa", Status: words.StatusLearning}},
			TargetLemmas: []string{"casa", "ser", "perro"},
		},
		Tone:  "calm",
		Theme: "home",
	}
}

func loopConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxRetries = 2
	return cfg
}

func TestGenerateValidated_AcceptsValidFirstTry(t *testing.T) {
	gen := &scriptedGenerator{
		stories: []*Story{validStory()},
		errs:    []error{nil},
	}

	res, err := GenerateValidated(context.Background(), gen, testRequest(), testRules(), loopConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Accepted || res.Attempts != 1 || len(res.Violations) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if gen.calls != 1 {
		t.Fatalf("expected 1 generator call, got %d", gen.calls)
	}
}

func TestGenerateValidated_RepairsThenAccepts(t *testing.T) {
	gen := &scriptedGenerator{
		stories: []*Story{sixSentenceStory(), validStory()},
		errs:    []error{nil, nil},
	}

	res, err := GenerateValidated(context.Background(), gen, testRequest(), testRules(), loopConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Accepted || res.Attempts != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestGenerateValidated_FailsOpenOnPersistentViolation(t *testing.T) {
	// The generator returns a 6-sentence story on every attempt. After
	// retries are exhausted, the last output is accepted and flagged,
	// not rejected.
	gen := &scriptedGenerator{
		stories: []*Story{sixSentenceStory()},
		errs:    []error{nil},
	}

	res, err := GenerateValidated(context.Background(), gen, testRequest(), testRules(), loopConfig())
	if err != nil {
		t.Fatalf("expected fail-open result, got error: %v", err)
	}
	if res.Accepted {
		t.Fatal("degraded story must not be marked accepted")
	}
	if res.Attempts != 3 {
		t.Fatalf("expected 3 attempts (1 + 2 retries), got %d", res.Attempts)
	}
	if res.Story == nil || len(res.Story.Sentences) != 6 {
		t.Fatalf("expected the last output to be served: %+v", res.Story)
	}
	if len(res.Violations) == 0 || !strings.Contains(res.Violations[0], "sentence-count") {
		t.Fatalf("expected recorded violations, got: %v", res.Violations)
	}
}

func TestGenerateValidated_GeneratorErrorThenSuccess(t *testing.T) {
	gen := &scriptedGenerator{
		stories: []*Story{nil, validStory()},
		errs:    []error{errors.New("timeout"), nil},
	}

	res, err := GenerateValidated(context.Background(), gen, testRequest(), testRules(), loopConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Accepted || res.Attempts != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestGenerateValidated_AllGeneratorErrors(t *testing.T) {
	gen := &scriptedGenerator{
		stories: []*Story{nil},
		errs:    []error{errors.New("timeout")},
	}

	_, err := GenerateValidated(context.Background(), gen, testRequest(), testRules(), loopConfig())
	if err == nil {
		t.Fatal("expected error when no attempt produced parseable output")
	}
	if gen.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", gen.calls)
	}
}

func TestGenerateValidated_ViolationThenGeneratorError(t *testing.T) {
	// A parseable-but-invalid early attempt still fails open even when
	// later attempts error at the generator.
	gen := &scriptedGenerator{
		stories: []*Story{sixSentenceStory(), nil, nil},
		errs:    []error{nil, errors.New("timeout"), errors.New("timeout")},
	}

	res, err := GenerateValidated(context.Background(), gen, testRequest(), testRules(), loopConfig())
	if err != nil {
		t.Fatalf("expected fail-open result, got error: %v", err)
	}
	if res.Accepted || res.Story == nil {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestGenerateValidated_CanceledContext(t *testing.T) {
	gen := &scriptedGenerator{
		stories: []*Story{validStory()},
		errs:    []error{nil},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateValidated(ctx, gen, testRequest(), testRules(), loopConfig())
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	if gen.calls != 0 {
		t.Fatalf("generator should not run after cancel, got %d calls", gen.calls)
	}
}

func TestBuildUserMessage_ListsVocabulary(t *testing.T) {
	req := testRequest()
	req.Allocation.Known = []words.LearnerWord{
		{Lemma: "casa", Translation: "house"},
	}
	req.Allocation.NewWords = []words.LearnerWord{
		{Lemma: "perro", Translation: "dog"},
	}

	msg := buildUserMessage(req)
	for _, want := range []string{"casa = house", "perro = dog", "Tone: calm", "Theme: home"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}
