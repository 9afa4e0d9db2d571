package allocate

import (
	"math/rand/v2"
	"testing"

	"github.com/fablingo/fablingo/internal/words"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func wordWith(lemma string, status words.Status) words.LearnerWord {
	return words.LearnerWord{Lemma: lemma, Status: status}
}

func TestAllocate_NoveltyCeiling(t *testing.T) {
	known := []words.LearnerWord{
		wordWith("ser", words.StatusMastered),
		wordWith("tener", words.StatusLearning),
		wordWith("casa", words.StatusIntroduced),
		wordWith("agua", words.StatusIntroduced),
		wordWith("perro", words.StatusIntroduced),
		wordWith("gato", words.StatusIntroduced),
	}

	for seed := uint64(1); seed <= 50; seed++ {
		alloc := Allocate(known, testRand(seed))

		if len(alloc.NewWords) > MaxNewWords {
			t.Fatalf("seed %d: %d new words exceeds ceiling", seed, len(alloc.NewWords))
		}
		for _, w := range alloc.NewWords {
			if w.Status != words.StatusIntroduced {
				t.Fatalf("seed %d: new word %q has status %q", seed, w.Lemma, w.Status)
			}
		}
	}
}

func TestAllocate_PartitionsByStatus(t *testing.T) {
	known := []words.LearnerWord{
		wordWith("ser", words.StatusMastered),
		wordWith("tener", words.StatusLearning),
		wordWith("casa", words.StatusIntroduced),
	}

	alloc := Allocate(known, testRand(7))

	if len(alloc.Known) != 2 {
		t.Errorf("expected 2 eligible words, got %d", len(alloc.Known))
	}
	if len(alloc.NewWords) != 1 || alloc.NewWords[0].Lemma != "casa" {
		t.Errorf("expected the single introduced word as novelty pick, got %v", alloc.NewWords)
	}
}

func TestAllocate_TargetLemmasClosure(t *testing.T) {
	known := []words.LearnerWord{
		wordWith("Ser", words.StatusMastered),
		wordWith("tener", words.StatusLearning),
		wordWith("casa", words.StatusIntroduced),
	}

	alloc := Allocate(known, testRand(3))

	want := map[string]bool{"ser": true, "tener": true, "casa": true}
	if len(alloc.TargetLemmas) != len(want) {
		t.Fatalf("expected %d target lemmas, got %d", len(want), len(alloc.TargetLemmas))
	}
	for _, l := range alloc.TargetLemmas {
		if !want[l] {
			t.Errorf("unexpected target lemma %q", l)
		}
	}
}

func TestAllocate_DeterministicWithSeed(t *testing.T) {
	known := []words.LearnerWord{
		wordWith("a", words.StatusIntroduced),
		wordWith("b", words.StatusIntroduced),
		wordWith("c", words.StatusIntroduced),
		wordWith("d", words.StatusIntroduced),
	}

	first := Allocate(known, testRand(42))
	second := Allocate(known, testRand(42))

	if len(first.NewWords) != 2 || len(second.NewWords) != 2 {
		t.Fatal("expected 2 novelty picks each")
	}
	for i := range first.NewWords {
		if first.NewWords[i].Lemma != second.NewWords[i].Lemma {
			t.Errorf("same seed produced different picks at %d", i)
		}
	}
}

func TestAllocate_PicksVaryAcrossSeeds(t *testing.T) {
	known := []words.LearnerWord{
		wordWith("a", words.StatusIntroduced),
		wordWith("b", words.StatusIntroduced),
		wordWith("c", words.StatusIntroduced),
		wordWith("d", words.StatusIntroduced),
		wordWith("e", words.StatusIntroduced),
		wordWith("f", words.StatusIntroduced),
	}

	seen := make(map[string]bool)
	for seed := uint64(1); seed <= 30; seed++ {
		alloc := Allocate(known, testRand(seed))
		for _, w := range alloc.NewWords {
			seen[w.Lemma] = true
		}
	}
	if len(seen) < 4 {
		t.Errorf("uniform selection should cover most candidates, saw only %d", len(seen))
	}
}

func TestAllocate_EmptyInput(t *testing.T) {
	alloc := Allocate(nil, testRand(1))
	if !alloc.Empty() {
		t.Error("expected empty allocation")
	}
	if len(alloc.TargetLemmas) != 0 {
		t.Error("expected no target lemmas")
	}
}
