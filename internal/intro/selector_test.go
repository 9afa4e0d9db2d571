package intro

import (
	"testing"

	"github.com/fablingo/fablingo/internal/corpus"
	"github.com/fablingo/fablingo/internal/words"
)

func knownWord(lemma string) words.LearnerWord {
	return words.LearnerWord{Lemma: lemma, Status: words.StatusIntroduced}
}

func TestSelectBatch_NewLearnerGetsBootstrapVerbsFirst(t *testing.T) {
	p := corpus.NewStatic()

	batch, err := SelectBatch(p, "es", nil, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != 5 {
		t.Fatalf("expected 5 words, got %d", len(batch))
	}
	for i, item := range batch {
		if item.PartOfSpeech != "verb" {
			t.Errorf("batch[%d] %q: expected verb, got %q", i, item.Lemma, item.PartOfSpeech)
		}
		if item.FrequencyRank != i+1 {
			t.Errorf("batch[%d]: rank %d, want %d", i, item.FrequencyRank, i+1)
		}
	}
}

func TestSelectBatch_BootstrapInvariance(t *testing.T) {
	p := corpus.NewStatic()

	// Two brand-new learners: first ten words must be identical and in
	// the same order.
	var first, second []Item
	for _, out := range []*[]Item{&first, &second} {
		var known []words.LearnerWord
		for range 2 {
			batch, err := SelectBatch(p, "es", known, 5)
			if err != nil {
				t.Fatal(err)
			}
			*out = append(*out, batch...)
			for _, item := range batch {
				known = append(known, knownWord(item.Lemma))
			}
		}
	}

	if len(first) != 10 || len(second) != 10 {
		t.Fatalf("expected 10 words each, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("bootstrap order differs at %d: %q vs %q", i, first[i].Lemma, second[i].Lemma)
		}
	}
}

func TestSelectBatch_OneMissingBootstrapWordReturnsShortBatch(t *testing.T) {
	p := corpus.NewStatic()

	bootstrap, _ := p.Bootstrap("es")
	var known []words.LearnerWord
	for _, w := range bootstrap[:9] { // rank 10 missing
		known = append(known, knownWord(w.Lemma))
	}

	batch, err := SelectBatch(p, "es", known, 5)
	if err != nil {
		t.Fatal(err)
	}
	// Exactly the one missing bootstrap word, not topped up from the
	// open corpus.
	if len(batch) != 1 {
		t.Fatalf("expected exactly 1 word, got %d", len(batch))
	}
	if batch[0].Lemma != bootstrap[9].Lemma {
		t.Errorf("expected %q, got %q", bootstrap[9].Lemma, batch[0].Lemma)
	}
}

func TestSelectBatch_AfterBootstrapFollowsFrequencyOrder(t *testing.T) {
	p := corpus.NewStatic()

	bootstrap, _ := p.Bootstrap("es")
	var known []words.LearnerWord
	for _, w := range bootstrap {
		known = append(known, knownWord(w.Lemma))
	}

	batch, err := SelectBatch(p, "es", known, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != 5 {
		t.Fatalf("expected 5 words, got %d", len(batch))
	}
	prev := corpus.BootstrapSize
	for _, item := range batch {
		if item.FrequencyRank <= prev {
			t.Errorf("rank %d not ascending after %d", item.FrequencyRank, prev)
		}
		prev = item.FrequencyRank
	}
}

func TestSelectBatch_KnownLemmaMatchIsCaseInsensitive(t *testing.T) {
	p := corpus.NewStatic()

	known := []words.LearnerWord{knownWord("SER")}
	batch, err := SelectBatch(p, "es", known, 5)
	if err != nil {
		t.Fatal(err)
	}
	for _, item := range batch {
		if item.Lemma == "ser" {
			t.Error("case-insensitively known lemma was re-introduced")
		}
	}
}

func TestSelectBatch_CorpusExhaustedReturnsEmpty(t *testing.T) {
	p := corpus.NewStatic()

	all, _ := p.NextByFrequency("es", nil, 1000)
	bootstrap, _ := p.Bootstrap("es")
	var known []words.LearnerWord
	for _, w := range bootstrap {
		known = append(known, knownWord(w.Lemma))
	}
	for _, w := range all {
		known = append(known, knownWord(w.Lemma))
	}

	batch, err := SelectBatch(p, "es", known, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != 0 {
		t.Errorf("expected empty batch on exhaustion, got %d", len(batch))
	}
}
