package corpus

import "testing"

func TestBootstrap_Shape(t *testing.T) {
	p := NewStatic()

	for _, lang := range p.Languages() {
		words, err := p.Bootstrap(lang)
		if err != nil {
			t.Fatalf("%s: %v", lang, err)
		}
		if len(words) != BootstrapSize {
			t.Fatalf("%s: expected %d bootstrap words, got %d", lang, BootstrapSize, len(words))
		}

		// Five verbs, then five nouns, ranks 1-10 in order.
		for i, w := range words {
			wantPOS := "verb"
			if i >= 5 {
				wantPOS = "noun"
			}
			if w.PartOfSpeech != wantPOS {
				t.Errorf("%s: bootstrap[%d] %q is %q, want %q", lang, i, w.Lemma, w.PartOfSpeech, wantPOS)
			}
			if w.Rank != i+1 {
				t.Errorf("%s: bootstrap[%d] rank %d, want %d", lang, i, w.Rank, i+1)
			}
		}
	}
}

func TestBootstrap_DeterministicAcrossCalls(t *testing.T) {
	p := NewStatic()
	first, _ := p.Bootstrap("es")
	second, _ := p.Bootstrap("es")

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("bootstrap not deterministic at index %d", i)
		}
	}
}

func TestNextByFrequency_AscendingAndExcluding(t *testing.T) {
	p := NewStatic()

	exclude := map[string]bool{"hacer": true, "decir": true}
	got, err := p.NextByFrequency("es", exclude, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 words, got %d", len(got))
	}
	if got[0].Lemma != "poder" {
		t.Errorf("expected first non-excluded word poder, got %q", got[0].Lemma)
	}
	prev := 0
	for _, w := range got {
		if w.Rank <= prev {
			t.Errorf("ranks not strictly ascending: %d after %d", w.Rank, prev)
		}
		if w.Rank <= BootstrapSize {
			t.Errorf("bootstrap word %q leaked into frequency corpus", w.Lemma)
		}
		prev = w.Rank
	}
}

func TestNextByFrequency_ExhaustionReturnsShort(t *testing.T) {
	p := NewStatic()

	all, err := p.NextByFrequency("es", nil, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) == 0 || len(all) >= 1000 {
		t.Fatalf("expected short result on exhaustion, got %d", len(all))
	}

	// Excluding everything yields an empty, error-free result.
	exclude := make(map[string]bool)
	for _, w := range all {
		exclude[w.Lemma] = true
	}
	got, err := p.NextByFrequency("es", exclude, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d words", len(got))
	}
}

func TestUnsupportedLanguage(t *testing.T) {
	p := NewStatic()
	if _, err := p.Bootstrap("xx"); err == nil {
		t.Error("expected error for unsupported language")
	}
	if _, err := p.NextByFrequency("xx", nil, 5); err == nil {
		t.Error("expected error for unsupported language")
	}
}

func TestCorpora_UniqueLemmas(t *testing.T) {
	for _, table := range [][]Word{spanish, french} {
		seen := make(map[string]bool)
		for _, w := range table {
			if seen[w.Lemma] {
				t.Errorf("duplicate lemma %q", w.Lemma)
			}
			seen[w.Lemma] = true
		}
	}
}
