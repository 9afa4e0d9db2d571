package storygen

import (
	"strings"
	"testing"

	"github.com/fablingo/fablingo/internal/allocate"
	"github.com/fablingo/fablingo/internal/words"
)

func testRules() RuleSet {
	return NewRuleSet(allocate.Allocation{
		Known: []words.LearnerWord{
			{Lemma: "casa", Status: words.StatusLearning},
			{Lemma: "ser", Status: words.StatusMastered},
		},
		NewWords: []words.LearnerWord{
			{Lemma: "perro", Status: words.StatusIntroduced},
		},
		TargetLemmas: []string{"casa", "ser", "perro"},
	})
}

func validStory() *Story {
	return &Story{
		Title: "The casa",
		Tone:  "calm",
		Theme: "home",
		Sentences: []Sentence{
			{Text: "I see the casa.", Gloss: "I see the house.", TargetWords: []string{"casa"}},
			{Text: "The perro is small.", Gloss: "The dog is small.", TargetWords: []string{"perro"}},
			{Text: "It can ser happy.", Gloss: "It can be happy.", TargetWords: []string{"ser"}},
			{Text: "The casa is warm.", Gloss: "The house is warm.", TargetWords: []string{"casa"}},
			{Text: "We go home now.", Gloss: "We go home now.", TargetWords: nil},
		},
		NewLemmas: []string{"perro"},
	}
}

func TestNewRuleSet_Defaults(t *testing.T) {
	rules := testRules()
	if rules.SentenceCount != 5 || rules.MaxWordsPerSentence != 5 || rules.MaxNewLemmas != 2 {
		t.Fatalf("unexpected rule set: %+v", rules)
	}
	if !rules.AllowedLemmas["casa"] || !rules.AllowedLemmas["perro"] {
		t.Fatalf("closure missing lemmas: %v", rules.AllowedLemmas)
	}
}

func TestValidators_PassOnValidStory(t *testing.T) {
	rules := testRules()
	story := validStory()
	for _, v := range DefaultValidators() {
		if err := v.Validate(story, rules); err != nil {
			t.Fatalf("validator %q rejected a valid story: %v", v.Name(), err)
		}
	}
}

func TestSentenceCount_RejectsSixSentences(t *testing.T) {
	story := validStory()
	story.Sentences = append(story.Sentences, Sentence{Text: "One more."})

	v := &SentenceCountValidator{}
	err := v.Validate(story, testRules())
	if err == nil {
		t.Fatal("expected error for 6 sentences")
	}
	if !err.Retryable {
		t.Fatal("sentence count violations should be retryable")
	}
	if !strings.Contains(err.Error(), "sentence-count") {
		t.Fatalf("error should name the validator: %v", err)
	}
}

func TestSentenceLength_RejectsLongSentence(t *testing.T) {
	story := validStory()
	story.Sentences[2].Text = "This sentence has far too many words in it."

	v := &SentenceLengthValidator{}
	if err := v.Validate(story, testRules()); err == nil {
		t.Fatal("expected error for long sentence")
	}
}

func TestSentenceLength_PunctuationDoesNotCount(t *testing.T) {
	story := validStory()
	story.Sentences[0].Text = "I see the casa — !"

	v := &SentenceLengthValidator{}
	if err := v.Validate(story, testRules()); err != nil {
		t.Fatalf("punctuation tokens should not count as words: %v", err)
	}
}

func TestVocabularyClosure_RejectsOutsideWord(t *testing.T) {
	story := validStory()
	story.Sentences[1].TargetWords = []string{"gato"}

	v := &VocabularyClosureValidator{}
	err := v.Validate(story, testRules())
	if err == nil {
		t.Fatal("expected error for word outside the closure")
	}
	if !strings.Contains(err.Message, "gato") {
		t.Fatalf("error should name the offending word: %v", err)
	}
}

func TestVocabularyClosure_CaseInsensitive(t *testing.T) {
	story := validStory()
	story.Sentences[0].TargetWords = []string{"Casa"}

	v := &VocabularyClosureValidator{}
	if err := v.Validate(story, testRules()); err != nil {
		t.Fatalf("closure membership should be case-insensitive: %v", err)
	}
}

func TestNoveltyCeiling_RejectsThreeNewLemmas(t *testing.T) {
	story := validStory()
	story.NewLemmas = []string{"perro", "casa", "ser"}

	v := &NoveltyCeilingValidator{}
	if err := v.Validate(story, testRules()); err == nil {
		t.Fatal("expected error for 3 new lemmas")
	}
}

func TestWordCount(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"Hola.", 1},
		{"The perro is small.", 4},
		{"¿Dónde está la casa grande?", 5},
		{"— ¡ !", 0},
	}
	for _, tc := range cases {
		if got := wordCount(tc.text); got != tc.want {
			t.Errorf("wordCount(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}
