package storygen

import (
	"strings"
	"unicode"
)

// Sentence is one sentence of a generated micro-story.
type Sentence struct {
	// Text is the sentence as shown to the learner, mixing English and
	// target-language words per the stage ratio.
	Text string `json:"text"`

	// Gloss is the full-English rendering of the sentence.
	Gloss string `json:"gloss"`

	// TargetWords lists the target-language lemmas used in this
	// sentence. The generator reports them; the validators hold it to
	// the allowed-vocabulary closure.
	TargetWords []string `json:"target_words"`
}

// Story is a parsed generation result, before or after validation.
type Story struct {
	Title     string     `json:"title"`
	Tone      string     `json:"tone"`
	Theme     string     `json:"theme"`
	Sentences []Sentence `json:"sentences"`

	// NewLemmas are the lemmas the generator flagged as first
	// appearances in content.
	NewLemmas []string `json:"new_lemmas"`
}

// Text renders the story body as plain text, one sentence per line.
func (s *Story) Text() string {
	lines := make([]string, len(s.Sentences))
	for i, sent := range s.Sentences {
		lines[i] = sent.Text
	}
	return strings.Join(lines, "\n")
}

// wordCount counts the words in a sentence. Tokens are split on
// whitespace; pure punctuation tokens don't count.
func wordCount(text string) int {
	n := 0
	for _, tok := range strings.Fields(text) {
		if strings.ContainsFunc(tok, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		}) {
			n++
		}
	}
	return n
}
