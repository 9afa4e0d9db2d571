package storygen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a children's story writer for adult language learners.

Rules:
- Write a tiny story of exactly 5 sentences.
- Every sentence has at most 5 words.
- Each sentence mixes English with the target language at the requested ratio. An 80:20 ratio means mostly English with a few target-language words; 0:100 means entirely in the target language.
- You may only use target-language words from the "allowed vocabulary" list. No exceptions. If a word you want is not on the list, rewrite the sentence without it.
- Words from the "new words" list are first exposures: use each at most once, in a sentence whose surrounding context makes its meaning guessable.
- Report every target-language lemma you used per sentence in target_words, and list the new words you actually used in new_lemmas.
- Provide a full-English gloss for every sentence.
- Write in the requested tone, around the requested theme. Keep it concrete and warm; no violence, no abstractions.`

// buildUserMessage constructs the user message from the request.
func buildUserMessage(req StoryRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target language: %s\n", req.Language)
	fmt.Fprintf(&b, "Mixing ratio (English:target): %d:%d\n", req.Stage.EnglishRatio, req.Stage.TargetRatio)
	fmt.Fprintf(&b, "Tone: %s\n", req.Tone)
	fmt.Fprintf(&b, "Theme: %s\n", req.Theme)

	b.WriteString("\nAllowed vocabulary (lemma = English):\n")
	for _, w := range req.Allocation.Known {
		fmt.Fprintf(&b, "- %s = %s\n", w.Lemma, w.Translation)
	}

	b.WriteString("\nNew words (first exposure, use gently):\n")
	if len(req.Allocation.NewWords) == 0 {
		b.WriteString("None\n")
	}
	for _, w := range req.Allocation.NewWords {
		fmt.Fprintf(&b, "- %s = %s\n", w.Lemma, w.Translation)
	}

	return b.String()
}
