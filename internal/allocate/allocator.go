// Package allocate chooses the word pool available to a single story
// generation request. It enforces the product's core pedagogical
// invariant: a learner never sees an unfamiliar word in free-flowing
// content, and at most two words per story are first exposures.
package allocate

import (
	"math/rand/v2"

	"github.com/fablingo/fablingo/internal/words"
)

// MaxNewWords is the novelty budget: the ceiling on first-exposure
// words per generated story.
const MaxNewWords = 2

// Allocation is the vocabulary pool for one generation request.
type Allocation struct {
	// Known are words safe for free reuse (learning or mastered).
	Known []words.LearnerWord

	// NewWords are the first-exposure picks, at most MaxNewWords,
	// drawn only from words with status "introduced".
	NewWords []words.LearnerWord

	// TargetLemmas is the allowed-vocabulary closure: the normalized
	// lemmas of Known plus NewWords. Generated content may not use any
	// content-language word outside this set.
	TargetLemmas []string
}

// Empty reports whether the allocation holds no usable vocabulary.
// The allocator itself has no failure mode; the caller must refuse to
// generate from an empty allocation.
func (a Allocation) Empty() bool {
	return len(a.Known) == 0 && len(a.NewWords) == 0
}

// Allocate partitions the learner's words and draws the novelty picks.
//
// Words in learning or mastered status are eligible for free reuse.
// Words still in introduced status (seen in Phase 1, never used in
// content) are novelty candidates: min(2, candidates) of them are
// chosen uniformly without replacement using rng. The rng is injected
// so tests can seed it; production supplies a fresh seed per call.
func Allocate(known []words.LearnerWord, rng *rand.Rand) Allocation {
	var alloc Allocation
	var candidates []words.LearnerWord

	for _, w := range known {
		switch w.Status {
		case words.StatusLearning, words.StatusMastered:
			alloc.Known = append(alloc.Known, w)
		case words.StatusIntroduced:
			candidates = append(candidates, w)
		}
	}

	picks := MaxNewWords
	if len(candidates) < picks {
		picks = len(candidates)
	}
	if picks > 0 {
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		alloc.NewWords = candidates[:picks]
	}

	seen := make(map[string]bool)
	for _, w := range alloc.Known {
		lemma := words.NormalizeLemma(w.Lemma)
		if !seen[lemma] {
			seen[lemma] = true
			alloc.TargetLemmas = append(alloc.TargetLemmas, lemma)
		}
	}
	for _, w := range alloc.NewWords {
		lemma := words.NormalizeLemma(w.Lemma)
		if !seen[lemma] {
			seen[lemma] = true
			alloc.TargetLemmas = append(alloc.TargetLemmas, lemma)
		}
	}

	return alloc
}
