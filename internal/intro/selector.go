// Package intro chooses the next batch of unseen words to teach.
// Introduction is Phase 1 of the learning loop: a word must be
// introduced here before it may ever appear in generated content.
package intro

import (
	"fmt"

	"github.com/fablingo/fablingo/internal/corpus"
	"github.com/fablingo/fablingo/internal/words"
)

// DefaultBatchSize is the usual number of words per introduction session.
const DefaultBatchSize = 5

// Item is a word selected for introduction, ready to be inserted as a
// LearnerWord with status "introduced".
type Item struct {
	Word          string
	Lemma         string
	Translation   string
	PartOfSpeech  string
	FrequencyRank int
}

// SelectBatch picks up to batchSize unseen words for the learner.
//
// Bootstrap words come first: while any of the curated first ten
// remain unintroduced they are returned in curated order (verbs before
// nouns), so every learner's first ten words are identical. Once the
// bootstrap set is exhausted, selection continues strictly by
// ascending frequency rank, excluding known lemmas. A short (or empty)
// batch means the corpus is exhausted; that is not an error.
func SelectBatch(provider corpus.Provider, language string, known []words.LearnerWord, batchSize int) ([]Item, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	knownSet := words.KnownLemmas(known)

	bootstrap, err := provider.Bootstrap(language)
	if err != nil {
		return nil, fmt.Errorf("load bootstrap set: %w", err)
	}

	var batch []Item
	for _, w := range bootstrap {
		if knownSet[words.NormalizeLemma(w.Lemma)] {
			continue
		}
		batch = append(batch, itemFrom(w))
		if len(batch) == batchSize {
			return batch, nil
		}
	}

	// Any remaining bootstrap words take the whole batch: the learner
	// finishes the anchored set before touching the open corpus.
	if len(batch) > 0 {
		return batch, nil
	}

	next, err := provider.NextByFrequency(language, knownSet, batchSize)
	if err != nil {
		return nil, fmt.Errorf("load frequency corpus: %w", err)
	}
	for _, w := range next {
		batch = append(batch, itemFrom(w))
	}
	return batch, nil
}

func itemFrom(w corpus.Word) Item {
	return Item{
		Word:          w.Word,
		Lemma:         w.Lemma,
		Translation:   w.Translation,
		PartOfSpeech:  w.PartOfSpeech,
		FrequencyRank: w.Rank,
	}
}
