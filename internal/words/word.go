package words

import (
	"strings"
	"time"
)

// Status represents a word's position in the learning lifecycle.
// A word that has never been introduced has no record and no status.
type Status string

const (
	// StatusIntroduced means the word was taught in an introduction
	// session but has not been reviewed yet.
	StatusIntroduced Status = "introduced"

	// StatusLearning means the word has at least one review but has not
	// met the mastery condition (or regressed from it).
	StatusLearning Status = "learning"

	// StatusMastered means correctStreak >= 3 and totalReviews >= 3.
	StatusMastered Status = "mastered"
)

// LearnerWord is one row per (user, language, lemma). It is created by
// the introduction selector and mutated only by review events. Rows are
// never deleted; review history is an integrity record.
type LearnerWord struct {
	ID           int64  `db:"id"`
	UserID       string `db:"user_id"`
	Language     string `db:"language"`
	Word         string `db:"word"`
	Lemma        string `db:"lemma"`
	Translation  string `db:"translation"`
	PartOfSpeech string `db:"part_of_speech"`

	// FrequencyRank is the corpus-assigned rank. It is a total order
	// used for introduction sequencing.
	FrequencyRank int `db:"frequency_rank"`

	Status        Status `db:"status"`
	CorrectStreak int    `db:"correct_streak"`
	TotalReviews  int    `db:"total_reviews"`
	TotalCorrect  int    `db:"total_correct"`

	IntroducedAt   time.Time  `db:"introduced_at"`
	LastReviewedAt *time.Time `db:"last_reviewed_at"`

	// Version guards concurrent review updates on the same word
	// (compare-and-swap in the store).
	Version int64 `db:"version"`
}

// NormalizeLemma canonicalizes a lemma for case-insensitive comparison.
func NormalizeLemma(lemma string) string {
	return strings.ToLower(strings.TrimSpace(lemma))
}

// MasteredCount returns the number of mastered words. It is always
// recomputed from the word list, never cached, so it cannot drift from
// the underlying statuses.
func MasteredCount(ws []LearnerWord) int {
	n := 0
	for _, w := range ws {
		if w.Status == StatusMastered {
			n++
		}
	}
	return n
}

// ByStatus partitions words into a map keyed by status.
func ByStatus(ws []LearnerWord) map[Status][]LearnerWord {
	out := make(map[Status][]LearnerWord)
	for _, w := range ws {
		out[w.Status] = append(out[w.Status], w)
	}
	return out
}

// KnownLemmas returns the normalized lemma set of the given words.
func KnownLemmas(ws []LearnerWord) map[string]bool {
	out := make(map[string]bool, len(ws))
	for _, w := range ws {
		out[NormalizeLemma(w.Lemma)] = true
	}
	return out
}
