package words

import "time"

// masteryStreak and masteryReviews are the thresholds for promotion:
// a word is mastered once it has 3 consecutive correct answers across
// at least 3 total reviews.
const (
	masteryStreak  = 3
	masteryReviews = 3
)

// ApplyReview applies a single review event to a word and returns the
// next state. The input is not modified; persisting the result (and
// appending the event) is the caller's job.
//
// The transition rules:
//
//	introduced -> learning   on the first review, correct or not
//	learning   -> mastered   when streak >= 3 and reviews >= 3
//	mastered   -> learning   on any single miss (streak resets to 0)
//
// Mastery is deliberately not sticky against regression: one incorrect
// review demotes the word but never wipes its counters.
func ApplyReview(w LearnerWord, correct bool, now time.Time) LearnerWord {
	next := w
	next.TotalReviews++
	next.LastReviewedAt = &now

	if correct {
		next.TotalCorrect++
		next.CorrectStreak++
		if next.CorrectStreak >= masteryStreak && next.TotalReviews >= masteryReviews {
			next.Status = StatusMastered
		} else {
			next.Status = StatusLearning
		}
	} else {
		next.CorrectStreak = 0
		next.Status = StatusLearning
	}

	return next
}

// Replay folds a sequence of review outcomes over an introduced word,
// producing the state the word would have after those reviews. Used to
// reconstruct state from the append-only review event log.
func Replay(w LearnerWord, outcomes []ReviewOutcome) LearnerWord {
	cur := w
	for _, o := range outcomes {
		cur = ApplyReview(cur, o.Correct, o.At)
	}
	return cur
}

// ReviewOutcome is one entry of the review event log.
type ReviewOutcome struct {
	Correct bool
	At      time.Time
}
