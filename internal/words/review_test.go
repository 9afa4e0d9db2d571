package words

import (
	"testing"
	"time"
)

func introducedWord() LearnerWord {
	return LearnerWord{
		UserID:        "u1",
		Language:      "es",
		Word:          "comer",
		Lemma:         "comer",
		Translation:   "to eat",
		PartOfSpeech:  "verb",
		FrequencyRank: 3,
		Status:        StatusIntroduced,
		IntroducedAt:  time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestApplyReview_FirstCorrectMovesToLearning(t *testing.T) {
	now := time.Now()
	next := ApplyReview(introducedWord(), true, now)

	if next.Status != StatusLearning {
		t.Errorf("expected learning after one correct review, got %q", next.Status)
	}
	if next.CorrectStreak != 1 || next.TotalReviews != 1 || next.TotalCorrect != 1 {
		t.Errorf("unexpected counters: streak=%d reviews=%d correct=%d",
			next.CorrectStreak, next.TotalReviews, next.TotalCorrect)
	}
	if next.LastReviewedAt == nil || !next.LastReviewedAt.Equal(now) {
		t.Error("lastReviewedAt not set to review time")
	}
}

func TestApplyReview_FirstIncorrectMovesToLearning(t *testing.T) {
	next := ApplyReview(introducedWord(), false, time.Now())

	if next.Status != StatusLearning {
		t.Errorf("expected learning after an incorrect first review, got %q", next.Status)
	}
	if next.CorrectStreak != 0 {
		t.Errorf("expected streak 0, got %d", next.CorrectStreak)
	}
	if next.TotalCorrect != 0 || next.TotalReviews != 1 {
		t.Errorf("unexpected counters: correct=%d reviews=%d", next.TotalCorrect, next.TotalReviews)
	}
}

func TestApplyReview_ThirdCorrectMasters(t *testing.T) {
	w := introducedWord()
	w.Status = StatusLearning
	w.CorrectStreak = 2
	w.TotalReviews = 2
	w.TotalCorrect = 2

	next := ApplyReview(w, true, time.Now())

	if next.Status != StatusMastered {
		t.Errorf("expected mastered, got %q", next.Status)
	}
	if next.CorrectStreak != 3 || next.TotalReviews != 3 {
		t.Errorf("unexpected counters: streak=%d reviews=%d", next.CorrectStreak, next.TotalReviews)
	}
}

func TestApplyReview_StreakWithoutEnoughReviewsDoesNotMaster(t *testing.T) {
	// streak 2 but only 2 reviews total: the third correct review
	// satisfies both thresholds at once, so streak 3 with reviews 3
	// is the earliest possible promotion. Verify streak alone at
	// fewer reviews never promotes.
	w := introducedWord()
	w.Status = StatusLearning
	w.CorrectStreak = 1
	w.TotalReviews = 1
	w.TotalCorrect = 1

	next := ApplyReview(w, true, time.Now())
	if next.Status != StatusLearning {
		t.Errorf("expected learning at streak=2 reviews=2, got %q", next.Status)
	}
}

func TestApplyReview_SingleMissDemotesMastered(t *testing.T) {
	w := introducedWord()
	w.Status = StatusMastered
	w.CorrectStreak = 5
	w.TotalReviews = 8
	w.TotalCorrect = 7

	next := ApplyReview(w, false, time.Now())

	if next.Status != StatusLearning {
		t.Errorf("expected demotion to learning, got %q", next.Status)
	}
	if next.CorrectStreak != 0 {
		t.Errorf("expected streak reset to 0, got %d", next.CorrectStreak)
	}
	// History is preserved, never wiped.
	if next.TotalReviews != 9 || next.TotalCorrect != 7 {
		t.Errorf("history lost: reviews=%d correct=%d", next.TotalReviews, next.TotalCorrect)
	}
}

func TestApplyReview_DoesNotMutateInput(t *testing.T) {
	w := introducedWord()
	_ = ApplyReview(w, true, time.Now())

	if w.TotalReviews != 0 || w.Status != StatusIntroduced || w.LastReviewedAt != nil {
		t.Error("ApplyReview mutated its input")
	}
}

func TestApplyReview_MasteryInvariant(t *testing.T) {
	// Any word with streak >= 3 and reviews >= 3 after a correct
	// review must be mastered.
	for streak := 0; streak <= 5; streak++ {
		for reviews := 0; reviews <= 6; reviews++ {
			w := introducedWord()
			w.Status = StatusLearning
			w.CorrectStreak = streak
			w.TotalReviews = reviews
			w.TotalCorrect = reviews

			next := ApplyReview(w, true, time.Now())
			wantMastered := streak+1 >= 3 && reviews+1 >= 3
			gotMastered := next.Status == StatusMastered
			if wantMastered != gotMastered {
				t.Errorf("streak=%d reviews=%d: mastered=%v, want %v",
					streak, reviews, gotMastered, wantMastered)
			}
		}
	}
}

func TestReplay_ReconstructsState(t *testing.T) {
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	outcomes := []ReviewOutcome{
		{Correct: true, At: base},
		{Correct: true, At: base.Add(time.Hour)},
		{Correct: false, At: base.Add(2 * time.Hour)},
		{Correct: true, At: base.Add(3 * time.Hour)},
		{Correct: true, At: base.Add(4 * time.Hour)},
		{Correct: true, At: base.Add(5 * time.Hour)},
	}

	got := Replay(introducedWord(), outcomes)

	if got.Status != StatusMastered {
		t.Errorf("expected mastered after 3-streak tail, got %q", got.Status)
	}
	if got.TotalReviews != 6 || got.TotalCorrect != 5 || got.CorrectStreak != 3 {
		t.Errorf("unexpected fold result: reviews=%d correct=%d streak=%d",
			got.TotalReviews, got.TotalCorrect, got.CorrectStreak)
	}
}

func TestMasteredCount(t *testing.T) {
	ws := []LearnerWord{
		{Lemma: "a", Status: StatusMastered},
		{Lemma: "b", Status: StatusLearning},
		{Lemma: "c", Status: StatusMastered},
		{Lemma: "d", Status: StatusIntroduced},
	}
	if got := MasteredCount(ws); got != 2 {
		t.Errorf("expected 2 mastered, got %d", got)
	}
}

func TestNormalizeLemma(t *testing.T) {
	if NormalizeLemma("  Comer ") != "comer" {
		t.Error("expected lowercase trimmed lemma")
	}
}
