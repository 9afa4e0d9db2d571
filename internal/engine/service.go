// Package engine orchestrates the learning loop: word introduction,
// constrained story generation, review updates, and exercises. It is
// stateless apart from store reads and the final commit of review and
// rotation state, so invocations parallelize trivially across users.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/fablingo/fablingo/internal/allocate"
	"github.com/fablingo/fablingo/internal/corpus"
	"github.com/fablingo/fablingo/internal/exercise"
	"github.com/fablingo/fablingo/internal/intro"
	"github.com/fablingo/fablingo/internal/stage"
	"github.com/fablingo/fablingo/internal/store"
	"github.com/fablingo/fablingo/internal/storygen"
	"github.com/fablingo/fablingo/internal/words"
)

// casRetries bounds reload-and-retry cycles on a review write race.
const casRetries = 3

// Deps are the external capabilities the engine needs. All of them are
// injected so tests can substitute deterministic fakes.
type Deps struct {
	Words    store.WordRepo
	Profiles store.ProfileRepo
	Events   store.EventRepo
	Corpus   corpus.Provider

	StoryGen    storygen.Generator
	ExerciseGen exercise.Generator

	StoryConfig    storygen.Config
	ExerciseConfig exercise.Config

	// GenTimeout bounds one whole generation call chain. The generator
	// is the only blocking operation in the engine.
	GenTimeout time.Duration

	// NewRand supplies a fresh seeded source per call. Tests inject a
	// fixed seed; production leaves it nil for a random seed.
	NewRand func() *rand.Rand

	// Now is the clock; nil means time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// Service is the engine's entry point.
type Service struct {
	deps Deps
}

// New creates a Service, filling optional deps with defaults.
func New(deps Deps) *Service {
	if deps.NewRand == nil {
		deps.NewRand = func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.GenTimeout <= 0 {
		deps.GenTimeout = 30 * time.Second
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Service{deps: deps}
}

// IntroduceBatch teaches the learner their next batch of words and
// records them with status "introduced". Idempotent under retry: words
// already present are not reset. A short or empty batch means the
// corpus is exhausted for this learner.
func (s *Service) IntroduceBatch(ctx context.Context, userID string, batchSize int) ([]intro.Item, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	lang := profile.TargetLanguage

	known, err := s.deps.Words.WordsForUser(ctx, userID, lang)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}

	batch, err := intro.SelectBatch(s.deps.Corpus, lang, known, batchSize)
	if err != nil {
		return nil, err
	}
	if len(batch) == 0 {
		return nil, nil
	}

	now := s.deps.Now().UTC()
	rows := make([]words.LearnerWord, len(batch))
	for i, item := range batch {
		rows[i] = words.LearnerWord{
			UserID:        userID,
			Language:      lang,
			Word:          item.Word,
			Lemma:         item.Lemma,
			Translation:   item.Translation,
			PartOfSpeech:  item.PartOfSpeech,
			FrequencyRank: item.FrequencyRank,
			Status:        words.StatusIntroduced,
			IntroducedAt:  now,
		}
	}
	if err := s.deps.Words.InsertWords(ctx, rows); err != nil {
		return nil, fmt.Errorf("persist introduced words: %w", err)
	}

	s.deps.Logger.Info("introduced words",
		"user", userID, "language", lang, "count", len(batch))
	return batch, nil
}

// StoryOutcome is the result of one story request.
type StoryOutcome struct {
	Story    *storygen.Story
	Stage    stage.Config
	Tone     string
	Theme    string
	Accepted bool
	Attempts int

	// Violations holds the final attempt's rule failures when the
	// failure-open path served a degraded story. Invisible to the end
	// user by design; kept for observability.
	Violations []string

	// NewWords are the first-exposure words offered to the generator.
	NewWords []words.LearnerWord
}

// GenerateStory runs the full pipeline: resolve stage, allocate
// vocabulary, rotate tone/theme, generate under the rule set, persist
// the outcome, and advance rotation state.
func (s *Service) GenerateStory(ctx context.Context, userID string) (*StoryOutcome, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(profile.Interests) != storygen.InterestCount {
		return nil, ErrInterestsRequired
	}
	lang := profile.TargetLanguage

	known, err := s.deps.Words.WordsForUser(ctx, userID, lang)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}

	rng := s.deps.NewRand()
	alloc := allocate.Allocate(known, rng)
	if alloc.Empty() {
		return nil, ErrNeedsIntroduction
	}

	tier := stage.Resolve(words.MasteredCount(known))
	rotation := storygen.RotationState{
		LastTone:   profile.LastTone,
		ThemeIndex: profile.ThemeIndex,
	}
	tone := storygen.NextTone(rotation, rng)
	theme := storygen.NextTheme(profile.Interests, rotation)

	req := storygen.StoryRequest{
		Language:   lang,
		Stage:      tier,
		Allocation: alloc,
		Tone:       tone,
		Theme:      theme,
	}
	rules := storygen.NewRuleSet(alloc)

	genCtx, cancel := context.WithTimeout(ctx, s.deps.GenTimeout)
	defer cancel()

	res, err := storygen.GenerateValidated(genCtx, s.deps.StoryGen, req, rules, s.deps.StoryConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if !res.Accepted {
		s.deps.Logger.Warn("serving degraded story",
			"user", userID, "attempts", res.Attempts, "violations", res.Violations)
	}

	event := store.StoryEventData{
		UserID:     userID,
		Language:   lang,
		Stage:      tier.Stage,
		Tone:       tone,
		Theme:      theme,
		Accepted:   res.Accepted,
		Attempts:   res.Attempts,
		Violations: res.Violations,
		Body:       res.Story.Text(),
	}
	for _, w := range alloc.NewWords {
		event.NewLemmas = append(event.NewLemmas, words.NormalizeLemma(w.Lemma))
	}
	if err := s.deps.Events.AppendStory(ctx, event); err != nil {
		return nil, fmt.Errorf("record story event: %w", err)
	}

	next := rotation.Advance(tone)
	profile.LastTone = next.LastTone
	profile.ThemeIndex = next.ThemeIndex
	if err := s.deps.Profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("advance rotation state: %w", err)
	}

	return &StoryOutcome{
		Story:      res.Story,
		Stage:      tier,
		Tone:       tone,
		Theme:      theme,
		Accepted:   res.Accepted,
		Attempts:   res.Attempts,
		Violations: res.Violations,
		NewWords:   alloc.NewWords,
	}, nil
}

// SubmitReview applies one review outcome to a word and commits it.
// Concurrent reviews of the same word are serialized by optimistic
// concurrency: a lost compare-and-swap reloads the row and reapplies
// the outcome, bounded by casRetries. The review event is append-only
// integrity history; its write failure propagates.
func (s *Service) SubmitReview(ctx context.Context, userID, lemma string, correct bool) (*words.LearnerWord, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	lang := profile.TargetLanguage

	var updated words.LearnerWord
	var before words.Status

	for attempt := 0; ; attempt++ {
		w, err := s.deps.Words.GetWord(ctx, userID, lang, lemma)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("%w: word %q was never introduced", ErrNeedsIntroduction, lemma)
			}
			return nil, fmt.Errorf("load word: %w", err)
		}
		before = w.Status

		updated = words.ApplyReview(*w, correct, s.deps.Now().UTC())
		err = s.deps.Words.UpdateWordReview(ctx, updated)
		if err == nil {
			break
		}
		if errors.Is(err, store.ErrVersionConflict) && attempt < casRetries {
			continue
		}
		return nil, fmt.Errorf("commit review: %w", err)
	}

	err = s.deps.Events.AppendReview(ctx, store.ReviewEventData{
		UserID:       userID,
		Language:     lang,
		Lemma:        words.NormalizeLemma(lemma),
		Correct:      correct,
		StatusBefore: before,
		StatusAfter:  updated.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("record review event: %w", err)
	}

	return &updated, nil
}

// BuildExercise generates the post-story exercise for the learner's
// current tier, under the same failure-open policy as stories.
func (s *Service) BuildExercise(ctx context.Context, userID string, story *storygen.Story, targetLemmas []string) (*exercise.Result, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	lang := profile.TargetLanguage

	known, err := s.deps.Words.WordsForUser(ctx, userID, lang)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}

	req := exercise.Request{
		Language:     lang,
		Stage:        stage.Resolve(words.MasteredCount(known)),
		Story:        story,
		TargetLemmas: targetLemmas,
	}

	genCtx, cancel := context.WithTimeout(ctx, s.deps.GenTimeout)
	defer cancel()

	res, err := exercise.GenerateValidated(genCtx, s.deps.ExerciseGen, req, s.deps.ExerciseConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return res, nil
}

// Progress summarizes a learner's state for display.
type Progress struct {
	Language   string
	Stage      stage.Config
	Total      int
	Introduced int
	Learning   int
	Mastered   int
}

// GetProgress computes the learner's current progress. Mastery count is
// always recomputed from word statuses, never cached.
func (s *Service) GetProgress(ctx context.Context, userID string) (*Progress, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	known, err := s.deps.Words.WordsForUser(ctx, userID, profile.TargetLanguage)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}

	byStatus := words.ByStatus(known)
	mastered := words.MasteredCount(known)
	return &Progress{
		Language:   profile.TargetLanguage,
		Stage:      stage.Resolve(mastered),
		Total:      len(known),
		Introduced: len(byStatus[words.StatusIntroduced]),
		Learning:   len(byStatus[words.StatusLearning]),
		Mastered:   mastered,
	}, nil
}

func (s *Service) profile(ctx context.Context, userID string) (*store.Profile, error) {
	p, err := s.deps.Profiles.Get(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}
