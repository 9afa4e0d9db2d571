package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fablingo/fablingo/internal/words"
)

// wordRepo implements WordRepo backed by sqlx.
type wordRepo struct {
	db *sqlx.DB
}

func (r *wordRepo) WordsForUser(ctx context.Context, userID, language string) ([]words.LearnerWord, error) {
	var out []words.LearnerWord
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, user_id, language, word, lemma, translation, part_of_speech,
			frequency_rank, status, correct_streak, total_reviews, total_correct,
			introduced_at, last_reviewed_at, version
		FROM learner_words
		WHERE user_id = ? AND language = ?
		ORDER BY frequency_rank ASC`,
		userID, language)
	if err != nil {
		return nil, fmt.Errorf("select learner words: %w", err)
	}
	return out, nil
}

func (r *wordRepo) GetWord(ctx context.Context, userID, language, lemma string) (*words.LearnerWord, error) {
	var w words.LearnerWord
	err := r.db.GetContext(ctx, &w,
		`SELECT id, user_id, language, word, lemma, translation, part_of_speech,
			frequency_rank, status, correct_streak, total_reviews, total_correct,
			introduced_at, last_reviewed_at, version
		FROM learner_words
		WHERE user_id = ? AND language = ? AND lemma = ?`,
		userID, language, words.NormalizeLemma(lemma))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get learner word: %w", err)
	}
	return &w, nil
}

func (r *wordRepo) InsertWords(ctx context.Context, ws []words.LearnerWord) error {
	if len(ws) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, w := range ws {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO learner_words
				(user_id, language, word, lemma, translation, part_of_speech,
				 frequency_rank, status, correct_streak, total_reviews,
				 total_correct, introduced_at, version)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)
			ON CONFLICT (user_id, language, lemma) DO NOTHING`,
			w.UserID, w.Language, w.Word, words.NormalizeLemma(w.Lemma),
			w.Translation, w.PartOfSpeech, w.FrequencyRank, w.Status,
			w.CorrectStreak, w.TotalReviews, w.TotalCorrect, w.IntroducedAt)
		if err != nil {
			return fmt.Errorf("insert learner word %q: %w", w.Lemma, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *wordRepo) UpdateWordReview(ctx context.Context, w words.LearnerWord) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE learner_words
		SET status = ?, correct_streak = ?, total_reviews = ?,
			total_correct = ?, last_reviewed_at = ?, version = version + 1
		WHERE id = ? AND version = ?`,
		w.Status, w.CorrectStreak, w.TotalReviews, w.TotalCorrect,
		w.LastReviewedAt, w.ID, w.Version)
	if err != nil {
		return fmt.Errorf("update learner word: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrVersionConflict
	}
	return nil
}
