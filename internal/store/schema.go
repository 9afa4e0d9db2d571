package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// migrate creates all tables and indexes. Statements are idempotent so
// Open can run them on every start.
func migrate(db *sqlx.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id         TEXT PRIMARY KEY,
			target_language TEXT NOT NULL,
			interests       TEXT NOT NULL DEFAULT '[]',
			last_tone       TEXT NOT NULL DEFAULT '',
			theme_index     INTEGER NOT NULL DEFAULT 0,
			created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS learner_words (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id          TEXT NOT NULL,
			language         TEXT NOT NULL,
			word             TEXT NOT NULL,
			lemma            TEXT NOT NULL,
			translation      TEXT NOT NULL,
			part_of_speech   TEXT NOT NULL,
			frequency_rank   INTEGER NOT NULL,
			status           TEXT NOT NULL,
			correct_streak   INTEGER NOT NULL DEFAULT 0,
			total_reviews    INTEGER NOT NULL DEFAULT 0,
			total_correct    INTEGER NOT NULL DEFAULT 0,
			introduced_at    TIMESTAMP NOT NULL,
			last_reviewed_at TIMESTAMP,
			version          INTEGER NOT NULL DEFAULT 1,
			UNIQUE (user_id, language, lemma)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_learner_words_user
			ON learner_words (user_id, language, frequency_rank)`,

		`CREATE TABLE IF NOT EXISTS review_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence      INTEGER NOT NULL,
			timestamp     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			user_id       TEXT NOT NULL,
			language      TEXT NOT NULL,
			lemma         TEXT NOT NULL,
			correct       BOOLEAN NOT NULL,
			status_before TEXT NOT NULL,
			status_after  TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_review_events_user
			ON review_events (user_id, language, lemma)`,

		`CREATE TABLE IF NOT EXISTS story_events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			story_id   TEXT NOT NULL UNIQUE,
			sequence   INTEGER NOT NULL,
			timestamp  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			user_id    TEXT NOT NULL,
			language   TEXT NOT NULL,
			stage      INTEGER NOT NULL,
			tone       TEXT NOT NULL,
			theme      TEXT NOT NULL,
			accepted   BOOLEAN NOT NULL,
			attempts   INTEGER NOT NULL,
			violations TEXT NOT NULL DEFAULT '[]',
			new_lemmas TEXT NOT NULL DEFAULT '[]',
			body       TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_story_events_user
			ON story_events (user_id, language)`,

		`CREATE TABLE IF NOT EXISTS llm_request_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence      INTEGER NOT NULL,
			timestamp     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			provider      TEXT NOT NULL,
			model         TEXT NOT NULL,
			purpose       TEXT NOT NULL,
			input_tokens  INTEGER NOT NULL DEFAULT 0,
			output_tokens INTEGER NOT NULL DEFAULT 0,
			latency_ms    INTEGER NOT NULL DEFAULT 0,
			success       BOOLEAN NOT NULL,
			error_message TEXT NOT NULL DEFAULT '',
			request_body  TEXT NOT NULL DEFAULT '',
			response_body TEXT NOT NULL DEFAULT ''
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}
