package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// profileRepo implements ProfileRepo backed by sqlx.
type profileRepo struct {
	db *sqlx.DB
}

// profileRow mirrors the profiles table; interests are stored as JSON.
type profileRow struct {
	Profile
	InterestsJSON string `db:"interests"`
}

func (r *profileRepo) Get(ctx context.Context, userID string) (*Profile, error) {
	var row profileRow
	err := r.db.GetContext(ctx, &row,
		`SELECT user_id, target_language, interests, last_tone, theme_index,
			created_at, updated_at
		FROM profiles WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	p := row.Profile
	if err := json.Unmarshal([]byte(row.InterestsJSON), &p.Interests); err != nil {
		return nil, fmt.Errorf("decode interests: %w", err)
	}
	return &p, nil
}

func (r *profileRepo) ListUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids,
		`SELECT user_id FROM profiles ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("list user IDs: %w", err)
	}
	return ids, nil
}

func (r *profileRepo) Save(ctx context.Context, p *Profile) error {
	interests, err := json.Marshal(p.Interests)
	if err != nil {
		return fmt.Errorf("encode interests: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, target_language, interests, last_tone, theme_index)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			target_language = excluded.target_language,
			interests = excluded.interests,
			last_tone = excluded.last_tone,
			theme_index = excluded.theme_index,
			updated_at = CURRENT_TIMESTAMP`,
		p.UserID, p.TargetLanguage, string(interests), p.LastTone, p.ThemeIndex)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
