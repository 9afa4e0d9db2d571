package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// eventRepo implements EventRepo backed by sqlx and the global sequence
// counter.
type eventRepo struct {
	db  *sqlx.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
			(sequence, provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.Provider, data.Model, data.Purpose, data.InputTokens,
		data.OutputTokens, data.LatencyMs, data.Success, data.ErrorMessage,
		data.RequestBody, data.ResponseBody)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	q := `SELECT id, sequence, timestamp, provider, model, purpose,
			input_tokens, output_tokens, latency_ms, success, error_message,
			request_body, response_body
		FROM llm_request_events`
	where, args := buildWhere(opts, nil)
	q += where + ` ORDER BY sequence DESC` + buildLimit(opts)

	var out []LLMRequestEvent
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("select LLM request events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) GetLLMRequest(ctx context.Context, id int64) (*LLMRequestEvent, error) {
	var e LLMRequestEvent
	err := r.db.GetContext(ctx, &e,
		`SELECT id, sequence, timestamp, provider, model, purpose,
			input_tokens, output_tokens, latency_ms, success, error_message,
			request_body, response_body
		FROM llm_request_events WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM request event: %w", err)
	}
	return &e, nil
}

func (r *eventRepo) LLMRequestStats(ctx context.Context) (*LLMStats, error) {
	var s LLMStats
	err := r.db.GetContext(ctx, &s,
		`SELECT COUNT(*) AS requests,
			COALESCE(SUM(CASE WHEN success THEN 1 ELSE 0 END), 0) AS succeeded,
			COALESCE(SUM(input_tokens), 0) AS input_tokens,
			COALESCE(SUM(output_tokens), 0) AS output_tokens,
			COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0) AS avg_latency_ms
		FROM llm_request_events`)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM request events: %w", err)
	}
	return &s, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var out []LLMModelUsage
	err := r.db.SelectContext(ctx, &out,
		`SELECT model,
			COUNT(*) AS calls,
			COALESCE(SUM(input_tokens), 0) AS input_tokens,
			COALESCE(SUM(output_tokens), 0) AS output_tokens
		FROM llm_request_events
		GROUP BY model
		ORDER BY calls DESC`)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by model: %w", err)
	}
	return out, nil
}

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO review_events
			(sequence, user_id, language, lemma, correct, status_before, status_after)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.UserID, data.Language, data.Lemma, data.Correct,
		string(data.StatusBefore), string(data.StatusAfter))
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListReviews(ctx context.Context, userID string, opts QueryOpts) ([]ReviewEvent, error) {
	q := `SELECT id, sequence, timestamp, user_id, language, lemma, correct,
			status_before, status_after
		FROM review_events`
	where, args := buildWhere(opts, []filter{{"user_id = ?", userID}})
	q += where + ` ORDER BY sequence DESC` + buildLimit(opts)

	var out []ReviewEvent
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("select review events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) AppendStory(ctx context.Context, data StoryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	violations, err := json.Marshal(emptyIfNil(data.Violations))
	if err != nil {
		return fmt.Errorf("encode violations: %w", err)
	}
	newLemmas, err := json.Marshal(emptyIfNil(data.NewLemmas))
	if err != nil {
		return fmt.Errorf("encode new lemmas: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO story_events
			(story_id, sequence, user_id, language, stage, tone, theme,
			 accepted, attempts, violations, new_lemmas, body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), seqNum, data.UserID, data.Language, data.Stage,
		data.Tone, data.Theme, data.Accepted, data.Attempts,
		string(violations), string(newLemmas), data.Body)
	if err != nil {
		return fmt.Errorf("save story event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListStories(ctx context.Context, userID string, opts QueryOpts) ([]StoryEvent, error) {
	type storyRow struct {
		StoryEvent
		ViolationsJSON string `db:"violations"`
		NewLemmasJSON  string `db:"new_lemmas"`
	}

	q := `SELECT id, story_id, sequence, timestamp, user_id, language, stage,
			tone, theme, accepted, attempts, violations, new_lemmas, body
		FROM story_events`
	where, args := buildWhere(opts, []filter{{"user_id = ?", userID}})
	q += where + ` ORDER BY sequence DESC` + buildLimit(opts)

	var rows []storyRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("select story events: %w", err)
	}

	out := make([]StoryEvent, len(rows))
	for i, row := range rows {
		ev := row.StoryEvent
		if err := json.Unmarshal([]byte(row.ViolationsJSON), &ev.Violations); err != nil {
			return nil, fmt.Errorf("decode violations: %w", err)
		}
		if err := json.Unmarshal([]byte(row.NewLemmasJSON), &ev.NewLemmas); err != nil {
			return nil, fmt.Errorf("decode new lemmas: %w", err)
		}
		out[i] = ev
	}
	return out, nil
}

type filter struct {
	clause string
	arg    any
}

// buildWhere assembles a WHERE clause from fixed filters plus QueryOpts.
func buildWhere(opts QueryOpts, fixed []filter) (string, []any) {
	var clauses []string
	var args []any

	for _, f := range fixed {
		clauses = append(clauses, f.clause)
		args = append(args, f.arg)
	}
	if opts.After > 0 {
		clauses = append(clauses, "sequence > ?")
		args = append(args, opts.After)
	}
	if !opts.From.IsZero() {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, opts.From)
	}
	if !opts.To.IsZero() {
		clauses = append(clauses, "timestamp <= ?")
		args = append(args, opts.To)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func buildLimit(opts QueryOpts) string {
	if opts.Limit > 0 {
		return fmt.Sprintf(" LIMIT %d", opts.Limit)
	}
	return ""
}

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
