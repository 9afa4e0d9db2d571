package store

import (
	"context"
	"errors"
	"time"

	"github.com/fablingo/fablingo/internal/words"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// ErrVersionConflict is returned when a compare-and-swap update loses a
// race. Callers should reload the row and retry.
var ErrVersionConflict = errors.New("store: version conflict")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Profile holds a learner's account-level settings and rotation state.
type Profile struct {
	UserID         string    `db:"user_id"`
	TargetLanguage string    `db:"target_language"`
	Interests      []string  `db:"-"`
	LastTone       string    `db:"last_tone"`
	ThemeIndex     int       `db:"theme_index"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// ProfileRepo manages learner profiles.
type ProfileRepo interface {
	// Get returns the profile for userID, or ErrNotFound.
	Get(ctx context.Context, userID string) (*Profile, error)

	// ListUserIDs returns all known learner IDs, ordered.
	ListUserIDs(ctx context.Context) ([]string, error)

	// Save upserts the profile.
	Save(ctx context.Context, p *Profile) error
}

// WordRepo manages per-learner word state.
type WordRepo interface {
	// WordsForUser returns all words for (userID, language) ordered by
	// frequency rank.
	WordsForUser(ctx context.Context, userID, language string) ([]words.LearnerWord, error)

	// GetWord returns the word row for (userID, language, lemma), or
	// ErrNotFound.
	GetWord(ctx context.Context, userID, language, lemma string) (*words.LearnerWord, error)

	// InsertWords inserts introduced words. Rows that already exist for
	// (userID, language, lemma) are skipped, making re-introduction
	// idempotent.
	InsertWords(ctx context.Context, ws []words.LearnerWord) error

	// UpdateWordReview persists a post-review word via compare-and-swap
	// on Version. Returns ErrVersionConflict if the stored version no
	// longer matches w.Version.
	UpdateWordReview(ctx context.Context, w words.LearnerWord) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event row.
type LLMRequestEvent struct {
	ID           int64     `db:"id"`
	Sequence     int64     `db:"sequence"`
	Timestamp    time.Time `db:"timestamp"`
	Provider     string    `db:"provider"`
	Model        string    `db:"model"`
	Purpose      string    `db:"purpose"`
	InputTokens  int       `db:"input_tokens"`
	OutputTokens int       `db:"output_tokens"`
	LatencyMs    int64     `db:"latency_ms"`
	Success      bool      `db:"success"`
	ErrorMessage string    `db:"error_message"`
	RequestBody  string    `db:"request_body"`
	ResponseBody string    `db:"response_body"`
}

// LLMStats aggregates request counts and token usage.
type LLMStats struct {
	Requests     int   `db:"requests"`
	Succeeded    int   `db:"succeeded"`
	InputTokens  int   `db:"input_tokens"`
	OutputTokens int   `db:"output_tokens"`
	AvgLatencyMs int64 `db:"avg_latency_ms"`
}

// LLMModelUsage aggregates token usage per model, for cost estimation.
type LLMModelUsage struct {
	Model        string `db:"model"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
}

// ReviewEventData captures a single review outcome.
type ReviewEventData struct {
	UserID       string
	Language     string
	Lemma        string
	Correct      bool
	StatusBefore words.Status
	StatusAfter  words.Status
}

// ReviewEvent is a stored review event row.
type ReviewEvent struct {
	ID           int64     `db:"id"`
	Sequence     int64     `db:"sequence"`
	Timestamp    time.Time `db:"timestamp"`
	UserID       string    `db:"user_id"`
	Language     string    `db:"language"`
	Lemma        string    `db:"lemma"`
	Correct      bool      `db:"correct"`
	StatusBefore string    `db:"status_before"`
	StatusAfter  string    `db:"status_after"`
}

// StoryEventData captures the outcome of one story generation.
type StoryEventData struct {
	UserID     string
	Language   string
	Stage      int
	Tone       string
	Theme      string
	Accepted   bool
	Attempts   int
	Violations []string
	NewLemmas  []string
	Body       string
}

// StoryEvent is a stored story generation event row. StoryID is a
// UUID assigned at append time, stable across exports.
type StoryEvent struct {
	ID         int64     `db:"id"`
	StoryID    string    `db:"story_id"`
	Sequence   int64     `db:"sequence"`
	Timestamp  time.Time `db:"timestamp"`
	UserID     string    `db:"user_id"`
	Language   string    `db:"language"`
	Stage      int       `db:"stage"`
	Tone       string    `db:"tone"`
	Theme      string    `db:"theme"`
	Accepted   bool      `db:"accepted"`
	Attempts   int       `db:"attempts"`
	Violations []string  `db:"-"`
	NewLemmas  []string  `db:"-"`
	Body       string    `db:"body"`
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns LLM request events, newest first.
	ListLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMRequest returns one LLM request event by row ID, or
	// ErrNotFound.
	GetLLMRequest(ctx context.Context, id int64) (*LLMRequestEvent, error)

	// LLMRequestStats aggregates LLM usage across all recorded requests.
	LLMRequestStats(ctx context.Context) (*LLMStats, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendReview records a review outcome event.
	AppendReview(ctx context.Context, data ReviewEventData) error

	// ListReviews returns review events for a learner, newest first.
	ListReviews(ctx context.Context, userID string, opts QueryOpts) ([]ReviewEvent, error)

	// AppendStory records a story generation outcome event.
	AppendStory(ctx context.Context, data StoryEventData) error

	// ListStories returns story events for a learner, newest first.
	ListStories(ctx context.Context, userID string, opts QueryOpts) ([]StoryEvent, error)
}
