package store

import (
	"context"
	"time"
)

// Word is an entry of the vocabulary pool used for distractors and quizzes.
type Word struct {
	Text    string
	Level   string // CEFR level, empty when unknown
	AddedAt time.Time
}

// WordRepo manages the vocabulary pool.
type WordRepo interface {
	// Add inserts words, ignoring ones already present. It returns how many
	// were new.
	Add(ctx context.Context, words ...Word) (int, error)

	// List returns words at level, or every word when level is empty.
	List(ctx context.Context, level string) ([]Word, error)

	// Count returns the pool size.
	Count(ctx context.Context) (int, error)

	// Remove deletes a word. Returns ErrNotFound if it was not present.
	Remove(ctx context.Context, text string) error
}

// Bookmark is a word the learner saved together with its translation.
type Bookmark struct {
	ID          int64
	Word        string
	Translation string
	CreatedAt   time.Time
}

// BookmarkRepo manages saved words. Words are unique; adding a word again
// replaces its translation.
type BookmarkRepo interface {
	Add(ctx context.Context, word, translation string) (*Bookmark, error)

	// List returns bookmarks newest first.
	List(ctx context.Context) ([]Bookmark, error)

	// Get returns the bookmark with id, or nil if none exists.
	Get(ctx context.Context, id int64) (*Bookmark, error)

	// Delete removes a bookmark. Returns ErrNotFound if it was not present.
	Delete(ctx context.Context, id int64) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Purpose string    // exact purpose match when set
	After   int64     // id > After
	Before  int64     // id < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
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

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event, or nil if none exists.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
