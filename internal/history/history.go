// Package history is the adapter for the per-question attempt log.
//
// Attempts are append-only: re-answering a question inserts a new row and
// the derived status map keeps only the latest row per question index, so
// duplicate submissions are harmless by construction.
package history

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/uptrace/bun"
)

// ErrStoreUnavailable wraps any transport or query failure. Callers are
// expected to degrade (empty history, unsaved attempt) with a visible
// warning rather than abort the session.
var ErrStoreUnavailable = errors.New("history store unavailable")

// Attempt is one answer submission for one question.
type Attempt struct {
	bun.BaseModel `bun:"table:user_attempt_history,alias:uah"`

	ID             int64     `bun:"id,pk,autoincrement"`
	UserID         string    `bun:"user_id,notnull"`
	QuestionIndex  int       `bun:"question_index,notnull"`
	SelectedOption string    `bun:"selected_option,notnull"`
	IsCorrect      bool      `bun:"is_correct,notnull"`
	SessionID      string    `bun:"session_id,nullzero"`
	Timestamp      time.Time `bun:"timestamp,notnull"`
}

// StatusMap maps a question index to the correctness of its latest attempt.
type StatusMap map[int]bool

// Store provides read and append access to the attempt log for one user
// identity. Implementations: postgres (remote), sqlite (local fallback),
// memory (tests).
type Store interface {
	// FetchStatus reads the full attempt history for userID and reduces
	// it latest-timestamp-wins. A user with no rows gets an empty map and
	// no error. On failure the map is empty and the error wraps
	// ErrStoreUnavailable.
	FetchStatus(ctx context.Context, userID string) (StatusMap, error)

	// RecordAttempt appends one row. Not idempotent, and doesn't need to
	// be (see package comment).
	RecordAttempt(ctx context.Context, a Attempt) error

	// Reset deletes every attempt row for userID.
	Reset(ctx context.Context, userID string) error

	Close() error
}

// Reduce builds the status map from raw attempt rows. The latest timestamp
// per question index wins; exact timestamp ties resolve by insertion order
// (row id), so the reduction is deterministic even for same-instant rows.
func Reduce(attempts []Attempt) StatusMap {
	sorted := make([]Attempt, len(attempts))
	copy(sorted, attempts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Timestamp.Before(sorted[j].Timestamp)
		}
		return sorted[i].ID < sorted[j].ID
	})

	status := make(StatusMap, len(sorted))
	for _, a := range sorted {
		status[a.QuestionIndex] = a.IsCorrect
	}
	return status
}
