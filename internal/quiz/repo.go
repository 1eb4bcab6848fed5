package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/quizforge/quizforge/internal/kv"
)

const quizzesKey = "quizzes"

func progressKey(quizID string) string { return "progress:" + quizID }

// Repository owns the persistent quiz list and the transient per-quiz answer
// sets. Both live in the injected kv store: the full list under one key, each
// in-progress answer set under "progress:<quizID>".
type Repository struct {
	store kv.Store
}

func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// List returns all stored quizzes. An absent or unparseable blob degrades to
// an empty list; the fallback is logged rather than silent.
func (r *Repository) List(ctx context.Context) ([]Quiz, error) {
	b, err := r.store.Get(ctx, quizzesKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []Quiz{}, nil
		}
		return nil, err
	}
	var quizzes []Quiz
	if err := json.Unmarshal(b, &quizzes); err != nil {
		log.Printf("quiz list unreadable, starting empty: %v", err)
		return []Quiz{}, nil
	}
	return quizzes, nil
}

// Get returns the quiz with the given id, or ErrQuizNotFound. When duplicate
// ids exist the earliest-saved quiz wins.
func (r *Repository) Get(ctx context.Context, id string) (Quiz, error) {
	quizzes, err := r.List(ctx)
	if err != nil {
		return Quiz{}, err
	}
	for _, q := range quizzes {
		if q.ID == id {
			return q, nil
		}
	}
	return Quiz{}, ErrQuizNotFound
}

// Save appends q and rewrites the full list. No duplicate-id check.
func (r *Repository) Save(ctx context.Context, q Quiz) error {
	quizzes, err := r.List(ctx)
	if err != nil {
		return err
	}
	quizzes = append(quizzes, q)
	b, err := json.Marshal(quizzes)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, quizzesKey, b)
}

// LoadProgress returns the persisted answer set for quizID, or ok=false when
// none exists. A corrupt entry counts as absent.
func (r *Repository) LoadProgress(ctx context.Context, quizID string) (AnswerSet, bool, error) {
	b, err := r.store.Get(ctx, progressKey(quizID))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var a AnswerSet
	if err := json.Unmarshal(b, &a); err != nil {
		log.Printf("progress for quiz %s unreadable, starting fresh: %v", quizID, err)
		return nil, false, nil
	}
	return a, true, nil
}

// SaveProgress persists the full answer set for quizID (write-through).
func (r *Repository) SaveProgress(ctx context.Context, quizID string, a AnswerSet) error {
	b, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, progressKey(quizID), b)
}

// ClearProgress removes the persisted answer set for quizID. Idempotent.
func (r *Repository) ClearProgress(ctx context.Context, quizID string) error {
	return r.store.Delete(ctx, progressKey(quizID))
}
