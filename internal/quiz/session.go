package quiz

import (
	"context"
	"fmt"
)

const (
	statusInProgress = "in_progress"
	statusSubmitted  = "submitted"
)

// Session is one user's pass through a quiz: load, select answers with
// write-through persistence, submit. Submit is terminal.
type Session struct {
	repo    *Repository
	quiz    Quiz
	answers AnswerSet
	status  string
}

// StartSession resolves quizID and initializes the answer set from persisted
// progress when present, else all unanswered. ErrQuizNotFound is terminal.
func StartSession(ctx context.Context, repo *Repository, quizID string) (*Session, error) {
	q, err := repo.Get(ctx, quizID)
	if err != nil {
		return nil, err
	}
	answers, ok, err := repo.LoadProgress(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if !ok || len(answers) != len(q.Questions) {
		answers = NewAnswerSet(len(q.Questions))
	}
	return &Session{repo: repo, quiz: q, answers: answers, status: statusInProgress}, nil
}

func (s *Session) Quiz() Quiz { return s.quiz }

// Answers returns a copy of the current answer set.
func (s *Session) Answers() AnswerSet {
	out := make(AnswerSet, len(s.answers))
	copy(out, s.answers)
	return out
}

// Select records option for question and immediately re-persists the full
// answer set. Only the final selection per question matters for scoring.
func (s *Session) Select(ctx context.Context, question, option int) error {
	if s.status == statusSubmitted {
		return ErrAlreadySubmitted
	}
	if question < 0 || question >= len(s.answers) {
		return fmt.Errorf("question %d out of range", question)
	}
	if option < Unanswered || option >= len(s.quiz.Questions[question].Options) {
		return fmt.Errorf("option %d out of range for question %d", option, question)
	}
	s.answers[question] = option
	return s.repo.SaveProgress(ctx, s.quiz.ID, s.answers)
}

// SetAnswers replaces the whole answer set (a client re-syncing its state)
// and persists it. Length is normalized to the question count.
func (s *Session) SetAnswers(ctx context.Context, answers AnswerSet) error {
	if s.status == statusSubmitted {
		return ErrAlreadySubmitted
	}
	next := NewAnswerSet(len(s.quiz.Questions))
	for i := range next {
		if i < len(answers) {
			next[i] = answers[i]
		}
	}
	s.answers = next
	return s.repo.SaveProgress(ctx, s.quiz.ID, s.answers)
}

// Submit clears persisted progress, hands the answers to scoring, and marks
// the session terminal. Unanswered entries score as incorrect.
func (s *Session) Submit(ctx context.Context) (Result, error) {
	if s.status == statusSubmitted {
		return Result{}, ErrAlreadySubmitted
	}
	if err := s.repo.ClearProgress(ctx, s.quiz.ID); err != nil {
		return Result{}, err
	}
	s.status = statusSubmitted
	return Score(s.quiz, s.answers), nil
}
