package http

import (
	"encoding/json"
	"net/http"

	"github.com/quizforge/quizforge/internal/quiz"

	"github.com/go-chi/chi/v5"
)

type progressView struct {
	QuizID  string         `json:"quiz_id"`
	Answers quiz.AnswerSet `json:"answers"`
}

func GetProgressHandler(repo *quiz.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		s, err := quiz.StartSession(r.Context(), repo, id)
		if err != nil {
			http.Error(w, err.Error(), errStatus(err))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(progressView{QuizID: id, Answers: s.Answers()})
	}
}

func SaveProgressHandler(repo *quiz.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		var req struct {
			Answers quiz.AnswerSet `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		s, err := quiz.StartSession(r.Context(), repo, id)
		if err != nil {
			http.Error(w, err.Error(), errStatus(err))
			return
		}
		if err := s.SetAnswers(r.Context(), req.Answers); err != nil {
			http.Error(w, err.Error(), errStatus(err))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(progressView{QuizID: id, Answers: s.Answers()})
	}
}

// SelectAnswerHandler records one option pick; the full answer set is
// re-persisted on every call.
func SelectAnswerHandler(repo *quiz.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		var req struct {
			Question int `json:"question"`
			Option   int `json:"option"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		s, err := quiz.StartSession(r.Context(), repo, id)
		if err != nil {
			http.Error(w, err.Error(), errStatus(err))
			return
		}
		if err := s.Select(r.Context(), req.Question, req.Option); err != nil {
			http.Error(w, err.Error(), errStatus(err))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(progressView{QuizID: id, Answers: s.Answers()})
	}
}

func SubmitHandler(repo *quiz.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		s, err := quiz.StartSession(r.Context(), repo, id)
		if err != nil {
			http.Error(w, err.Error(), errStatus(err))
			return
		}
		res, err := s.Submit(r.Context())
		if err != nil {
			http.Error(w, err.Error(), errStatus(err))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(res)
	}
}

// ResultHandler scores the answer set carried over from the taking view.
// Direct navigation without answers is an explicit error state.
func ResultHandler(repo *quiz.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		var req struct {
			Answers *quiz.AnswerSet `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Answers == nil {
			http.Error(w, "answers required", 400)
			return
		}
		q, err := repo.Get(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), errStatus(err))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(quiz.Score(q, *req.Answers))
	}
}
