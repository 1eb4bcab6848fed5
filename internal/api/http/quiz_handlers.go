package http

import (
	"encoding/json"
	"net/http"

	"github.com/quizforge/quizforge/internal/quiz"

	"github.com/go-chi/chi/v5"
)

func CreateQuizHandler(repo *quiz.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var d quiz.Draft
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		q, err := d.Commit(r.Context(), repo)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(201)
		_ = json.NewEncoder(w).Encode(q)
	}
}

func ListQuizzesHandler(repo *quiz.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseIntDefault(r.URL.Query().Get("limit"), 50)
		offset := parseIntDefault(r.URL.Query().Get("offset"), 0)

		quizzes, err := repo.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if offset > len(quizzes) {
			offset = len(quizzes)
		}
		quizzes = quizzes[offset:]
		if limit < len(quizzes) {
			quizzes = quizzes[:limit]
		}
		out := make([]quiz.Summary, 0, len(quizzes))
		for _, q := range quizzes {
			out = append(out, q.Summary())
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}
}

// takeQuestion is the taker-facing question view, answer key withheld.
type takeQuestion struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type takeView struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Questions []takeQuestion `json:"questions"`
}

func GetQuizHandler(repo *quiz.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		q, err := repo.Get(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), errStatus(err))
			return
		}
		view := takeView{ID: q.ID, Title: q.Title, Questions: make([]takeQuestion, 0, len(q.Questions))}
		for _, question := range q.Questions {
			view.Questions = append(view.Questions, takeQuestion{Text: question.Text, Options: question.Options})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(view)
	}
}

// ExportQuizHandler serves the full definition, answer keys included, as a
// download.
func ExportQuizHandler(repo *quiz.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		q, err := repo.Get(r.Context(), id)
		if err != nil {
			http.Error(w, "not found", 404)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", "attachment; filename=\""+id+".json\"")
		_ = json.NewEncoder(w).Encode(q)
	}
}

// ImportQuizHandler re-imports an exported definition under a fresh id.
func ImportQuizHandler(repo *quiz.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q quiz.Quiz
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		d := quiz.Draft{Title: q.Title, Questions: q.Questions}
		saved, err := d.Commit(r.Context(), repo)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(201)
		_ = json.NewEncoder(w).Encode(saved)
	}
}
