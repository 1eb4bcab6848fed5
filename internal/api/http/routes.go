package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/quizforge/quizforge/internal/quiz"

	"github.com/go-chi/chi/v5"
)

// Mount registers the three view surfaces: authoring, taking, result.
func Mount(r chi.Router, repo *quiz.Repository) {
	r.Route("/quizzes", func(qr chi.Router) {
		// authoring view
		qr.Post("/", CreateQuizHandler(repo))
		qr.Get("/", ListQuizzesHandler(repo))
		qr.Post("/import", ImportQuizHandler(repo))

		qr.Route("/{quizID}", func(ir chi.Router) {
			// taking view
			ir.Get("/", GetQuizHandler(repo))
			ir.Get("/progress", GetProgressHandler(repo))
			ir.Put("/progress", SaveProgressHandler(repo))
			ir.Post("/progress/select", SelectAnswerHandler(repo))
			ir.Post("/submit", SubmitHandler(repo))
			// result view
			ir.Post("/result", ResultHandler(repo))
			ir.Get("/export", ExportQuizHandler(repo))
		})
	})
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, quiz.ErrQuizNotFound):
		return http.StatusNotFound
	case errors.Is(err, quiz.ErrAlreadySubmitted):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return def
}
