package quiz

import "errors"

var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrAlreadySubmitted = errors.New("quiz already submitted")
)

// Unanswered marks a question with no selected option.
const Unanswered = -1

type Question struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
	CreatedAt int64      `json:"created_at,omitempty"`
}

// Summary is the list-view projection of a quiz.
type Summary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"question_count"`
	CreatedAt     int64  `json:"created_at,omitempty"`
}

func (q Quiz) Summary() Summary {
	return Summary{ID: q.ID, Title: q.Title, QuestionCount: len(q.Questions), CreatedAt: q.CreatedAt}
}

// AnswerSet holds one selected option index per question, Unanswered where
// the user has not picked yet.
type AnswerSet []int

// NewAnswerSet returns an all-unanswered set of size n.
func NewAnswerSet(n int) AnswerSet {
	a := make(AnswerSet, n)
	for i := range a {
		a[i] = Unanswered
	}
	return a
}

// QuestionResult drives the per-question render decision: which option the
// user picked and which was correct (possibly the same).
type QuestionResult struct {
	Index    int  `json:"index"`
	Selected int  `json:"selected"`
	Correct  int  `json:"correct"`
	Right    bool `json:"right"`
}

type Result struct {
	QuizID    string           `json:"quiz_id"`
	Title     string           `json:"title"`
	Score     int              `json:"score"`
	Total     int              `json:"total"`
	Questions []QuestionResult `json:"questions"`
}
