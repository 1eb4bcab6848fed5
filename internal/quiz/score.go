package quiz

// Score grades answers against q. Pure: no persistence, no mutation.
// Answers shorter than the question list score the tail as unanswered;
// extra entries are ignored. Unanswered never matches a correct index.
func Score(q Quiz, answers AnswerSet) Result {
	res := Result{
		QuizID:    q.ID,
		Title:     q.Title,
		Total:     len(q.Questions),
		Questions: make([]QuestionResult, 0, len(q.Questions)),
	}
	for i, question := range q.Questions {
		selected := Unanswered
		if i < len(answers) {
			selected = answers[i]
		}
		right := selected == question.CorrectAnswer
		if right {
			res.Score++
		}
		res.Questions = append(res.Questions, QuestionResult{
			Index:    i,
			Selected: selected,
			Correct:  question.CorrectAnswer,
			Right:    right,
		})
	}
	return res
}
