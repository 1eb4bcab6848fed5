package quiz

import (
	"context"
	"fmt"
	"time"
)

// Draft accumulates an in-memory quiz during authoring. Nothing touches the
// repository until Commit.
type Draft struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

func (d *Draft) SetTitle(title string) { d.Title = title }

func (d *Draft) AddQuestion(text string, options []string, correct int) {
	d.Questions = append(d.Questions, Question{Text: text, Options: options, CorrectAnswer: correct})
}

func (d *Draft) RemoveQuestion(i int) {
	if i < 0 || i >= len(d.Questions) {
		return
	}
	d.Questions = append(d.Questions[:i], d.Questions[i+1:]...)
}

// Validate rejects empty required fields with user-visible messages. Zero
// questions is accepted; the correct-answer index is not range-checked here
// (the authoring surface constrains it).
func (d *Draft) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("missing field title")
	}
	for i, q := range d.Questions {
		if q.Text == "" {
			return fmt.Errorf("missing text of question %d", i+1)
		}
		for j, opt := range q.Options {
			if opt == "" {
				return fmt.Errorf("missing option %d of question %d", j+1, i+1)
			}
		}
	}
	return nil
}

// Commit validates the draft, stamps an id from the creation timestamp, and
// saves through repo. Ids are not checked for uniqueness; two commits within
// the same second collide.
func (d *Draft) Commit(ctx context.Context, repo *Repository) (Quiz, error) {
	if err := d.Validate(); err != nil {
		return Quiz{}, err
	}
	now := time.Now()
	q := Quiz{
		ID:        now.Format("20060102150405"),
		Title:     d.Title,
		Questions: d.Questions,
		CreatedAt: now.Unix(),
	}
	if err := repo.Save(ctx, q); err != nil {
		return Quiz{}, err
	}
	return q, nil
}
