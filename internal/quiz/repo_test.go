package quiz_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/quizforge/quizforge/internal/kv"
	"github.com/quizforge/quizforge/internal/quiz"
)

func TestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := quiz.NewRepository(kv.NewMemoryStore())

	q := quiz.Quiz{
		ID:    "20240101120000",
		Title: "Geography",
		Questions: []quiz.Question{
			{Text: "Capital of Japan?", Options: []string{"Osaka", "Tokyo", "Kyoto", "Nagoya"}, CorrectAnswer: 1},
			{Text: "Longest river?", Options: []string{"Nile", "Amazon", "Yangtze", "Danube"}, CorrectAnswer: 0},
		},
		CreatedAt: 1704110400,
	}
	if err := repo.Save(ctx, q); err != nil {
		t.Fatalf("save: %v", err)
	}

	quizzes, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(quizzes) != 1 {
		t.Fatalf("got %d quizzes, want 1", len(quizzes))
	}
	if !reflect.DeepEqual(quizzes[0], q) {
		t.Fatalf("round-trip mismatch:\ngot  %+v\nwant %+v", quizzes[0], q)
	}
}

func TestRepositoryListEmptyWhenAbsent(t *testing.T) {
	repo := quiz.NewRepository(kv.NewMemoryStore())
	quizzes, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(quizzes) != 0 {
		t.Fatalf("got %d quizzes, want 0", len(quizzes))
	}
}

func TestRepositoryCorruptBlobDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	if err := store.Put(ctx, "quizzes", []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	repo := quiz.NewRepository(store)

	quizzes, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list on corrupt blob: %v", err)
	}
	if len(quizzes) != 0 {
		t.Fatalf("got %d quizzes, want 0", len(quizzes))
	}
}

func TestRepositoryGetNotFound(t *testing.T) {
	repo := quiz.NewRepository(kv.NewMemoryStore())
	if _, err := repo.Get(context.Background(), "missing"); err != quiz.ErrQuizNotFound {
		t.Fatalf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestRepositorySaveAppends(t *testing.T) {
	ctx := context.Background()
	repo := quiz.NewRepository(kv.NewMemoryStore())

	for _, title := range []string{"first", "second", "third"} {
		if err := repo.Save(ctx, quiz.Quiz{ID: title, Title: title}); err != nil {
			t.Fatalf("save %s: %v", title, err)
		}
	}
	quizzes, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(quizzes) != 3 {
		t.Fatalf("got %d quizzes, want 3", len(quizzes))
	}
	if quizzes[0].Title != "first" || quizzes[2].Title != "third" {
		t.Fatalf("order not preserved: %+v", quizzes)
	}
}

func TestRepositoryDuplicateIDFirstWins(t *testing.T) {
	ctx := context.Background()
	repo := quiz.NewRepository(kv.NewMemoryStore())

	if err := repo.Save(ctx, quiz.Quiz{ID: "dup", Title: "old"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, quiz.Quiz{ID: "dup", Title: "new"}); err != nil {
		t.Fatal(err)
	}
	got, err := repo.Get(ctx, "dup")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "old" {
		t.Fatalf("got %q, want earliest-saved quiz", got.Title)
	}
}

func TestRepositoryProgressLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := quiz.NewRepository(kv.NewMemoryStore())

	if _, ok, err := repo.LoadProgress(ctx, "q1"); err != nil || ok {
		t.Fatalf("fresh progress: ok=%v err=%v", ok, err)
	}
	want := quiz.AnswerSet{2, -1, 0}
	if err := repo.SaveProgress(ctx, "q1", want); err != nil {
		t.Fatalf("save progress: %v", err)
	}
	got, ok, err := repo.LoadProgress(ctx, "q1")
	if err != nil || !ok {
		t.Fatalf("load progress: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("progress = %v, want %v", got, want)
	}
	if err := repo.ClearProgress(ctx, "q1"); err != nil {
		t.Fatalf("clear progress: %v", err)
	}
	if _, ok, _ := repo.LoadProgress(ctx, "q1"); ok {
		t.Fatal("progress survived clear")
	}
	// clearing again is fine
	if err := repo.ClearProgress(ctx, "q1"); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestRepositoryCorruptProgressCountsAsAbsent(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	if err := store.Put(ctx, "progress:q1", []byte("[[")); err != nil {
		t.Fatal(err)
	}
	repo := quiz.NewRepository(store)
	if _, ok, err := repo.LoadProgress(ctx, "q1"); err != nil || ok {
		t.Fatalf("corrupt progress: ok=%v err=%v", ok, err)
	}
}
