package session

import (
	"context"
	"errors"
	"testing"

	"github.com/nvoloshin/prepterm/internal/model"
	"github.com/nvoloshin/prepterm/internal/question"
)

type fakeRetakeBoundary struct {
	raws []question.Raw
	err  error
}

func (f fakeRetakeBoundary) RetakeQuestions(context.Context, string) ([]question.Raw, error) {
	return f.raws, f.err
}

func TestRetakePrefersServerQuestions(t *testing.T) {
	cfg := model.InterviewType{Name: "behavioral", DurationMinutes: 30, QuestionCount: 2}
	boundary := fakeRetakeBoundary{raws: []question.Raw{
		{ID: "q1", Prompt: "server one"},
		{ID: "q2", Prompt: "server two"},
	}}
	cached := []question.Raw{{ID: "q1", Prompt: "cached one"}}

	questions, err := RetakeQuestions(context.Background(), boundary, "prior", cached, cfg)
	if err != nil {
		t.Fatalf("retake: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].Prompt != "server one" {
		t.Fatalf("expected the server set, got %q", questions[0].Prompt)
	}
}

func TestRetakeFallsBackToCache(t *testing.T) {
	cfg := model.InterviewType{Name: "behavioral", DurationMinutes: 30, QuestionCount: 2}
	boundary := fakeRetakeBoundary{err: errors.New("backend down")}
	cached := []question.Raw{
		{ID: "q1", Prompt: "cached one"},
		{ID: "q2", Prompt: "cached two"},
	}

	questions, err := RetakeQuestions(context.Background(), boundary, "prior", cached, cfg)
	if err != nil {
		t.Fatalf("retake: %v", err)
	}
	if questions[0].Prompt != "cached one" || questions[1].Prompt != "cached two" {
		t.Fatalf("expected the cached set, got %+v", questions)
	}
}

func TestRetakeWithNoSourceFails(t *testing.T) {
	cfg := model.InterviewType{Name: "behavioral", DurationMinutes: 30, QuestionCount: 2}
	boundary := fakeRetakeBoundary{err: errors.New("backend down")}

	if _, err := RetakeQuestions(context.Background(), boundary, "prior", nil, cfg); !errors.Is(err, ErrNoRetakeSource) {
		t.Fatalf("expected ErrNoRetakeSource, got %v", err)
	}
	if _, err := RetakeQuestions(context.Background(), nil, "", nil, cfg); !errors.Is(err, ErrNoRetakeSource) {
		t.Fatalf("expected ErrNoRetakeSource without boundary, got %v", err)
	}
}
