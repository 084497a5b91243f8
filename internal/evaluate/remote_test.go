package evaluate

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/nvoloshin/prepterm/internal/api"
	"github.com/nvoloshin/prepterm/internal/model"
)

type fakeEvalBoundary struct {
	gotItems []api.EvalItem
	gotMeta  api.EvalMetadata
	eval     api.Evaluation
	err      error
}

func (f *fakeEvalBoundary) Evaluate(_ context.Context, items []api.EvalItem, meta api.EvalMetadata) (api.Evaluation, error) {
	f.gotItems = items
	f.gotMeta = meta
	return f.eval, f.err
}

func TestRemoteGroupsScoresBySkill(t *testing.T) {
	cfg := model.InterviewType{Name: "behavioral"}
	questions := []model.Question{
		{ID: "q1", Prompt: "first", Skills: []string{"Communication"}},
		{ID: "q2", Prompt: "second", Skills: []string{"Communication", "Leadership"}},
		{ID: "q3", Prompt: "unanswered", Skills: []string{"Leadership"}},
	}
	answers := []model.Answer{
		{QuestionID: "q1", Content: "answer one"},
		{QuestionID: "q2", Content: "answer two"},
	}
	boundary := &fakeEvalBoundary{eval: api.Evaluation{
		OverallScore: 81,
		Feedback:     "good pacing",
		PerQuestion: []api.QuestionVerdict{
			{Question: "first", Score: 90, Feedback: "strong", Strengths: []string{"clear"}},
			{Question: "second", Score: 70, ModelAnswer: "an ideal answer"},
		},
	}}

	scores, err := NewRemote(boundary, "sess-1").Evaluate(context.Background(), questions, answers, cfg)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(boundary.gotItems) != 2 {
		t.Fatalf("expected 2 items submitted, got %d", len(boundary.gotItems))
	}
	if boundary.gotMeta.SessionID != "sess-1" || boundary.gotMeta.QuestionCount != 2 {
		t.Fatalf("unexpected metadata: %+v", boundary.gotMeta)
	}
	if scores.Overall != 81 || scores.Feedback != "good pacing" {
		t.Fatalf("overall not carried through: %+v", scores)
	}
	if math.Abs(scores.BySkill["Communication"]-80) > 1e-9 {
		t.Fatalf("Communication = %v, want mean of 90 and 70", scores.BySkill["Communication"])
	}
	if math.Abs(scores.BySkill["Leadership"]-70) > 1e-9 {
		t.Fatalf("Leadership = %v, want 70", scores.BySkill["Leadership"])
	}
	if len(scores.PerQuestion) != 2 {
		t.Fatalf("expected 2 per-question entries, got %d", len(scores.PerQuestion))
	}
	if scores.PerQuestion[0].QuestionID != "q1" || scores.PerQuestion[0].Score != 90 {
		t.Fatalf("per-question mapping wrong: %+v", scores.PerQuestion[0])
	}
	if scores.PerQuestion[1].ModelAnswer != "an ideal answer" {
		t.Fatalf("model answer dropped: %+v", scores.PerQuestion[1])
	}
}

func TestRemoteUsesCategoryWhenUntagged(t *testing.T) {
	cfg := model.InterviewType{Name: "behavioral"}
	questions := []model.Question{
		{ID: "q1", Prompt: "first", Category: "General"},
	}
	answers := []model.Answer{{QuestionID: "q1", Content: "answer"}}
	boundary := &fakeEvalBoundary{eval: api.Evaluation{
		OverallScore: 64,
		PerQuestion:  []api.QuestionVerdict{{Question: "first", Score: 64}},
	}}

	scores, err := NewRemote(boundary, "sess-1").Evaluate(context.Background(), questions, answers, cfg)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if math.Abs(scores.BySkill["General"]-64) > 1e-9 {
		t.Fatalf("expected category grouping, got %+v", scores.BySkill)
	}
}

func TestRemoteErrorsPropagate(t *testing.T) {
	cfg := model.InterviewType{Name: "behavioral"}
	questions := []model.Question{{ID: "q1", Prompt: "p"}}
	answers := []model.Answer{{QuestionID: "q1", Content: "a"}}

	boundary := &fakeEvalBoundary{err: errors.New("503")}
	if _, err := NewRemote(boundary, "s").Evaluate(context.Background(), questions, answers, cfg); err == nil {
		t.Fatalf("expected boundary error to propagate")
	}
	if _, err := NewRemote(boundary, "s").Evaluate(context.Background(), questions, nil, cfg); err == nil {
		t.Fatalf("expected error with no answered questions")
	}
}
