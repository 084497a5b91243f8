package evaluate

import (
	"context"
	"fmt"

	"github.com/nvoloshin/prepterm/internal/api"
	"github.com/nvoloshin/prepterm/internal/model"
)

// EvaluationBoundary is the slice of the backend client the remote evaluator
// needs.
type EvaluationBoundary interface {
	Evaluate(ctx context.Context, items []api.EvalItem, meta api.EvalMetadata) (api.Evaluation, error)
}

// Remote scores answers through the backend evaluation boundary.
type Remote struct {
	boundary  EvaluationBoundary
	sessionID string
}

// NewRemote constructs a remote evaluator for one session.
func NewRemote(boundary EvaluationBoundary, sessionID string) *Remote {
	return &Remote{boundary: boundary, sessionID: sessionID}
}

// Evaluate implements Evaluator. Returned per-question scores are grouped by
// the question's skill tags (category when untagged) and averaged per group.
func (r *Remote) Evaluate(ctx context.Context, questions []model.Question, answers []model.Answer, cfg model.InterviewType) (Scores, error) {
	if r.boundary == nil {
		return Scores{}, fmt.Errorf("no evaluation boundary configured")
	}
	byID := answersByQuestion(answers)
	items := make([]api.EvalItem, 0, len(questions))
	answered := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		a, ok := byID[q.ID]
		if !ok {
			continue
		}
		items = append(items, api.EvalItem{Question: q.Prompt, UserAnswer: a.Content})
		answered = append(answered, q)
	}
	if len(items) == 0 {
		return Scores{}, fmt.Errorf("no answered questions to evaluate")
	}

	eval, err := r.boundary.Evaluate(ctx, items, api.EvalMetadata{
		SessionID:     r.sessionID,
		InterviewType: cfg.Name,
		QuestionCount: len(items),
	})
	if err != nil {
		return Scores{}, err
	}

	sums := map[string]float64{}
	counts := map[string]int{}
	perQuestion := make([]model.QuestionEvaluation, 0, len(eval.PerQuestion))
	for i, v := range eval.PerQuestion {
		if i >= len(answered) {
			break
		}
		q := answered[i]
		for _, tag := range skillTags(q) {
			sums[tag] += v.Score
			counts[tag]++
		}
		perQuestion = append(perQuestion, model.QuestionEvaluation{
			QuestionID:  q.ID,
			Score:       int(v.Score + 0.5),
			Feedback:    v.Feedback,
			Strengths:   v.Strengths,
			Weaknesses:  v.Weaknesses,
			ModelAnswer: v.ModelAnswer,
		})
	}
	bySkill := make(map[string]float64, len(sums))
	for tag, sum := range sums {
		bySkill[tag] = sum / float64(counts[tag])
	}
	return Scores{
		Overall:     eval.OverallScore,
		BySkill:     bySkill,
		Feedback:    eval.Feedback,
		PerQuestion: perQuestion,
	}, nil
}
