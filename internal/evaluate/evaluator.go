// Package evaluate turns answered questions into an interview result.
package evaluate

import (
	"context"

	"github.com/nvoloshin/prepterm/internal/model"
)

// Scores is the evaluator output consumed by the assembler: an overall
// aggregate plus per-skill means, before presentation shaping.
type Scores struct {
	Overall     float64
	BySkill     map[string]float64
	Feedback    string
	PerQuestion []model.QuestionEvaluation
}

// Evaluator scores an answered question set. The remote implementation calls
// the evaluation boundary; the heuristic one is a local, network-free
// approximation. Selection between them is by availability, not exception
// handling: the assembler tries the primary and swaps in the fallback on any
// error.
type Evaluator interface {
	Evaluate(ctx context.Context, questions []model.Question, answers []model.Answer, cfg model.InterviewType) (Scores, error)
}

// skillTags returns the grouping tags for a question: its skill tags, or the
// category when no skills are set.
func skillTags(q model.Question) []string {
	if len(q.Skills) > 0 {
		return q.Skills
	}
	if q.Category != "" {
		return []string{q.Category}
	}
	return []string{"General"}
}

// answersByQuestion indexes answers by question id.
func answersByQuestion(answers []model.Answer) map[string]model.Answer {
	byID := make(map[string]model.Answer, len(answers))
	for _, a := range answers {
		byID[a.QuestionID] = a
	}
	return byID
}
