package api

import (
	"context"
	"fmt"
	"net/http"
)

// EvalItem pairs a question prompt with the user's answer for scoring.
type EvalItem struct {
	Question   string `json:"question"`
	UserAnswer string `json:"user_answer"`
}

// EvalMetadata describes the interview the items came from.
type EvalMetadata struct {
	SessionID     string `json:"session_id,omitempty"`
	InterviewType string `json:"interview_type,omitempty"`
	QuestionCount int    `json:"question_count,omitempty"`
}

type evaluateRequest struct {
	Items    []EvalItem   `json:"items"`
	Metadata EvalMetadata `json:"interview_metadata"`
}

// QuestionVerdict is the canonical per-question evaluation after the loose
// wire alternates have been folded.
type QuestionVerdict struct {
	Question    string
	Score       float64
	Feedback    string
	Strengths   []string
	Weaknesses  []string
	ModelAnswer string
}

// Evaluation is the canonical evaluation boundary result.
type Evaluation struct {
	OverallScore float64
	Feedback     string
	PerQuestion  []QuestionVerdict
}

// The evaluation boundary has shipped several response variants; strengths
// and weaknesses may be at the top level or nested under
// suggestions.feedback, and the model answer field has two names. All
// variants are folded here so the loose shape never leaks outward.
type perQuestionWire struct {
	Question     string   `json:"question"`
	Score        float64  `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	Improvements []string `json:"improvements"`
	ModelAnswer  string   `json:"model_answer"`
	IdealAnswer  string   `json:"ideal_answer"`
	Suggestions  *struct {
		Feedback struct {
			Strengths    []string `json:"strengths"`
			Improvements []string `json:"improvements"`
		} `json:"feedback"`
	} `json:"suggestions"`
}

type evaluateResponse struct {
	OverallScore float64           `json:"overall_score"`
	Feedback     string            `json:"feedback"`
	PerQuestion  []perQuestionWire `json:"per_question"`
}

func (w perQuestionWire) fold() QuestionVerdict {
	v := QuestionVerdict{
		Question:    w.Question,
		Score:       w.Score,
		Feedback:    w.Feedback,
		Strengths:   w.Strengths,
		Weaknesses:  w.Weaknesses,
		ModelAnswer: w.ModelAnswer,
	}
	if len(v.Weaknesses) == 0 {
		v.Weaknesses = w.Improvements
	}
	if w.Suggestions != nil {
		if len(v.Strengths) == 0 {
			v.Strengths = w.Suggestions.Feedback.Strengths
		}
		if len(v.Weaknesses) == 0 {
			v.Weaknesses = w.Suggestions.Feedback.Improvements
		}
	}
	if v.ModelAnswer == "" {
		v.ModelAnswer = w.IdealAnswer
	}
	return v
}

// Evaluate submits question/answer pairs for AI scoring.
func (c *Client) Evaluate(ctx context.Context, items []EvalItem, meta EvalMetadata) (Evaluation, error) {
	req := evaluateRequest{Items: items, Metadata: meta}
	var resp evaluateResponse
	if err := c.do(ctx, http.MethodPost, "/api/evaluate", req, &resp); err != nil {
		return Evaluation{}, fmt.Errorf("failed to evaluate answers: %w", err)
	}
	out := Evaluation{
		OverallScore: resp.OverallScore,
		Feedback:     resp.Feedback,
		PerQuestion:  make([]QuestionVerdict, 0, len(resp.PerQuestion)),
	}
	for _, w := range resp.PerQuestion {
		out.PerQuestion = append(out.PerQuestion, w.fold())
	}
	return out, nil
}
