package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nvoloshin/prepterm/internal/model"
	"github.com/nvoloshin/prepterm/internal/question"
)

type generateRequest struct {
	InterviewType  string   `json:"interview_type"`
	QuestionCount  int      `json:"question_count"`
	DurationMin    int      `json:"duration_minutes"`
	Skills         []string `json:"skills,omitempty"`
	JobDescription string   `json:"job_description,omitempty"`
}

type generateResponse struct {
	Questions []question.Raw `json:"questions"`
}

// FetchQuestions asks the backend to generate a question set for the
// interview type. The loose response shape is decoded by question.Raw and
// never leaks past the normalizer boundary.
func (c *Client) FetchQuestions(ctx context.Context, cfg model.InterviewType) ([]question.Raw, error) {
	req := generateRequest{
		InterviewType:  cfg.Name,
		QuestionCount:  cfg.QuestionCount,
		DurationMin:    cfg.DurationMinutes,
		Skills:         cfg.Skills,
		JobDescription: cfg.JobDescription,
	}
	var resp generateResponse
	if err := c.do(ctx, http.MethodPost, "/api/questions/generate", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}
	return resp.Questions, nil
}

// RetakeQuestions returns the original ordered question list for a prior
// session, in the same loose shape as the question source.
func (c *Client) RetakeQuestions(ctx context.Context, sessionID string) ([]question.Raw, error) {
	path := "/api/sessions/" + url.PathEscape(sessionID) + "/questions"
	var resp generateResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch retake questions: %w", err)
	}
	return resp.Questions, nil
}
